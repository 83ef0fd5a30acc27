package intent

import (
	"regexp"
	"strings"
)

// The extraction backend answers in a fixed labeled-line format. Each
// label is scanned for independently so extra prose around the block is
// harmless and a missing label simply leaves the field empty.
var (
	intentRe    = regexp.MustCompile(`(?i)INTENT:\s*(\w+)`)
	categoryRe  = regexp.MustCompile(`(?i)CATEGORY:\s*(\w+)`)
	recipientRe = regexp.MustCompile(`(?i)RECIPIENT:[ \t]*([^\n\r]*)`)
	subjectRe   = regexp.MustCompile(`(?i)SUBJECT:[ \t]*([^\n\r]*)`)
	bodyRe      = regexp.MustCompile(`(?i)BODY:[ \t]*([^\n\r]*)`)
	titleRe     = regexp.MustCompile(`(?i)TITLE:\s*([^\n]+)`)
	startTimeRe = regexp.MustCompile(`(?i)START_TIME:\s*([^\n]+)`)
	endTimeRe   = regexp.MustCompile(`(?i)END_TIME:\s*([^\n]+)`)
	descRe      = regexp.MustCompile(`(?i)DESCRIPTION:\s*([^\n]+)`)
	responseRe  = regexp.MustCompile(`(?is)RESPONSE:\s*(.+)`)
)

// ParseExtraction converts the backend's labeled text block into a
// Result. originalText is the user input that produced the block; it
// backfills the email body and calendar description when the backend
// leaves them out, and participates in category re-derivation.
func ParseExtraction(responseText, originalText string) Result {
	res := Result{
		Intent:   KindGeneral,
		Category: CategoryCasual,
		Response: responseText,
	}

	if m := intentRe.FindStringSubmatch(responseText); m != nil {
		switch strings.ToLower(m[1]) {
		case "email":
			res.Intent = KindEmail
		case "calendar":
			res.Intent = KindCalendar
		case "general":
			res.Intent = KindGeneral
		}
	}

	categorySupplied := false
	if m := categoryRe.FindStringSubmatch(responseText); m != nil {
		if cat, ok := validCategory(m[1]); ok {
			res.Category = cat
			categorySupplied = cat != CategoryCasual
		}
	}

	switch res.Intent {
	case KindEmail:
		if m := recipientRe.FindStringSubmatch(responseText); m != nil {
			res.Recipient = strings.TrimSpace(m[1])
		}
		if m := subjectRe.FindStringSubmatch(responseText); m != nil {
			res.Subject = strings.TrimSpace(m[1])
		}
		if m := bodyRe.FindStringSubmatch(responseText); m != nil {
			res.Body = strings.TrimSpace(m[1])
		}
		if res.Body == "" {
			res.Body = originalText
		}

	case KindCalendar:
		if m := titleRe.FindStringSubmatch(responseText); m != nil {
			res.Title = strings.TrimSpace(m[1])
		}
		if m := startTimeRe.FindStringSubmatch(responseText); m != nil {
			res.StartTime = strings.TrimSpace(m[1])
		}
		if m := endTimeRe.FindStringSubmatch(responseText); m != nil {
			res.EndTime = strings.TrimSpace(m[1])
		}
		if m := descRe.FindStringSubmatch(responseText); m != nil {
			res.Description = strings.TrimSpace(m[1])
		}
		if res.Description == "" {
			res.Description = originalText
		}

		// Re-derive the category from the event text when the backend
		// did not pick a specific one.
		if !categorySupplied {
			res.Category = DetectCategory(res.Title + " " + res.Description + " " + originalText)
		}
	}

	if m := responseRe.FindStringSubmatch(responseText); m != nil {
		res.Response = strings.TrimSpace(m[1])
	}

	res.ColorID = ColorID(res.Category)
	return res
}
