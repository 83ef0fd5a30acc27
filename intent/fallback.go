package intent

import (
	"regexp"

	"github.com/mrEkso/n8n-voice2action-telegram/internal/strutil"
)

// FallbackSubject is the generic subject used when the keyword fallback
// classifies input as an email.
const FallbackSubject = "Voice Message"

const fallbackTitleMaxRunes = 100

var (
	emailKeywordsRe    = regexp.MustCompile(`(?i)email|send|письмо|отправ`)
	calendarKeywordsRe = regexp.MustCompile(`(?i)calendar|event|meeting|календарь|событие|встреч`)
	emailAddressRe     = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
)

// Fallback classifies text deterministically by keyword presence, used
// when the extraction backend is unconfigured or failed. Same input,
// same output: no state, no randomness.
func Fallback(text string) Result {
	switch {
	case emailKeywordsRe.MatchString(text):
		res := Result{
			Intent:   KindEmail,
			Category: CategoryCasual,
			Subject:  FallbackSubject,
			Body:     text,
			Response: "Email intent detected",
		}
		if m := emailAddressRe.FindString(text); m != "" {
			res.Recipient = m
		}
		res.ColorID = ColorID(res.Category)
		return res

	case calendarKeywordsRe.MatchString(text):
		cat := DetectCategory(text)
		return Result{
			Intent:      KindCalendar,
			Category:    cat,
			ColorID:     ColorID(cat),
			Title:       strutil.TruncateRunes(text, fallbackTitleMaxRunes),
			Description: text,
			Response:    "Calendar event intent detected",
		}

	default:
		return Result{
			Intent:   KindGeneral,
			Category: CategoryCasual,
			ColorID:  ColorID(CategoryCasual),
			Response: "I heard: " + text,
		}
	}
}
