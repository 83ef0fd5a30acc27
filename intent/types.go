// Package intent turns raw user input (typed text or a voice note) into a
// typed action proposal. The primary path asks the extraction backend for
// a labeled-line answer; a deterministic keyword fallback covers text
// input when the backend is missing or fails.
package intent

type Kind string

const (
	KindEmail    Kind = "email"
	KindCalendar Kind = "calendar"
	KindGeneral  Kind = "general"
)

type Category string

const (
	CategoryHome      Category = "home"
	CategoryWork      Category = "work"
	CategorySport     Category = "sport"
	CategoryImportant Category = "important"
	CategoryCasual    Category = "casual"
)

// Result is the resolver's output. Intent determines which fields carry
// data: Recipient/Subject/Body for email, Title/StartTime/EndTime/
// Description for calendar, Response for general. Unused fields stay
// empty.
type Result struct {
	Intent   Kind
	Category Category
	ColorID  string

	Recipient string
	Subject   string
	Body      string

	Title       string
	StartTime   string
	EndTime     string
	Description string

	Response string
}
