// Package entity defines the core domain entities and validation logic for the application.
// It contains the Event record produced by extraction and consumed by the export
// formatters, along with its validation rules and domain-specific errors.
package entity

// Event is the normalized calendar event record.
// It is constructed once per extraction call from model output, held as an
// editable draft, and discarded on reset. There is no identity beyond the
// in-memory instance and no stored collection of events.
//
// StartDate and EndDate are ISO 8601 date-time strings exactly as returned
// by the model. They are deliberately not re-parsed here: a record with an
// unparsable date must still flow through export, which degrades to an
// empty date component rather than failing.
type Event struct {
	Title       string
	StartDate   string
	EndDate     string
	Location    string
	Description string
}

// Validate reports advisory problems with the event record.
// The returned errors are informational: an event with an empty title or
// unparsable dates is still exportable, so callers must not treat a
// non-empty result as fatal.
func (e *Event) Validate() []error {
	var errs []error
	if e.Title == "" {
		errs = append(errs, &ValidationError{Field: "title", Message: "title is empty"})
	}
	if err := validateDate("startDate", e.StartDate); err != nil {
		errs = append(errs, err)
	}
	if err := validateDate("endDate", e.EndDate); err != nil {
		errs = append(errs, err)
	}
	return errs
}
