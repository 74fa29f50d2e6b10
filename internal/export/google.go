package export

import (
	"net/url"

	"sendtocal/internal/domain/entity"
)

// googleCalendarBase is the Google Calendar event-template endpoint.
const googleCalendarBase = "https://calendar.google.com/calendar/render"

// GoogleCalendarURL builds a Google Calendar deep link for the event.
//
// The dates parameter is included only when both start and end format
// successfully; a partial range would be rejected by Google Calendar, so
// it is omitted entirely instead. details and location are included only
// when non-empty. All values are percent-encoded.
func GoogleCalendarURL(ev entity.Event) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", ev.Title)

	start := FormatUTC(ev.StartDate)
	end := FormatUTC(ev.EndDate)
	if start != "" && end != "" {
		params.Set("dates", start+"/"+end)
	}

	if ev.Description != "" {
		params.Set("details", ev.Description)
	}
	if ev.Location != "" {
		params.Set("location", ev.Location)
	}

	return googleCalendarBase + "?" + params.Encode()
}
