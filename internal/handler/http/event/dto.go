// Package event provides HTTP handlers for event extraction and calendar
// export endpoints.
package event

import "sendtocal/internal/domain/entity"

// DTO represents the JSON structure for event data transfer.
type DTO struct {
	Title       string `json:"title" example:"Team Sync"`
	StartDate   string `json:"start_date" example:"2025-06-01T10:00:00"`
	EndDate     string `json:"end_date" example:"2025-06-01T11:00:00"`
	Location    string `json:"location" example:"Room 4 / https://meet.example.com"`
	Description string `json:"description" example:"Weekly status meeting"`
}

// toDTO converts a domain event to its transfer representation.
func toDTO(ev entity.Event) DTO {
	return DTO{
		Title:       ev.Title,
		StartDate:   ev.StartDate,
		EndDate:     ev.EndDate,
		Location:    ev.Location,
		Description: ev.Description,
	}
}

// toEntity converts a transfer representation back to a domain event.
func toEntity(d DTO) entity.Event {
	return entity.Event{
		Title:       d.Title,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Location:    d.Location,
		Description: d.Description,
	}
}
