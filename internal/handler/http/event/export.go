package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	handlerhttp "sendtocal/internal/handler/http"
	"sendtocal/internal/handler/http/respond"
	eventUC "sendtocal/internal/usecase/event"
)

// ICSExportHandler renders an event record as a downloadable iCalendar file.
type ICSExportHandler struct{ Svc *eventUC.Service }

func (h ICSExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req DTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	ev := toEntity(req)
	payload := h.Svc.ICalendar(ev)
	filename := h.Svc.ICSFilename(ev)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		return
	}

	handlerhttp.RecordExport("ics")
}

// GoogleExportHandler returns the prefilled Google Calendar URL for a record.
type GoogleExportHandler struct{ Svc *eventUC.Service }

func (h GoogleExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req DTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	url := h.Svc.GoogleCalendarURL(toEntity(req))

	respond.JSON(w, http.StatusOK, map[string]string{"url": url})
	handlerhttp.RecordExport("google")
}
