package event

import (
	"net/http"

	eventUC "sendtocal/internal/usecase/event"
)

// Register registers all event-related HTTP handlers with the given mux.
// The extraction route is expected to be wrapped with its own rate limiter
// by the caller; export routes are pure and cheap.
func Register(mux *http.ServeMux, svc *eventUC.Service, extractLimiter func(http.Handler) http.Handler) {
	extract := http.Handler(ExtractHandler{Svc: svc})
	if extractLimiter != nil {
		extract = extractLimiter(extract)
	}

	mux.Handle("POST /api/extract", extract)
	mux.Handle("POST /api/export/ics", ICSExportHandler{Svc: svc})
	mux.Handle("POST /api/export/google", GoogleExportHandler{Svc: svc})
}
