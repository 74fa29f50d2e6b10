package event

import (
	"encoding/json"
	"errors"
	"net/http"

	"sendtocal/internal/domain/entity"
	"sendtocal/internal/handler/http/requestid"
	"sendtocal/internal/handler/http/respond"
	"sendtocal/internal/infra/extractor"
	eventUC "sendtocal/internal/usecase/event"
)

// ExtractHandler turns free text and/or an inline image into an event record.
type ExtractHandler struct{ Svc *eventUC.Service }

func (h ExtractHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text         string `json:"text"`
		ImageDataURL string `json:"image_data_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	ctx := eventUC.WithRequestID(r.Context(), requestid.FromContext(r.Context()))

	ev, err := h.Svc.Extract(ctx, req.Text, req.ImageDataURL)
	if err != nil {
		respond.AppSafeError(w, http.StatusInternalServerError, mapExtractError(err))
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(ev))
}

// mapExtractError translates the extraction failure taxonomy into HTTP
// responses with user-presentable messages.
func mapExtractError(err error) error {
	var parseErr *extractor.ParseError
	var reqErr *extractor.RequestError

	switch {
	case errors.Is(err, entity.ErrEmptyInput):
		return respond.NewAppError(http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, extractor.ErrMissingAPIKey):
		return respond.NewAppError(http.StatusServiceUnavailable, "extraction service is not configured", err)
	case errors.Is(err, extractor.ErrEmptyResponse):
		return respond.NewAppError(http.StatusBadGateway, "the model returned no result, please try again", err)
	case errors.As(err, &parseErr):
		return respond.NewAppError(http.StatusBadGateway, "the model returned an unusable result, please try again", err)
	case errors.As(err, &reqErr):
		return respond.NewAppError(http.StatusBadGateway, "extraction service call failed, please try again", err)
	default:
		return err
	}
}
