package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pushRequest models.PushRequest
	if err := utils.DecodeJSON(r.Body, &pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Push(ctx, pushRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.push").Str("device_id", pushRequest.DeviceID).Msg("error pushing changes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var pullRequest models.PullRequest
	if err := utils.DecodeJSON(r.Body, &pullRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Pull(ctx, pullRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pull").Str("device_id", pullRequest.DeviceID).Msg("error pulling changes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": app.MsgStatusOK}, http.StatusOK)
}
