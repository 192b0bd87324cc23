package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"payment-analyzer-service/internal/api/dto"
	"payment-analyzer-service/internal/ports"
)

// PresenceHandler reads and writes the shared online/offline flag.
// The browser's online/offline events are an opaque external signal;
// the client mirrors them here so every session sees the same state.
type PresenceHandler struct {
	Store ports.PresenceStore
}

func (h *PresenceHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *PresenceHandler) get(w http.ResponseWriter, r *http.Request) {
	online, err := h.Store.Online(r.Context())
	if err != nil {
		log.Printf("get presence failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PresenceResponse{Online: online})
}

func (h *PresenceHandler) put(w http.ResponseWriter, r *http.Request) {
	var req dto.SetPresenceRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Online == nil {
		writeError(w, r, http.StatusBadRequest, "online is required")
		return
	}

	if err := h.Store.SetOnline(r.Context(), *req.Online); err != nil {
		log.Printf("set presence failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PresenceResponse{Online: *req.Online})
}
