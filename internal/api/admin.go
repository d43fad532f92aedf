package api

import (
	"net/http"

	"demo-api/internal/shared/httpx"
	"demo-api/internal/store"
	"demo-api/pkg/res"
)

type AdminHandler struct {
	svc store.API
}

func NewAdminHandler(mux *http.ServeMux, svc store.API) {
	h := &AdminHandler{svc: svc}
	mux.Handle("GET /reset", httpx.Wrap(h.reset))
	mux.HandleFunc("GET /health", h.health)
}

func (h *AdminHandler) reset(w http.ResponseWriter, r *http.Request) error {
	if err := h.svc.Reset(); err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	res.Json(w, map[string]string{"message": "database reset successfully"}, http.StatusOK)
	return nil
}

func (h *AdminHandler) health(w http.ResponseWriter, r *http.Request) {
	res.Json(w, map[string]string{"status": "healthy", "message": "API is running"}, http.StatusOK)
}
