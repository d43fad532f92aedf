package api

import (
	"net/http"

	"demo-api/internal/shared/httpx"
	"demo-api/internal/store"
	"demo-api/pkg/res"
)

// Tags are read-only over REST, mirroring the other front-ends' surface
// for browsing seed data.
type TagHandler struct {
	svc store.API
}

func NewTagHandler(mux *http.ServeMux, svc store.API) {
	h := &TagHandler{svc: svc}
	mux.Handle("GET /tags/{$}", httpx.Wrap(h.getAll))
	mux.Handle("GET /tags/{tag_id}", httpx.Wrap(h.getByID))
}

func (h *TagHandler) getAll(w http.ResponseWriter, r *http.Request) error {
	tags, err := h.svc.GetAllTags(httpx.QueryBool(r, "include_posts", false))
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	res.Json(w, tags, http.StatusOK)
	return nil
}

func (h *TagHandler) getByID(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "tag_id")
	if err != nil {
		return err
	}
	tag, err := h.svc.GetTag(id, httpx.QueryBool(r, "include_posts", true))
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if tag == nil {
		res.Error(w, "tag not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, tag, http.StatusOK)
	return nil
}
