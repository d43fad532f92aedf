package api

import (
	"errors"
	"net/http"

	"demo-api/internal/schema"
	"demo-api/internal/shared/httpx"
	"demo-api/internal/store"
	"demo-api/pkg/res"
)

type PostHandler struct {
	svc store.API
}

func NewPostHandler(mux *http.ServeMux, svc store.API) {
	h := &PostHandler{svc: svc}
	mux.Handle("POST /posts/{$}", httpx.Wrap(h.create))
	mux.Handle("GET /posts/{$}", httpx.Wrap(h.search))
	mux.Handle("GET /posts/{post_id}", httpx.Wrap(h.getByID))
	mux.Handle("PUT /posts/{post_id}", httpx.Wrap(h.update))
	mux.Handle("DELETE /posts/{post_id}", httpx.Wrap(h.delete))
}

func (h *PostHandler) create(w http.ResponseWriter, r *http.Request) error {
	authorID := httpx.QueryInt(r, "author_id", 0)
	if authorID <= 0 {
		return errors.New("author_id query parameter is required")
	}
	data, err := httpx.Decode[schema.PostCreate](r)
	if err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	post, err := h.svc.CreatePost(uint(authorID), &data)
	if err != nil {
		var tnf *store.TagsNotFoundError
		if errors.As(err, &tnf) {
			return err
		}
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if post == nil {
		res.Error(w, "author not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, post, http.StatusCreated)
	return nil
}

func (h *PostHandler) getByID(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	post, err := h.svc.GetPost(id,
		httpx.QueryBool(r, "include_author", true),
		httpx.QueryBool(r, "include_tags", true),
	)
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if post == nil {
		res.Error(w, "post not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, post, http.StatusOK)
	return nil
}

func (h *PostHandler) update(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	data, err := httpx.Decode[schema.PostUpdate](r)
	if err != nil {
		return err
	}
	post, err := h.svc.UpdatePost(id, &data)
	if err != nil {
		var tnf *store.TagsNotFoundError
		if errors.As(err, &tnf) {
			return err
		}
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if post == nil {
		res.Error(w, "post not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, post, http.StatusOK)
	return nil
}

func (h *PostHandler) delete(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "post_id")
	if err != nil {
		return err
	}
	found, err := h.svc.DeletePost(id)
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if !found {
		res.Error(w, "post not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, map[string]string{"message": "post deleted"}, http.StatusOK)
	return nil
}

func (h *PostHandler) search(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	params := schema.PostSearch{
		Title:         q.Get("title"),
		Content:       q.Get("content"),
		IncludeAuthor: httpx.QueryBool(r, "include_author", true),
		IncludeTags:   httpx.QueryBool(r, "include_tags", false),
		Skip:          httpx.QueryInt(r, "skip", 0),
		Limit:         httpx.QueryInt(r, "limit", 100),
	}
	posts, err := h.svc.SearchPosts(&params)
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	res.Json(w, posts, http.StatusOK)
	return nil
}
