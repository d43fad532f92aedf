// Package api is the REST adapter: it translates HTTP requests into
// store calls and maps the failure taxonomy to status codes. Absence is
// 404, validation and referential failures are 400.
package api

import (
	"net/http"

	"demo-api/internal/schema"
	"demo-api/internal/shared/httpx"
	"demo-api/internal/store"
	"demo-api/pkg/res"
)

type UserHandler struct {
	svc store.API
}

func NewUserHandler(mux *http.ServeMux, svc store.API) {
	h := &UserHandler{svc: svc}
	mux.Handle("POST /users/{$}", httpx.Wrap(h.create))
	mux.Handle("GET /users/{$}", httpx.Wrap(h.search))
	mux.Handle("GET /users/{user_id}", httpx.Wrap(h.getByID))
	mux.Handle("PUT /users/{user_id}", httpx.Wrap(h.update))
	mux.Handle("DELETE /users/{user_id}", httpx.Wrap(h.delete))
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) error {
	data, err := httpx.Decode[schema.UserCreate](r)
	if err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	user, err := h.svc.CreateUser(&data)
	if err != nil {
		return err
	}
	res.Json(w, user, http.StatusCreated)
	return nil
}

func (h *UserHandler) getByID(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "user_id")
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(id, httpx.QueryBool(r, "include_posts", true))
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if user == nil {
		res.Error(w, "user not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, user, http.StatusOK)
	return nil
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "user_id")
	if err != nil {
		return err
	}
	data, err := httpx.Decode[schema.UserUpdate](r)
	if err != nil {
		return err
	}
	user, err := h.svc.UpdateUser(id, &data)
	if err != nil {
		return err
	}
	if user == nil {
		res.Error(w, "user not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, user, http.StatusOK)
	return nil
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r, "user_id")
	if err != nil {
		return err
	}
	found, err := h.svc.DeleteUser(id)
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if !found {
		res.Error(w, "user not found", http.StatusNotFound)
		return nil
	}
	res.Json(w, map[string]string{"message": "user deleted"}, http.StatusOK)
	return nil
}

func (h *UserHandler) search(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	params := schema.UserSearch{
		Nickname:     q.Get("nickname"),
		Email:        q.Get("email"),
		Location:     q.Get("location"),
		JobTitle:     q.Get("job_title"),
		IncludePosts: httpx.QueryBool(r, "include_posts", false),
		Skip:         httpx.QueryInt(r, "skip", 0),
		Limit:        httpx.QueryInt(r, "limit", 100),
	}
	users, err := h.svc.SearchUsers(&params)
	if err != nil {
		res.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	res.Json(w, users, http.StatusOK)
	return nil
}
