package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/web"
)

type HandlerOptions struct {
	DefaultPageLimit int
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, opts HandlerOptions) {
	h := &handler{svc: svc, log: log, opts: opts}

	r.Post("/user", h.create)
	r.Get("/user/{user_id}", h.get)
	r.Put("/user/{user_id}", h.updateEmail)
	r.Delete("/user/{user_id}", h.delete)

	r.Get("/users", h.list)
	r.Delete("/users", h.deleteAll)
}

type handler struct {
	svc  *Service
	log  logger.Logger
	opts HandlerOptions
}

type createUserRequest struct {
	Email    string `json:"email" example:"example@mail.com"`
	Password string `json:"password" example:"example_password"`
}

// UserResponse no expone el hash del password.
type UserResponse struct {
	ID    int64              `json:"id"`
	Email string             `json:"email"`
	Pets  []pets.PetResponse `json:"pets"`
}

// create godoc
// @Summary  Create a user
// @Tags     Operations with users
// @Accept   json
// @Produce  json
// @Param    user body createUserRequest true "user"
// @Success  200 {object} UserResponse
// @Failure  400 {object} web.DetailResponse
// @Failure  422 {object} web.DetailResponse
// @Router   /user [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.Error(w, h.log, err)
		return
	}

	u, err := h.svc.Create(r.Context(), CreateInput{Email: req.Email, Password: req.Password})
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.JSON(w, http.StatusOK, ToUserResponse(u))
}

// get godoc
// @Summary  Show a user
// @Tags     Operations with users
// @Produce  json
// @Param    user_id path int true "user id"
// @Success  200 {object} UserResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /user/{user_id} [get]
func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "user_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.JSON(w, http.StatusOK, ToUserResponse(u))
}

// list godoc
// @Summary  Show users
// @Tags     Operations with users
// @Produce  json
// @Param    skip  query int false "records to skip" default(0)
// @Param    limit query int false "max records"     default(100)
// @Success  200 {array}  UserResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /users [get]
func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	page, err := web.QueryPage(r, h.opts.DefaultPageLimit)
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	items, err := h.svc.List(r.Context(), page)
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, ToUserResponse(u))
	}
	web.JSON(w, http.StatusOK, out)
}

// updateEmail godoc
// @Summary  Change a user's email
// @Tags     Operations with users
// @Produce  json
// @Param    user_id   path  int    true "user id"
// @Param    new_email query string true "new email"
// @Success  200 {object} web.DetailResponse
// @Failure  400 {object} web.DetailResponse
// @Failure  404 {object} web.DetailResponse
// @Failure  422 {object} web.DetailResponse
// @Router   /user/{user_id} [put]
func (h *handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "user_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	email, _ := web.QueryString(r, "new_email")

	if _, err := h.svc.UpdateEmail(r.Context(), id, email); err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.Detail(w, http.StatusOK, "user email changed")
}

// delete godoc
// @Summary  Delete a user and all of their pets
// @Tags     Operations with users
// @Produce  json
// @Param    user_id path int true "user id"
// @Success  200 {object} web.DetailResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /user/{user_id} [delete]
func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "user_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.Detail(w, http.StatusOK, "user deleted")
}

// deleteAll godoc
// @Summary  Delete every user and pet
// @Tags     Operations with users
// @Produce  json
// @Success  200 {object} web.DetailResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /users [delete]
func (h *handler) deleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAll(r.Context()); err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.Detail(w, http.StatusOK, "all users deleted")
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Pets:  pets.ToPetResponses(u.Pets),
	}
}
