package pets

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/web"
)

type HandlerOptions struct {
	DefaultPageLimit int
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, opts HandlerOptions) {
	h := &handler{svc: svc, log: log, opts: opts}

	r.Post("/user/{owner_id}/pets", h.create)

	r.Get("/pet", h.get)
	r.Put("/pet/{pet_id}/{owner_id}", h.update)
	r.Delete("/pet/{pet_id}/{owner_id}", h.delete)

	r.Get("/pets", h.list)
	r.Get("/pets/{owner_id}", h.listByOwner)
	r.Delete("/pets/{owner_id}", h.deleteAllForOwner)
}

type handler struct {
	svc  *Service
	log  logger.Logger
	opts HandlerOptions
}

type createPetRequest struct {
	AnimalName  string  `json:"animal_name" example:"Rex"`
	Description *string `json:"description" example:"big red dog"`
}

// PetResponse es la forma pública de una mascota.
type PetResponse struct {
	ID          int64   `json:"id"`
	AnimalName  string  `json:"animal_name"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id"`
}

type createPetResponse struct {
	Detail string      `json:"detail"`
	Pet    PetResponse `json:"pet"`
}

// create godoc
// @Summary  Add a pet to a user
// @Tags     Pet Operations
// @Accept   json
// @Produce  json
// @Param    owner_id path int              true "owner id"
// @Param    pet      body createPetRequest true "pet"
// @Success  200 {object} createPetResponse
// @Failure  400 {object} web.DetailResponse
// @Failure  404 {object} web.DetailResponse
// @Failure  422 {object} web.DetailResponse
// @Router   /user/{owner_id}/pets [post]
func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := web.PathID(r, "owner_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	var req createPetRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.Error(w, h.log, err)
		return
	}

	p, err := h.svc.Create(r.Context(), ownerID, CreateInput{
		AnimalName:  req.AnimalName,
		Description: req.Description,
	})
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	web.JSON(w, http.StatusOK, createPetResponse{Detail: "pet added", Pet: ToPetResponse(p)})
}

// get godoc
// @Summary  Show a pet scoped to its owner
// @Tags     Pet Operations
// @Produce  json
// @Param    pet_id   query int true "pet id"
// @Param    owner_id query int true "owner id"
// @Success  200 {object} PetResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /pet [get]
func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	petID, err := web.QueryID(r, "pet_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	ownerID, err := web.QueryID(r, "owner_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	p, err := h.svc.Get(r.Context(), ownerID, petID)
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.JSON(w, http.StatusOK, ToPetResponse(p))
}

// list godoc
// @Summary  Show all pets in the shop
// @Tags     Pet Operations
// @Produce  json
// @Param    skip  query int false "records to skip"  default(0)
// @Param    limit query int false "max records"      default(100)
// @Success  200 {array}  PetResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /pets [get]
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
	web.JSON(w, http.StatusOK, ToPetResponses(items))
}

// listByOwner godoc
// @Summary  Show all pets of a user
// @Tags     Pet Operations
// @Produce  json
// @Param    owner_id path int true "owner id"
// @Success  200 {array}  PetResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /pets/{owner_id} [get]
func (h *handler) listByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := web.PathID(r, "owner_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	items, err := h.svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.JSON(w, http.StatusOK, ToPetResponses(items))
}

// update godoc
// @Summary  Change a pet's name and description
// @Tags     Pet Operations
// @Produce  json
// @Param    pet_id          path  int    true  "pet id"
// @Param    owner_id        path  int    true  "owner id"
// @Param    new_animal_name query string true  "new name"
// @Param    new_description query string true  "new description"
// @Success  200 {object} web.DetailResponse
// @Failure  400 {object} web.DetailResponse
// @Failure  404 {object} web.DetailResponse
// @Failure  422 {object} web.DetailResponse
// @Router   /pet/{pet_id}/{owner_id} [put]
func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	petID, err := web.PathID(r, "pet_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	ownerID, err := web.PathID(r, "owner_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	name, _ := web.QueryString(r, "new_animal_name")
	// obligatorio; vacío borra la descripción
	desc, err := web.QueryRequired(r, "new_description")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	if _, err := h.svc.Update(r.Context(), UpdateInput{
		PetID:       petID,
		OwnerID:     ownerID,
		AnimalName:  name,
		Description: &desc,
	}); err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.Detail(w, http.StatusOK, "pet data changed")
}

// delete godoc
// @Summary  Delete a pet
// @Tags     Pet Operations
// @Produce  json
// @Param    pet_id   path int true "pet id"
// @Param    owner_id path int true "owner id"
// @Success  200 {object} web.DetailResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /pet/{pet_id}/{owner_id} [delete]
func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	petID, err := web.PathID(r, "pet_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}
	ownerID, err := web.PathID(r, "owner_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, petID); err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.Detail(w, http.StatusOK, "pet deleted")
}

// deleteAllForOwner godoc
// @Summary  Delete all pets of a user
// @Tags     Pet Operations
// @Produce  json
// @Param    owner_id path int true "owner id"
// @Success  200 {object} web.DetailResponse
// @Failure  404 {object} web.DetailResponse
// @Router   /pets/{owner_id} [delete]
func (h *handler) deleteAllForOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := web.PathID(r, "owner_id")
	if err != nil {
		web.Error(w, h.log, err)
		return
	}

	if err := h.svc.DeleteAllForOwner(r.Context(), ownerID); err != nil {
		web.Error(w, h.log, err)
		return
	}
	web.Detail(w, http.StatusOK, "all pets of the user deleted")
}

func ToPetResponse(p Pet) PetResponse {
	return PetResponse{
		ID:          p.ID,
		AnimalName:  p.AnimalName,
		Description: p.Description,
		OwnerID:     p.OwnerID,
	}
}

func ToPetResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToPetResponse(p))
	}
	return out
}
