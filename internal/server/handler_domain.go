package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinespot/dinesync/internal/adapter"
	"github.com/dinespot/dinesync/internal/service"
	"github.com/dinespot/dinesync/internal/store"
	"github.com/dinespot/dinesync/models"
)

// Services bundles the domain services served to the embedding application.
type Services struct {
	Restaurants *service.RestaurantService
	Menu        *service.MenuService
	Ratings     *service.RatingService
}

func (h *Handler) domainRoutes(router chi.Router) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/restaurants", h.listRestaurants)
		r.Post("/restaurants", h.createRestaurant)
		r.Get("/restaurants/{id}", h.getRestaurant)
		r.Put("/restaurants/{id}", h.updateRestaurant)
		r.Delete("/restaurants/{id}", h.deleteRestaurant)

		r.Get("/restaurants/{id}/menu", h.listMenu)
		r.Post("/menu-items", h.createMenuItem)
		r.Put("/menu-items/{id}", h.updateMenuItem)
		r.Delete("/menu-items/{id}", h.deleteMenuItem)

		r.Get("/restaurants/{id}/ratings", h.listRatings)
		r.Post("/ratings", h.submitRating)
		r.Put("/ratings/{id}", h.updateRating)
		r.Delete("/ratings/{id}", h.deleteRating)
		r.Post("/device-ratings", h.submitDeviceRating)
	})
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, adapter.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, adapter.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidStars):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return false
	}
	return true
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.services.Restaurants.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.services.Restaurants.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant models.Restaurant
	if !decodeBody(w, r, &restaurant) {
		return
	}
	if err := h.services.Restaurants.Create(r.Context(), &restaurant); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant models.Restaurant
	if !decodeBody(w, r, &restaurant) {
		return
	}
	restaurant.ID = chi.URLParam(r, "id")
	if err := h.services.Restaurants.Update(r.Context(), &restaurant); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Restaurants.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Menu.ListByRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if !decodeBody(w, r, &item) {
		return
	}
	if err := h.services.Menu.Create(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if !decodeBody(w, r, &item) {
		return
	}
	item.ID = chi.URLParam(r, "id")
	if err := h.services.Menu.Update(r.Context(), &item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Menu.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.services.Ratings.GetForRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	var rating models.Rating
	if !decodeBody(w, r, &rating) {
		return
	}
	if err := h.services.Ratings.Submit(r.Context(), &rating); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

func (h *Handler) updateRating(w http.ResponseWriter, r *http.Request) {
	var rating models.Rating
	if !decodeBody(w, r, &rating) {
		return
	}
	rating.ID = chi.URLParam(r, "id")
	if err := h.services.Ratings.Update(r.Context(), &rating); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

func (h *Handler) deleteRating(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Ratings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submitDeviceRating(w http.ResponseWriter, r *http.Request) {
	var rating models.DeviceRating
	if !decodeBody(w, r, &rating) {
		return
	}
	if err := h.services.Ratings.SubmitDeviceRating(r.Context(), &rating); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}
