package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/app/services"
	"resto-admin/internal/admin/domain/dto"
	"resto-admin/internal/xpkg/logger"
)

type PromotionHandler struct {
	promoService *services.PromotionService
	mylog        logger.Logger
}

func NewPromotionHandler(promoService *services.PromotionService, mylog logger.Logger) *PromotionHandler {
	return &PromotionHandler{
		promoService: promoService,
		mylog:        mylog,
	}
}

func (ph *PromotionHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		promos, err := ph.promoService.List(ctx)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, errors.New("failed to load promotions"))
			return
		}
		jsonResponse(w, http.StatusOK, promos)
	}
}

func (ph *PromotionHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.PromotionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		promo, err := ph.promoService.Create(ctx, req)
		if err != nil {
			if errors.Is(err, core.ErrNoTranslation) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to create promotion"))
			return
		}
		jsonResponse(w, http.StatusCreated, promo)
	}
}

func (ph *PromotionHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.PromotionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		promo, err := ph.promoService.Update(ctx, mux.Vars(r)["id"], req)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrPromotionNotFound):
				jsonError(w, http.StatusNotFound, err)
			case errors.Is(err, core.ErrNoTranslation):
				jsonError(w, http.StatusBadRequest, err)
			default:
				jsonError(w, http.StatusInternalServerError, errors.New("failed to update promotion"))
			}
			return
		}
		jsonResponse(w, http.StatusOK, promo)
	}
}

func (ph *PromotionHandler) ToggleActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		active, err := ph.promoService.ToggleActive(ctx, mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, core.ErrPromotionNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to toggle promotion"))
			return
		}
		jsonResponse(w, http.StatusOK, map[string]bool{"active": active})
	}
}

func (ph *PromotionHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		if err := ph.promoService.Delete(ctx, mux.Vars(r)["id"]); err != nil {
			if errors.Is(err, core.ErrPromotionNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to delete promotion"))
			return
		}
		jsonResponse(w, http.StatusNoContent, nil)
	}
}
