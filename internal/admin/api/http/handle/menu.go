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

type MenuHandler struct {
	menuService *services.MenuService
	mylog       logger.Logger
}

func NewMenuHandler(menuService *services.MenuService, mylog logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		mylog:       mylog,
	}
}

func (mh *MenuHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		query := r.URL.Query()
		items, err := mh.menuService.List(ctx, query.Get("category"), query.Get("search"))
		if err != nil {
			jsonError(w, http.StatusInternalServerError, errors.New("failed to load menu"))
			return
		}
		jsonResponse(w, http.StatusOK, items)
	}
}

func (mh *MenuHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		item, err := mh.menuService.Get(ctx, mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, core.ErrMenuItemNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to load menu item"))
			return
		}
		jsonResponse(w, http.StatusOK, item)
	}
}

func (mh *MenuHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.MenuItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		item, err := mh.menuService.Create(ctx, req)
		if err != nil {
			if isValidationError(err) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to create menu item"))
			return
		}
		jsonResponse(w, http.StatusCreated, item)
	}
}

func (mh *MenuHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.MenuItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		item, err := mh.menuService.Update(ctx, mux.Vars(r)["id"], req)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrMenuItemNotFound):
				jsonError(w, http.StatusNotFound, err)
			case isValidationError(err):
				jsonError(w, http.StatusBadRequest, err)
			default:
				jsonError(w, http.StatusInternalServerError, errors.New("failed to update menu item"))
			}
			return
		}
		jsonResponse(w, http.StatusOK, item)
	}
}

func (mh *MenuHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		if err := mh.menuService.Delete(ctx, mux.Vars(r)["id"]); err != nil {
			if errors.Is(err, core.ErrMenuItemNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to delete menu item"))
			return
		}
		jsonResponse(w, http.StatusNoContent, nil)
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, core.ErrFieldIsEmpty) ||
		errors.Is(err, core.ErrUnknownCategory) ||
		errors.Is(err, core.ErrNegativePrice) ||
		errors.Is(err, core.ErrNoTranslation)
}
