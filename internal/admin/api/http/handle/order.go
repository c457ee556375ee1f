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

type OrderHandler struct {
	orderService *services.OrderService
	mylog        logger.Logger
}

func NewOrderHandler(orderService *services.OrderService, mylog logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		mylog:        mylog,
	}
}

func (oh *OrderHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, err := parseWindow(r)
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		orders, counts, err := oh.orderService.ListWindow(ctx, start, end, r.URL.Query().Get("status"))
		if err != nil {
			if errors.Is(err, core.ErrInvalidWindow) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			// Degrade to an empty list with a banner rather than stale data.
			oh.mylog.Action("orders_degraded").Error("Serving empty order list", err)
			jsonResponse(w, http.StatusOK, dto.OrdersListResponse{
				Orders: []dto.OrderResponse{},
				Error:  storeUnavailableBanner,
			})
			return
		}

		resp := dto.OrdersListResponse{
			Orders: make([]dto.OrderResponse, 0, len(orders)),
			Counts: counts,
		}
		for _, order := range orders {
			resp.Orders = append(resp.Orders, dto.NewOrderResponse(order))
		}
		jsonResponse(w, http.StatusOK, resp)
	}
}

func (oh *OrderHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		order, err := oh.orderService.Get(ctx, mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, core.ErrOrderNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to load order"))
			return
		}
		jsonResponse(w, http.StatusOK, dto.NewOrderResponse(order))
	}
}

func (oh *OrderHandler) StatusHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		history, err := oh.orderService.StatusHistory(ctx, mux.Vars(r)["id"])
		if err != nil {
			if errors.Is(err, core.ErrOrderNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, errors.New("failed to load status history"))
			return
		}
		jsonResponse(w, http.StatusOK, history)
	}
}

func (oh *OrderHandler) ChangeStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.StatusChangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		order, err := oh.orderService.ChangeStatus(ctx, mux.Vars(r)["id"], req.Status, req.ChangedBy)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrOrderNotFound):
				jsonError(w, http.StatusNotFound, err)
			case errors.Is(err, core.ErrUnknownStatus), errors.Is(err, core.ErrInvalidTransition):
				jsonError(w, http.StatusUnprocessableEntity, err)
			default:
				jsonError(w, http.StatusInternalServerError, errors.New("failed to change order status"))
			}
			return
		}
		jsonResponse(w, http.StatusOK, dto.NewOrderResponse(order))
	}
}
