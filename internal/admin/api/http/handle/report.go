package handle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/app/services"
	"resto-admin/internal/admin/domain/dto"
	"resto-admin/internal/admin/domain/models"
	"resto-admin/internal/xpkg/logger"
)

const storeUnavailableBanner = "order store unavailable, showing empty data"

// ReportHandler serves the revenue report page and the dashboard widgets.
// When the order store is unreachable every endpoint degrades to zeroed data
// with an error banner instead of failing the page.
type ReportHandler struct {
	reportService *services.ReportService
	mylog         logger.Logger
}

func NewReportHandler(reportService *services.ReportService, mylog logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		mylog:         mylog,
	}
}

func (rh *ReportHandler) RevenueReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, err := parseWindow(r)
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		report, err := rh.reportService.RevenueReport(ctx, start, end)
		resp := dto.RevenueReportResponse{
			Totals:        report.Totals,
			PercentChange: report.PercentChange,
			Daily:         report.Daily,
			TopProducts:   report.TopProducts,
			Orders:        make([]dto.OrderResponse, 0, len(report.Orders)),
		}
		for _, order := range report.Orders {
			resp.Orders = append(resp.Orders, dto.NewOrderResponse(order))
		}

		if err != nil {
			if !rh.degrade(w, err) {
				return
			}
			resp.Error = storeUnavailableBanner
		}
		jsonResponse(w, http.StatusOK, resp)
	}
}

func (rh *ReportHandler) ExportCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, err := parseWindow(r)
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		data, err := rh.reportService.ExportWindow(ctx, start, end)
		if err != nil {
			if errors.Is(err, core.ErrInvalidWindow) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			jsonError(w, http.StatusServiceUnavailable, core.ErrFetch)
			return
		}

		filename := fmt.Sprintf("revenue-report-%s-to-%s.csv",
			start.Format(dateParamFormat), end.Format(dateParamFormat))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func (rh *ReportHandler) RevenueWidget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		widget, err := rh.reportService.RevenueWidget(ctx, time.Now())
		resp := dto.RevenueWidgetResponse{
			TotalRevenue:  widget.TotalRevenue,
			PercentChange: widget.PercentChange,
			Daily:         widget.Daily,
		}
		if err != nil {
			if !rh.degrade(w, err) {
				return
			}
			resp.Error = storeUnavailableBanner
		}
		jsonResponse(w, http.StatusOK, resp)
	}
}

func (rh *ReportHandler) OrderStatsWidget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		widget, err := rh.reportService.OrderStatsWidget(ctx, time.Now())
		resp := dto.OrderStatsWidgetResponse{
			TotalOrders:   widget.TotalOrders,
			PercentChange: widget.PercentChange,
			Daily:         widget.Daily,
		}
		if err != nil {
			if !rh.degrade(w, err) {
				return
			}
			resp.Error = storeUnavailableBanner
		}
		jsonResponse(w, http.StatusOK, resp)
	}
}

func (rh *ReportHandler) OrderTimeWidget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		dist, err := rh.reportService.OrderTimeWidget(ctx, time.Now())
		resp := dto.OrderTimeWidgetResponse{HourBandDistribution: dist}
		if err != nil {
			if !rh.degrade(w, err) {
				return
			}
			resp.Error = storeUnavailableBanner
		}
		jsonResponse(w, http.StatusOK, resp)
	}
}

func (rh *ReportHandler) MostOrdered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		items, err := rh.reportService.MostOrdered(ctx, time.Now())
		resp := dto.MostOrderedResponse{Items: items}
		if resp.Items == nil {
			resp.Items = []models.MostOrderedItem{}
		}
		if err != nil {
			if !rh.degrade(w, err) {
				return
			}
			resp.Error = storeUnavailableBanner
		}
		jsonResponse(w, http.StatusOK, resp)
	}
}

// degrade reports whether the caller should fall back to an empty dataset
// with a banner. Errors that are not store failures are written directly.
func (rh *ReportHandler) degrade(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, core.ErrRefreshInFlight):
		jsonError(w, http.StatusTooManyRequests, err)
		return false
	case errors.Is(err, core.ErrInvalidWindow):
		jsonError(w, http.StatusBadRequest, err)
		return false
	}
	rh.mylog.Action("report_degraded").Error("Serving empty dataset", err)
	return true
}
