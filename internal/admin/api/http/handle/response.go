package handle

import (
	"encoding/json"
	"net/http"
	"time"

	"resto-admin/internal/admin/app/core"
)

func jsonResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}

const dateParamFormat = "2006-01-02"

// parseWindow reads the start/end date query parameters, defaulting to the
// last 30 days when absent.
func parseWindow(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -core.DashboardWindowDays)
	end := now

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.ParseInLocation(dateParamFormat, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.ParseInLocation(dateParamFormat, raw, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}

	return start, end, nil
}
