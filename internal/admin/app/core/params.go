package core

// WaitTime is the per-request timeout in seconds.
const WaitTime = 10

const (
	// Hour band boundaries, store-local time.
	MorningStartHour   = 5
	AfternoonStartHour = 12
	EveningStartHour   = 17

	// DashboardWindowDays is the default lookback for dashboard widgets.
	DashboardWindowDays = 30

	// TopProductsLimit caps the product breakdown on the revenue report.
	TopProductsLimit = 5

	// MostOrderedLimit caps the most-ordered-items dashboard widget.
	MostOrderedLimit = 4

	DefaultChangedBy = "admin"
)

var MenuCategories = map[string]bool{
	"Minuman": true,
	"Makanan": true,
	"Cemilan": true,
	"Dessert": true,
}
