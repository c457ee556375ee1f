package services

import (
	"strconv"
	"strings"

	"resto-admin/internal/admin/domain/models"
)

var csvHeader = []string{"Date", "Order ID", "Customer", "Item Count", "Amount", "Status"}

// ExportCSV renders one row per order with every field double-quoted, the
// format the back-office download expects. encoding/csv only quotes fields
// that need it, so rows are written by hand.
func ExportCSV(orders []models.Order) []byte {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)

	for _, order := range orders {
		writeCSVRow(&b, []string{
			order.CreatedAt.Format(dayKeyFormat),
			order.ID,
			order.CustomerName,
			strconv.Itoa(len(order.Items)),
			strconv.FormatFloat(orderAmount(order), 'f', -1, 64),
			order.Status,
		})
	}

	return []byte(b.String())
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
