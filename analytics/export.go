package analytics

import (
	"io"
	"time"

	"github.com/tealeg/xlsx"
)

// ExportXLSX writes an analytics report workbook: one summary row per
// outlet.
func ExportXLSX(w io.Writer, stats []OutletStats, generatedAt time.Time) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Analytics")
	if err != nil {
		return err
	}

	headers := []string{
		"OutletID", "TotalOrders", "OrdersToday", "CompletedOrders",
		"TotalRevenue", "Reservations", "MostOrderedDish", "GeneratedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, s := range stats {
		row := sheet.AddRow()
		row.AddCell().SetValue(s.OutletID)
		row.AddCell().SetValue(s.TotalOrders)
		row.AddCell().SetValue(s.OrdersToday)
		row.AddCell().SetValue(s.CompletedOrders)
		row.AddCell().SetValue(s.TotalRevenue)
		row.AddCell().SetValue(s.Reservations)
		row.AddCell().SetValue(s.MostOrderedDish)
		row.AddCell().SetValue(generatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}
