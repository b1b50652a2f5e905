package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kariqs/foodcourt-api/models"
	"github.com/Kariqs/foodcourt-api/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Orders"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	lineJoiner  = " | "
)

var Header = []string{
	"Order ID",
	"Table Number",
	"Total",
	"Created At",
	"Customer Name",
	"Customer Phone",
	"Waiter Name",
	"Waiter Phone",
	"Items",
}

var columnWidths = []float64{10, 12, 12, 20, 20, 15, 15, 15, 50}

// Row is one order flattened for the day-end sheet.
type Row struct {
	OrderID       uint
	TableNumber   int
	Total         decimal.Decimal
	CreatedAt     string
	CustomerName  string
	CustomerPhone string
	WaiterName    string
	WaiterPhone   string
	Items         string
}

func (r Row) cells() []interface{} {
	return []interface{}{
		r.OrderID,
		r.TableNumber,
		r.Total.InexactFloat64(),
		r.CreatedAt,
		r.CustomerName,
		r.CustomerPhone,
		r.WaiterName,
		r.WaiterPhone,
		r.Items,
	}
}

// Filename embeds the export time, e.g. day_end_2026-10-18T21-30-05.xlsx.
func Filename(at time.Time) string {
	return "day_end_" + at.UTC().Format("2006-01-02T15-04-05") + ".xlsx"
}

func BuildRows(orders []models.Order) []Row {
	rows := make([]Row, 0, len(orders))
	for _, order := range orders {
		row := Row{
			OrderID:     order.ID,
			TableNumber: order.TableNumber,
			Total:       utils.CentsToRupees(order.TotalCents),
			CreatedAt:   order.CreatedAt.UTC().Format(time.RFC3339),
			Items:       DescribeLines(order.Items),
		}
		if order.Customer != nil {
			row.CustomerName = deref(order.Customer.Name)
			row.CustomerPhone = deref(order.Customer.Phone)
		}
		if order.Waiter != nil {
			row.WaiterName = order.Waiter.Name
			row.WaiterPhone = deref(order.Waiter.Phone)
		}
		rows = append(rows, row)
	}
	return rows
}

// DescribeLines renders "Masala Dosa x 2 = ₹300.00 | Cold Coffee x 1 = ₹90.00".
func DescribeLines(lines []models.OrderItem) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s x %d = %s", line.Item.Name, line.Quantity, utils.FormatRupees(line.LineTotalCents())))
	}
	return strings.Join(parts, lineJoiner)
}

func RenderWorkbook(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	header := make([]interface{}, len(Header))
	for i, title := range Header {
		header[i] = title
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		cells := row.cells()
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("write order %d: %w", row.OrderID, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
