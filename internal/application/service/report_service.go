package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/storebook/storebook-api/internal/domain/entity"
)

// ReportService renders catalog and sales data into spreadsheet artifacts
// on the local filesystem. Callers treat generation as best-effort.
type ReportService struct {
	dir string
}

// NewReportService creates a new report service writing into dir
func NewReportService(dir string) *ReportService {
	return &ReportService{dir: dir}
}

// ItemReport writes a one-item summary sheet and returns its path.
func (s *ReportService) ItemReport(item *entity.Item) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Field")
	f.SetCellValue(sheet, "B1", "Value")
	f.SetCellValue(sheet, "A2", "Name")
	f.SetCellValue(sheet, "B2", item.Name)
	f.SetCellValue(sheet, "A3", "Quantity")
	f.SetCellValue(sheet, "B3", item.Quantity)
	f.SetCellValue(sheet, "A4", "Price")
	f.SetCellValue(sheet, "B4", item.Price)
	f.SetCellValue(sheet, "A5", "Description")
	f.SetCellValue(sheet, "B5", item.Description)
	f.SetCellValue(sheet, "A6", "Saved At")
	f.SetCellValue(sheet, "B6", item.UpdatedAt.Format("2006-01-02 15:04:05"))

	return s.save(f, fmt.Sprintf("item-%d", item.ID))
}

// SalesReceipt writes a receipt sheet with the store header followed by
// the given sales rows, and returns its path.
func (s *ReportService) SalesReceipt(profile *entity.StoreProfile, sales []entity.Sale) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	row := 1
	if profile != nil {
		f.SetCellValue(sheet, cell("A", row), profile.StoreName)
		f.SetCellValue(sheet, cell("A", row+1), profile.Address)
		f.SetCellValue(sheet, cell("A", row+2), profile.Contact)
		f.SetCellValue(sheet, cell("A", row+3), profile.Email)
		row += 5
	}

	f.SetCellValue(sheet, cell("A", row), "ProductID")
	f.SetCellValue(sheet, cell("B", row), "ProductCode")
	f.SetCellValue(sheet, cell("C", row), "Price")
	f.SetCellValue(sheet, cell("D", row), "Profit")
	f.SetCellValue(sheet, cell("E", row), "Total")
	f.SetCellValue(sheet, cell("F", row), "Client")
	f.SetCellValue(sheet, cell("G", row), "Date")
	row++

	var total float64
	for _, sale := range sales {
		f.SetCellValue(sheet, cell("A", row), sale.ProductID)
		f.SetCellValue(sheet, cell("B", row), sale.ProductCode)
		f.SetCellValue(sheet, cell("C", row), sale.Price)
		f.SetCellValue(sheet, cell("D", row), sale.Profit)
		f.SetCellValue(sheet, cell("E", row), sale.Total)
		f.SetCellValue(sheet, cell("F", row), sale.ClientName)
		f.SetCellValue(sheet, cell("G", row), sale.SaleDate.Format("2006-01-02"))
		total += sale.Total
		row++
	}

	f.SetCellValue(sheet, cell("D", row+1), "Grand Total")
	f.SetCellValue(sheet, cell("E", row+1), total)

	return s.save(f, "receipt")
}

func (s *ReportService) save(f *excelize.File, prefix string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.xlsx", prefix, uuid.New().String()[:8]))
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func cell(col string, row int) string {
	return col + fmt.Sprint(row)
}
