package services

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	appconfig "github.com/karigarstudio/karigar-studio-api/config"
	"github.com/karigarstudio/karigar-studio-api/models"
)

// exportRange is the sheet range the exporter clears and rewrites on every run.
const exportRange = "Sheet1"

// OrderExporter pushes the current order book to an external spreadsheet.
type OrderExporter interface {
	ExportOrders(ctx context.Context, orders []models.Order) (int, error)
}

// SheetsService exports orders to a Google Sheet. Each export clears the
// target range and rewrites it, so the sheet always mirrors the order book.
type SheetsService struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsService creates a SheetsService from the configured API key and
// spreadsheet ID. Extra client options are appended after the API key option,
// so tests can redirect the service at a local HTTP server.
func NewSheetsService(ctx context.Context, cfg *appconfig.Config, opts ...option.ClientOption) (*SheetsService, error) {
	if cfg.SheetsAPIKey == "" || cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("google sheets export is not configured")
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(cfg.SheetsAPIKey)}, opts...)
	svc, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &SheetsService{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

// ExportOrders clears the export range and appends a header row plus one row
// per order. Returns the number of orders written.
func (s *SheetsService) ExportOrders(ctx context.Context, orders []models.Order) (int, error) {
	_, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, exportRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to clear existing sheet data: %w", err)
	}

	_, err = s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, exportRange, &sheets.ValueRange{Values: OrderRows(orders)}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to write sheet data: %w", err)
	}

	return len(orders), nil
}

// OrderRows builds the spreadsheet values for an export: a header row
// followed by one row per order, in the order given.
func OrderRows(orders []models.Order) [][]interface{} {
	header := []interface{}{
		"Order Number", "Client", "Client Phone", "Order Date", "Item Type",
		"Metal", "Purity", "Size", "Gem Name", "Gemstone Weight",
		"Diamond Color", "Diamond Clarity", "Diamond Weight (ct)", "Number of Stones",
		"Gross Weight", "Net Weight", "Quantity", "Delivered", "Remaining",
		"Estimated Price", "Making Charges", "Expected Delivery", "Actual Delivery",
		"Status", "Karigar ID",
	}

	values := make([][]interface{}, 0, len(orders)+1)
	values = append(values, header)
	for _, o := range orders {
		actual := ""
		if o.ActualDelivery != nil {
			actual = o.ActualDelivery.Format("2006-01-02")
		}
		values = append(values, []interface{}{
			o.OrderNumber,
			o.ClientName,
			o.ClientPhone,
			o.CreatedAt.Format("2006-01-02"),
			o.ItemType,
			o.Metal,
			o.Purity,
			o.Size,
			o.GemName,
			formatWeight(o.GemstoneWeight),
			o.DiamondColor,
			o.DiamondClarity,
			formatWeight(o.DiamondWeight),
			strconv.Itoa(o.NumberOfStones),
			formatWeight(o.GrossWeight),
			formatWeight(o.NetWeight),
			strconv.Itoa(o.Quantity),
			strconv.Itoa(o.DeliveredItems),
			strconv.Itoa(o.RemainingItems),
			o.EstimatedPrice,
			o.MakingCharges,
			o.ExpectedDelivery.Format("2006-01-02"),
			actual,
			o.Status,
			o.KarigarID,
		})
	}
	return values
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
