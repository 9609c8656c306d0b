package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/xuri/excelize/v2"
)

// Uploader pushes a finished export file to remote storage.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Service handles contact ledger exports
type Service struct {
	db          *ent.Client
	uploader    Uploader
	storagePath string
}

// NewService creates a new export service. uploader may be nil, in which
// case files are only written locally.
func NewService(db *ent.Client, uploader Uploader, storagePath string) *Service {
	// Ensure storage directory exists
	os.MkdirAll(storagePath, 0755)

	return &Service{
		db:          db,
		uploader:    uploader,
		storagePath: storagePath,
	}
}

// CreateExport writes the contact ledger rows for [startDate, endDate]
// to a file in the requested format
func (s *Service) CreateExport(ctx context.Context, req models.ExportRequest) (*models.ExportResponse, error) {
	format := req.Format
	if format == "" {
		format = "xlsx"
	}
	if format != "csv" && format != "xlsx" {
		return nil, fmt.Errorf("invalid format: must be csv or xlsx")
	}

	contacts, err := s.db.SalesContact.Query().
		Where(
			salescontact.DateGTE(req.StartDate),
			salescontact.DateLTE(req.EndDate),
		).
		WithOwner().
		Order(ent.Asc(salescontact.FieldDate), ent.Asc(salescontact.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("contacts-%s-%s-%s.%s", req.StartDate, req.EndDate, timestamp, format)
	path := filepath.Join(s.storagePath, filename)

	var genErr error
	if format == "csv" {
		genErr = s.generateCSV(path, contacts)
	} else {
		genErr = s.generateExcel(path, contacts)
	}
	if genErr != nil {
		return nil, genErr
	}

	resp := &models.ExportResponse{
		FileName:  filename,
		Format:    format,
		RowCount:  len(contacts),
		CreatedAt: time.Now(),
	}

	if s.uploader != nil {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open export file: %w", err)
		}
		defer file.Close()

		contentType := "text/csv"
		if format == "xlsx" {
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		}

		key, err := s.uploader.Upload(ctx, "exports/"+filename, file, contentType)
		if err != nil {
			return resp, fmt.Errorf("export created locally but upload failed: %w", err)
		}
		resp.S3Key = key
	}

	return resp, nil
}

func contactRow(c *ent.SalesContact) []string {
	ownerName := ""
	if c.Edges.Owner != nil {
		ownerName = c.Edges.Owner.Name
	}
	externalID := ""
	if c.ExternalCallID != nil {
		externalID = *c.ExternalCallID
	}
	source := ""
	if c.ExternalSource != nil {
		source = *c.ExternalSource
	}
	return []string{
		strconv.Itoa(c.ID),
		c.Date,
		c.OccurredAt.Format(time.RFC3339),
		ownerName,
		c.ManagerName,
		c.CompanyName,
		c.Phone,
		c.ContactMethod,
		c.Status,
		source,
		externalID,
	}
}

var exportHeaders = []string{
	"ID", "Date", "Occurred At", "Owner", "Manager", "Company",
	"Phone", "Contact Method", "Status", "Source", "External ID",
}

// generateCSV generates a CSV file from contacts
func (s *Service) generateCSV(path string, contacts []*ent.SalesContact) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, c := range contacts {
		if err := writer.Write(contactRow(c)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// generateExcel generates an Excel file from contacts
func (s *Service) generateExcel(path string, contacts []*ent.SalesContact) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Contacts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	// Set header style
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, c := range contacts {
		row := rowIdx + 2 // Start from row 2 (after header)
		for colIdx, val := range contactRow(c) {
			cell := fmt.Sprintf("%c%d", 'A'+colIdx, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range exportHeaders {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 15)
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}
