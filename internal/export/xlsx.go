package export

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/models"
)

const (
	FileName    = "rsvp_responses.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SheetName   = "RSVP"
)

// BuildWorkbook renders responses as a single-sheet workbook, oldest first.
func BuildWorkbook(responses []models.RsvpResponse, msgs locale.Messages) ([]byte, error) {
	rows := make([]models.RsvpResponse, len(responses))
	copy(rows, responses)
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(msgs.ExportHeaders))
	for i, h := range msgs.ExportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{r.ID, r.CreatedAt, r.FullName, msgs.YesNo(r.Attending)}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r.ID, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
