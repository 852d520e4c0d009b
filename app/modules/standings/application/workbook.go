package standingsservice

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const standingsSheet = "Standings"

var workbookHeader = []any{"Rank", "Participant", "Type", "Wins", "Played", "Draws", "Losses", "Points"}

// RenderWorkbook produces an XLSX workbook with one sheet holding the standings table.
func RenderWorkbook(view *StandingsView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(standingsSheet, "A1", &workbookHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(standingsSheet, "A1", "H1", bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range view.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		kind := "Human"
		if r.IsBot {
			kind = "Bot"
		}
		row := []any{r.Rank, r.Name, kind, r.Wins, r.MatchesPlayed, r.Draws, r.Losses, r.PointsScored}
		if err := f.SetSheetRow(standingsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(standingsSheet, "B", "B", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
