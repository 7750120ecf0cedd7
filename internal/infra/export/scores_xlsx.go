package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"keyword-quiz/internal/domain"
)

// ScoresSheet is the worksheet name used for high-score exports.
const ScoresSheet = "High Scores"

var scoreHeaders = []string{"Rank", "Name", "Best", "Last", "Attempts", "Difficulty", "Date"}

// WriteScoresXLSX writes ranked records (already sorted) to a workbook at path.
func WriteScoresXLSX(path string, records []domain.PlayerRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ScoresSheet)
	if err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, header := range scoreHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ScoresSheet, cell, header); err != nil {
			return err
		}
	}
	for rowIndex, rec := range records {
		row := []interface{}{rowIndex + 1, rec.Name, rec.BestScore, rec.LastScore, rec.Attempts, rec.Difficulty.String(), rec.Date}
		for colIndex, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIndex+1, rowIndex+2)
			if err := f.SetCellValue(ScoresSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
