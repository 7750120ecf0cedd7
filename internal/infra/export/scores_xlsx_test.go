package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"keyword-quiz/internal/domain"
)

func TestWriteScoresXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.xlsx")
	records := []domain.PlayerRecord{
		{Name: "Amy", BestScore: 9, LastScore: 6, Attempts: 4, Difficulty: domain.Hard, Date: "2026-10-17"},
		{Name: "Bo", BestScore: 3, LastScore: 3, Attempts: 1, Difficulty: domain.Easy, Date: "2026-10-16"},
	}
	require.NoError(t, WriteScoresXLSX(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ScoresSheet}, f.GetSheetList())
	rows, err := f.GetRows(ScoresSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, scoreHeaders, rows[0])
	assert.Equal(t, []string{"1", "Amy", "9", "6", "4", "hard", "2026-10-17"}, rows[1])
	assert.Equal(t, []string{"2", "Bo", "3", "3", "1", "easy", "2026-10-16"}, rows[2])
}
