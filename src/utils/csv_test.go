package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"networth/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVToMap(t *testing.T) {
	t.Run("maps first column to second and skips the header", func(t *testing.T) {
		path := writeCSV(t, "pattern,kind\nLETRA,marker\nLECAP,prefix\n")

		data, err := utils.CSVToMap(path)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"LETRA": "marker", "LECAP": "prefix"}, data)
	})

	t.Run("rows with empty values are skipped", func(t *testing.T) {
		path := writeCSV(t, "pattern,kind\nLETRA,\nLECAP,prefix\n")

		data, err := utils.CSVToMap(path)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"LECAP": "prefix"}, data)
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		_, err := utils.CSVToMap("/nonexistent/data.csv")
		assert.Error(t, err)
	})
}
