package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ms-rsvp/internal/locale"
	"ms-rsvp/internal/models"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestBuildWorkbookOrdersOldestFirst(t *testing.T) {
	// Same order the admin list uses: newest first.
	responses := []models.RsvpResponse{
		{ID: 3, CreatedAt: "2025-06-03 09:00:00", FullName: "Carol", Attending: true},
		{ID: 2, CreatedAt: "2025-06-02 09:00:00", FullName: "Bob", Attending: false},
		{ID: 1, CreatedAt: "2025-06-01 09:00:00", FullName: "Alice", Attending: true},
	}

	data, err := BuildWorkbook(responses, locale.For("en"))
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"ID", "Date/Time", "Full Name", "Planning to Attend"}, rows[0])
	assert.Equal(t, []string{"1", "2025-06-01 09:00:00", "Alice", "Yes"}, rows[1])
	assert.Equal(t, []string{"2", "2025-06-02 09:00:00", "Bob", "No"}, rows[2])
	assert.Equal(t, []string{"3", "2025-06-03 09:00:00", "Carol", "Yes"}, rows[3])

	assert.Equal(t, int64(3), responses[0].ID, "input must not be reordered")
}

func TestBuildWorkbookLocalized(t *testing.T) {
	responses := []models.RsvpResponse{{ID: 1, CreatedAt: "2025-06-01 09:00:00", FullName: "Иван", Attending: false}}

	data, err := BuildWorkbook(responses, locale.For("ru"))
	require.NoError(t, err)

	rows := readRows(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, "Имя и фамилия", rows[0][2])
	assert.Equal(t, "Нет", rows[1][3])
}

func TestBuildWorkbookEmpty(t *testing.T) {
	data, err := BuildWorkbook(nil, locale.For("en"))
	require.NoError(t, err)

	rows := readRows(t, data)
	assert.Len(t, rows, 1)
}
