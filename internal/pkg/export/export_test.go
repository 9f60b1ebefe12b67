package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var batches = Sheet{
	Name:   "batches",
	Header: []string{"id", "name", "strength"},
	Rows: [][]string{
		{"1", "CS-2024-A", "60"},
		{"2", "MATH, Honours", "35"},
	},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, batches))
	assert.Equal(t, "id,name,strength\n1,CS-2024-A,60\n2,\"MATH, Honours\",35\n", buf.String())
}

func TestXLSX_RoundTrip(t *testing.T) {
	rooms := Sheet{Name: "classrooms", Header: []string{"id", "name"}, Rows: [][]string{{"1", "Room 101"}}}

	data, err := XLSX(batches, rooms)
	require.NoError(t, err)

	sheets, err := ReadXLSX(data)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, [][]string{batches.Header, batches.Rows[0], batches.Rows[1]}, sheets["batches"])
	assert.Equal(t, [][]string{{"id", "name"}, {"1", "Room 101"}}, sheets["classrooms"])
}

func TestXLSX_NoSheets(t *testing.T) {
	_, err := XLSX()
	assert.Error(t, err)
}
