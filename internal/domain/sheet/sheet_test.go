package sheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateColumns(t *testing.T) {
	s := Sheet{Rows: [][]string{
		{"NAMA", "NIP", "GOLONGAN", "1", "2", "03", "15", "31", "TOTAL"},
	}}
	assert.Equal(t, []int{3, 4, 5, 6, 7}, s.DateColumns())
}

func TestDateColumnsEmptySheet(t *testing.T) {
	var s Sheet
	assert.Nil(t, s.DateColumns())
}

func TestCleanNIP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading apostrophe", "'199802152024211001", "199802152024211001"},
		{"embedded apostrophes", "'1998'0215'", "19980215"},
		{"whitespace", "  199802152024211001 ", "199802152024211001"},
		{"clean", "199802152024211001", "199802152024211001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanNIP(tt.input))
		})
	}
}

func TestIsWFO(t *testing.T) {
	assert.True(t, IsWFO("WFO"))
	assert.True(t, IsWFO(" wfo "))
	assert.True(t, IsWFO("Wfo"))
	assert.False(t, IsWFO("WFH"))
	assert.False(t, IsWFO(""))
}

func TestValidateRosterHeader(t *testing.T) {
	assert.NoError(t, ValidateRosterHeader([]string{"NAMA", "NIP", "GOLONGAN", "1"}))

	err := ValidateRosterHeader([]string{"NAME", "ID"})
	var hdrErr *InvalidHeaderError
	assert.True(t, errors.As(err, &hdrErr))
	assert.Equal(t, "NAME", hdrErr.Col0)
	assert.Equal(t, "ID", hdrErr.Col1)

	err = ValidateRosterHeader(nil)
	assert.True(t, errors.As(err, &hdrErr))
	assert.Empty(t, hdrErr.Col0)
}

func TestColumnIndexFold(t *testing.T) {
	s := Sheet{Rows: [][]string{{"Nama ", "NIP Baru", "Tunjangan Kinerja"}}}
	assert.Equal(t, 0, s.ColumnIndexFold("NAMA"))
	assert.Equal(t, 1, s.ColumnIndexFold("nip baru"))
	assert.Equal(t, -1, s.ColumnIndexFold("GOLONGAN"))
}

func TestCell(t *testing.T) {
	row := []string{"a", " b ", "c"}
	assert.Equal(t, "b", Cell(row, 1))
	assert.Equal(t, "", Cell(row, 5))
	assert.Equal(t, "", Cell(row, -1))
}
