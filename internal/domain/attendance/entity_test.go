package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

func checkinSheet(rows ...[]string) sheet.Sheet {
	all := [][]string{{"NAMA", "NIP_BARU", "TANGGAL_WITA", "JENIS_CHECKIN", "KATEGORI_TERLAMBAT", "KATEGORI_PULANG_CEPAT"}}
	return sheet.Sheet{Rows: append(all, rows...)}
}

func TestRowsFromSheet(t *testing.T) {
	s := checkinSheet(
		[]string{"Budi", "'199802152024211001", "2025-07-01", "HADIR", "", ""},
		[]string{"", "123", "2025-07-01", "HADIR", "", ""},
		[]string{"Ani", "456", "", "HADIR", "", ""},
	)
	rows, err := RowsFromSheet(s)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "199802152024211001", rows[0].NIP)
	assert.Equal(t, "Budi", rows[0].Nama)
}

func TestRowsFromSheetMissingColumns(t *testing.T) {
	s := sheet.Sheet{Rows: [][]string{{"NAMA", "TANGGAL_WITA"}}}
	_, err := RowsFromSheet(s)
	assert.ErrorIs(t, err, ErrMissingCheckinColumns)
}

func TestAggregateFieldAssignmentOverridesDay(t *testing.T) {
	// A TL punch on a day suppresses every other code logged that day.
	rows := []CheckinRow{
		{Nama: "Budi", NIP: "100", Tanggal: "2025-07-01", JenisCheckin: "HADIR", KategoriTerlambat: "T3"},
		{Nama: "Budi", NIP: "100", Tanggal: "2025-07-01", JenisCheckin: "TL"},
		{Nama: "Budi", NIP: "100", Tanggal: "2025-07-02", JenisCheckin: "HADIR", KategoriTerlambat: "T1"},
	}
	records := Aggregate(rows)
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, 2, rec.TotalDays)
	assert.Equal(t, 1, rec.Counts[CategoryTL])
	assert.Equal(t, 0, rec.Counts[CategoryT3])
	assert.Equal(t, 1, rec.Counts[CategoryPresent])
	assert.Equal(t, 1, rec.Counts[CategoryT1])
}

func TestAggregateEmptyCheckinCountsAsAbsent(t *testing.T) {
	rows := []CheckinRow{
		{Nama: "Ani", NIP: "200", Tanggal: "2025-07-01"},
	}
	records := Aggregate(rows)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Counts[CategoryAbsent])
}

func TestAggregatePreservesFirstSeenOrder(t *testing.T) {
	rows := []CheckinRow{
		{Nama: "Zul", NIP: "300", Tanggal: "2025-07-01", JenisCheckin: "HADIR"},
		{Nama: "Ani", NIP: "200", Tanggal: "2025-07-01", JenisCheckin: "HADIR"},
		{Nama: "Zul", NIP: "300", Tanggal: "2025-07-02", JenisCheckin: "HADIR"},
	}
	records := Aggregate(rows)
	require.Len(t, records, 2)
	assert.Equal(t, "Zul", records[0].Nama)
	assert.Equal(t, "Ani", records[1].Nama)
	assert.Equal(t, 2, records[0].TotalDays)
}

func TestKeterangan(t *testing.T) {
	rec := Record{Counts: map[string]int{CategoryAbsent: 2, CategoryT1: 1, CategoryPresent: 18}}
	assert.Equal(t,
		"A:2, T1:1, T2:0, T3:0, T4:0, P1:0, P2:0, P3:0, P4:0, CUTI:0, TL:0, HADIR:18",
		rec.Keterangan())
}
