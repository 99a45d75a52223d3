// Package adktukin reconciles post-confirmation performance-allowance
// data into the treasury's positional ADK Tukin template.
package adktukin

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

// PostConfirmationRow is one employee line from the confirmed allowance
// sheet returned by the finance bureau. Monetary fields stay as the
// formatted strings they arrive in and are parsed at reconcile time.
type PostConfirmationRow struct {
	No                string `json:"no"`
	Nama              string `json:"nama"`
	NIP               string `json:"nip"`
	Jabatan           string `json:"jabatan"`
	UnitKerja         string `json:"unit_kerja"`
	Keterangan        string `json:"keterangan"`
	PotonganKehadiran string `json:"potongan_kehadiran"`
	KelasJabatan      string `json:"kelas_jabatan"`
	Tunkin            string `json:"tunkin"`
	PotBPK            string `json:"pot_bpk"`
	Potongan          string `json:"potongan"`
	PotonganLain      string `json:"potongan_lain"`
	PotonganAbsen     string `json:"potongan_absen"`
	TotalPotongan     string `json:"total_potongan"`
	TunkinDiterima    string `json:"tunkin_diterima"`
}

// RowsFromSheet reads the post-confirmation sheet by header name,
// tolerating case differences. Rows without a NIP are dropped.
func RowsFromSheet(s sheet.Sheet) ([]PostConfirmationRow, error) {
	nipIdx := s.ColumnIndexFold("NIP")
	if nipIdx < 0 {
		return nil, ErrMissingNIPColumn
	}

	col := func(names ...string) int {
		for _, name := range names {
			if i := s.ColumnIndexFold(name); i >= 0 {
				return i
			}
		}
		return -1
	}

	noIdx := col("No")
	namaIdx := col("Nama")
	jabatanIdx := col("Jabatan")
	unitIdx := col("Unit kerja", "unit_kerja")
	ketIdx := col("Keterangan")
	potKehadiranIdx := col("Potongan Kehadiran", "potongan_kehadiran")
	kelasIdx := col("Kelas Jabatan", "kelas_jabatan")
	tunkinIdx := col("Tunkin")
	potBPKIdx := col("Pot. BPK", "pot_bpk")
	potonganIdx := col("Potongan")
	potLainIdx := col("Potongan Lain", "potongan_lain")
	potAbsenIdx := col("Potongan Absen", "potongan_absen")
	totalPotIdx := col("Total Potongan", "total_potongan")
	diterimaIdx := col("Tunkin Diterima", "tunkin_diterima")

	var rows []PostConfirmationRow
	for _, row := range s.DataRows() {
		nip := sheet.Cell(row, nipIdx)
		if nip == "" {
			continue
		}
		rows = append(rows, PostConfirmationRow{
			No:                sheet.Cell(row, noIdx),
			Nama:              sheet.Cell(row, namaIdx),
			NIP:               nip,
			Jabatan:           sheet.Cell(row, jabatanIdx),
			UnitKerja:         sheet.Cell(row, unitIdx),
			Keterangan:        sheet.Cell(row, ketIdx),
			PotonganKehadiran: sheet.Cell(row, potKehadiranIdx),
			KelasJabatan:      sheet.Cell(row, kelasIdx),
			Tunkin:            sheet.Cell(row, tunkinIdx),
			PotBPK:            sheet.Cell(row, potBPKIdx),
			Potongan:          sheet.Cell(row, potonganIdx),
			PotonganLain:      sheet.Cell(row, potLainIdx),
			PotonganAbsen:     sheet.Cell(row, potAbsenIdx),
			TotalPotongan:     sheet.Cell(row, totalPotIdx),
			TunkinDiterima:    sheet.Cell(row, diterimaIdx),
		})
	}
	return rows, nil
}

// ParseCurrency converts an Indonesian-formatted amount such as
// "Rp5.194.900,00" to a decimal. The Rp marker, thousands dots and
// whitespace are stripped, the decimal comma becomes a dot, and anything
// unparseable falls back to zero.
func ParseCurrency(value string) decimal.Decimal {
	cleaned := strings.NewReplacer("Rp", "", ".", "", " ", "", "\t", "").Replace(value)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
