// Package attendance aggregates raw check-in logs into per-employee
// category counts and applies the disciplinary deduction scale.
package attendance

import (
	"fmt"
	"strings"

	"github.com/absensi-adk/backend-go/internal/domain/sheet"
)

// Attendance categories as they appear in the check-in log. Terlambat (T)
// and pulang cepat (P) tiers grow with how late or early the punch was.
const (
	CategoryAbsent  = "A"
	CategoryT1      = "T1"
	CategoryT2      = "T2"
	CategoryT3      = "T3"
	CategoryT4      = "T4"
	CategoryP1      = "P1"
	CategoryP2      = "P2"
	CategoryP3      = "P3"
	CategoryP4      = "P4"
	CategoryCuti    = "CUTI"
	CategoryTL      = "TL"
	CategoryPresent = "HADIR"
)

// Categories lists every counter in report order.
var Categories = []string{
	CategoryAbsent,
	CategoryT1, CategoryT2, CategoryT3, CategoryT4,
	CategoryP1, CategoryP2, CategoryP3, CategoryP4,
	CategoryCuti, CategoryTL, CategoryPresent,
}

// CheckinRow is one punch from the attendance log export.
type CheckinRow struct {
	Nama                string
	NIP                 string
	Tanggal             string
	JenisCheckin        string
	KategoriTerlambat   string
	KategoriPulangCepat string
}

// Record is one employee's aggregated attendance for the period.
type Record struct {
	Nama      string
	NIP       string
	TotalDays int
	Counts    map[string]int
}

// Keterangan renders the counters as the "A:0, T1:0, ..." summary string
// shown on the performance report.
func (r Record) Keterangan() string {
	parts := make([]string, 0, len(Categories))
	for _, c := range Categories {
		parts = append(parts, fmt.Sprintf("%s:%d", c, r.Counts[c]))
	}
	return strings.Join(parts, ", ")
}

// Check-in log column headers.
const (
	colNama                = "NAMA"
	colNIPBaru             = "NIP_BARU"
	colTanggalWITA         = "TANGGAL_WITA"
	colJenisCheckin        = "JENIS_CHECKIN"
	colKategoriTerlambat   = "KATEGORI_TERLAMBAT"
	colKategoriPulangCepat = "KATEGORI_PULANG_CEPAT"
)

// RowsFromSheet extracts check-in rows from the attendance log worksheet.
// Rows missing a name, NIP or date are dropped. A leading apostrophe on
// the NIP is a spreadsheet text-encoding artifact and is removed.
func RowsFromSheet(s sheet.Sheet) ([]CheckinRow, error) {
	namaIdx := s.ColumnIndexFold(colNama)
	nipIdx := s.ColumnIndexFold(colNIPBaru)
	tanggalIdx := s.ColumnIndexFold(colTanggalWITA)
	jenisIdx := s.ColumnIndexFold(colJenisCheckin)
	terlambatIdx := s.ColumnIndexFold(colKategoriTerlambat)
	pulangIdx := s.ColumnIndexFold(colKategoriPulangCepat)

	if namaIdx < 0 || nipIdx < 0 || tanggalIdx < 0 {
		return nil, ErrMissingCheckinColumns
	}

	var rows []CheckinRow
	for _, row := range s.DataRows() {
		nama := sheet.Cell(row, namaIdx)
		nip := strings.TrimPrefix(sheet.Cell(row, nipIdx), "'")
		tanggal := sheet.Cell(row, tanggalIdx)
		if nama == "" || nip == "" || tanggal == "" {
			continue
		}
		rows = append(rows, CheckinRow{
			Nama:                nama,
			NIP:                 nip,
			Tanggal:             tanggal,
			JenisCheckin:        sheet.Cell(row, jenisIdx),
			KategoriTerlambat:   sheet.Cell(row, terlambatIdx),
			KategoriPulangCepat: sheet.Cell(row, pulangIdx),
		})
	}
	return rows, nil
}

// Aggregate groups check-in rows by employee and date, then rolls each day
// up into category counters. A field-assignment (TL) punch on a day
// overrides everything else that happened that day: the day counts once
// as TL and its other codes are ignored. Employees come back in
// first-seen order.
func Aggregate(rows []CheckinRow) []Record {
	type dayKey struct {
		employee string
		tanggal  string
	}

	var employeeOrder []string
	names := make(map[string]CheckinRow)
	days := make(map[string][]string)
	byDay := make(map[dayKey][]CheckinRow)

	for _, row := range rows {
		key := row.NIP + "-" + row.Nama
		if _, ok := names[key]; !ok {
			names[key] = row
			employeeOrder = append(employeeOrder, key)
		}
		dk := dayKey{employee: key, tanggal: row.Tanggal}
		if _, ok := byDay[dk]; !ok {
			days[key] = append(days[key], row.Tanggal)
		}
		byDay[dk] = append(byDay[dk], row)
	}

	records := make([]Record, 0, len(employeeOrder))
	for _, key := range employeeOrder {
		first := names[key]
		rec := Record{
			Nama:   first.Nama,
			NIP:    first.NIP,
			Counts: make(map[string]int, len(Categories)),
		}

		for _, tanggal := range days[key] {
			dayRows := byDay[dayKey{employee: key, tanggal: tanggal}]
			rec.TotalDays++

			hasTL := false
			for _, row := range dayRows {
				if row.JenisCheckin == CategoryTL {
					hasTL = true
					break
				}
			}
			if hasTL {
				rec.Counts[CategoryTL]++
				continue
			}

			for _, row := range dayRows {
				switch row.JenisCheckin {
				case CategoryAbsent, "":
					rec.Counts[CategoryAbsent]++
				case CategoryPresent:
					rec.Counts[CategoryPresent]++
				case CategoryCuti:
					rec.Counts[CategoryCuti]++
				}
				switch row.KategoriTerlambat {
				case CategoryT1, CategoryT2, CategoryT3, CategoryT4:
					rec.Counts[row.KategoriTerlambat]++
				}
				switch row.KategoriPulangCepat {
				case CategoryP1, CategoryP2, CategoryP3, CategoryP4:
					rec.Counts[row.KategoriPulangCepat]++
				}
			}
		}
		records = append(records, rec)
	}
	return records
}
