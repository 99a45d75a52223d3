package tunjangan

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceBaseline is the monthly tunjangan kinerja an employee is
// entitled to before attendance deductions.
type PerformanceBaseline struct {
	ID               string          `json:"id"`
	NIP              string          `json:"nip"`
	Nama             string          `json:"nama"`
	Jabatan          string          `json:"jabatan"`
	UnitKerja        string          `json:"unit_kerja"`
	TunjanganKinerja decimal.Decimal `json:"tunjangan_kinerja"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
