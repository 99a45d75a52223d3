package grade

import "time"

// EmployeeGrade is the golongan reference row a roster name is priced
// against.
type EmployeeGrade struct {
	ID        string    `json:"id"`
	Nama      string    `json:"nama"`
	NIP       string    `json:"nip"`
	Golongan  string    `json:"golongan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
