package tunjangan

import "errors"

var (
	ErrBaselineNotFound = errors.New("performance baseline not found")
	ErrDuplicateNIP     = errors.New("a baseline with this nip already exists")
)
