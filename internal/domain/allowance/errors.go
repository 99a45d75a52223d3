package allowance

import "errors"

var ErrNoResults = errors.New("no calculation results to export")
