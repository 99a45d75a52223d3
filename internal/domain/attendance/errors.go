package attendance

import "errors"

var ErrMissingCheckinColumns = errors.New("check-in log is missing the NAMA, NIP_BARU or TANGGAL_WITA column")
