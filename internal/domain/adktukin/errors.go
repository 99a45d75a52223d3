package adktukin

import "errors"

var (
	ErrUnknownTemplateType = errors.New("unknown template type")

	ErrMissingNIPColumn   = errors.New("post-confirmation sheet is missing the NIP column")
	ErrEmptyTemplate      = errors.New("template has no data rows")
	ErrRowTooShort        = errors.New("template row has too few columns")
	ErrTemplateNotFound   = errors.New("no template stored for this employee type and period")
	ErrNoConfirmationData = errors.New("no post-confirmation data uploaded")
)
