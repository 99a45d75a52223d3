package archive

import "errors"

var (
	ErrDuplicatePeriod  = errors.New("an archive for this period already exists")
	ErrArchiveNotFound  = errors.New("archive not found")
	ErrTemplateNotFound = errors.New("template not found")
)
