package printer

import "errors"

var (
	ErrInvalidRange      = errors.New("invalid X-Ray No. range")
	ErrNoRecordsInRange  = errors.New("no records found in the given range")
	ErrRenderingDocument = errors.New("error rendering print document")
	ErrOpeningSurface    = errors.New("error opening print surface")
)
