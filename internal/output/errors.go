package output

import "errors"

// ErrUnsupportedFormat is returned when a format name matches no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// ErrEmptyReport is returned when a report carries no result.
var ErrEmptyReport = errors.New("report has no result")
