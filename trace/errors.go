package trace

import "errors"

var (
	// errExportFailed is reported to observers when an export attempt does
	// not return ExportSuccess.
	errExportFailed = errors.New("span export failed")
)
