package resumepdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Configuration validation errors.
	ErrInvalidHeaderColor = errors.New("invalid header color")
	ErrInvalidFontScheme  = errors.New("invalid font scheme")
	ErrInvalidTheme       = errors.New("invalid theme")
	ErrUnknownEngine      = errors.New("unknown layout engine")

	// Rendering errors.
	ErrBackendUnavailable = errors.New("layout backend unavailable")
	ErrBrowserConnect     = errors.New("failed to connect to browser")
	ErrPageCreate         = errors.New("failed to create browser page")
	ErrPageLoad           = errors.New("failed to load page")
	ErrPDFGeneration      = errors.New("PDF generation failed")
)
