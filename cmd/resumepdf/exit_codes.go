package main

import (
	"errors"
	"os"

	resumepdf "github.com/alnah/go-resumepdf"
	"github.com/alnah/go-resumepdf/internal/config"
)

// Exit codes for the resumepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess = 0 // successful conversion
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags, config, or validation
	ExitIO      = 3 // file not found, permission denied
	ExitBackend = 4 // rendering backend errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Backend errors (exit 4)
	if errors.Is(err, resumepdf.ErrBackendUnavailable) ||
		errors.Is(err, resumepdf.ErrBrowserConnect) ||
		errors.Is(err, resumepdf.ErrPageCreate) ||
		errors.Is(err, resumepdf.ErrPageLoad) ||
		errors.Is(err, resumepdf.ErrPDFGeneration) {
		return ExitBackend
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, resumepdf.ErrEmptyMarkdown) ||
		errors.Is(err, resumepdf.ErrInvalidHeaderColor) ||
		errors.Is(err, resumepdf.ErrInvalidFontScheme) ||
		errors.Is(err, resumepdf.ErrInvalidTheme) ||
		errors.Is(err, resumepdf.ErrUnknownEngine) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputWithBatch) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
