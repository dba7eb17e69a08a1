// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-resumepdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for browser connection errors. Detects
// CI/Docker environments and suggests the relevant environment variables,
// plus the engine fallback.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use a custom Chrome")
	}
	hints = append(hints, "use --engine fpdf to render without a browser")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the print timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout (e.g. --timeout 60s)")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/resumepdf") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format renders a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}

// formatHints renders multiple hint lines.
func formatHints(hints []string) string {
	var b strings.Builder
	for _, h := range hints {
		b.WriteString(format(h))
	}
	return b.String()
}
