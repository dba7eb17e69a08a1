package main

import (
	"os/exec"
	"runtime"
)

// openPDF launches the platform's default viewer for the given file.
// The viewer runs detached; the CLI does not wait for it to exit.
func openPDF(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
