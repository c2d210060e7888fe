package ui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openInBrowser hands a URL to the desktop environment. The command returns
// as soon as the handler is spawned; failures to render the page stay with
// the browser.
func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	// Avoid leaving zombies behind.
	go func() { _ = cmd.Wait() }()
	return nil
}
