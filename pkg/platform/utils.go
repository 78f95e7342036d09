// pkg/platform/utils.go
package platform

import (
	"os/exec"
)

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// CommandExists reports whether cmd resolves via PATH (or is a usable path)
func CommandExists(cmd string) bool {
	return commandExists(cmd)
}
