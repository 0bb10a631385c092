//go:build windows

package execute

import "os/exec"

// setProcGroup is a no-op on Windows; process groups are managed differently.
func setProcGroup(_ *exec.Cmd) {}
