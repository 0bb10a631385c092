//go:build !windows

package execute

import (
	"os/exec"
	"syscall"
)

// setProcGroup runs the command in its own process group and makes
// cancellation kill the whole group, including the kernel it spawned.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}
}
