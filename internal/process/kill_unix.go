//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the whole process group of pid, so Chrome
// helper processes (renderer, GPU, zygote) die with the browser.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Errors ignored: the launcher's own Kill runs afterwards as a fallback.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
