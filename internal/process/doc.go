// Package process terminates the headless browser's process tree when a
// renderer is closed. Chrome forks helpers that outlive the parent if only
// the main PID is signalled.
package process
