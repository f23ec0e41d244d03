package main

import (
	"fmt"
	"os"
	"syscall"
)

type action string

const (
	actionShutdown action = "shutdown"
	actionRestart  action = "restart"
)

// process turns shutdown and restart commands into a single request for main.
type process struct {
	actions chan action
}

func newProcess() *process {
	return &process{actions: make(chan action, 1)}
}

func (p *process) Shutdown() {
	p.request(actionShutdown)
}

func (p *process) Restart() {
	p.request(actionRestart)
}

// request drops the action when one is already pending.
func (p *process) request(a action) {
	select {
	case p.actions <- a:
	default:
	}
}

// reexec replaces the current process with a fresh copy of the same binary.
func reexec() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	return syscall.Exec(executable, os.Args, os.Environ())
}
