package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another daemon with the same executable name is running.
var ErrAlreadyRunning = errors.New("another interval-alarmd is already running")

// otherInstances returns the ids of other processes running executable.
func otherInstances(executable string) ([]int, error) {
	processList, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	var found []int

	for _, process := range processList {
		if process.Pid() == thisProcessID || process.Executable() != executable {
			continue
		}

		found = append(found, process.Pid())
	}

	return found, nil
}

// ensureSingleInstance fails with ErrAlreadyRunning if another copy of this
// executable runs, or kills the other copies when replace is set.
func ensureSingleInstance(replace bool) error {
	executable := filepath.Base(os.Args[0])

	pids, err := otherInstances(executable)
	if err != nil {
		return err
	}

	if len(pids) == 0 {
		return nil
	}

	if !replace {
		return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, pids[0])
	}

	for _, pid := range pids {
		var runningProcess *os.Process

		runningProcess, err = os.FindProcess(pid)
		if err != nil {
			return fmt.Errorf("find process %d: %w", pid, err)
		}

		if err = runningProcess.Kill(); err != nil {
			return fmt.Errorf("stop process %d: %w", pid, err)
		}
	}

	return nil
}
