package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mototrack/mototrack/internal/pkg/constants"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/services/tracker"
)

var (
	// ErrUnknownCommand is returned for commands outside the device's vocabulary
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCommandPending is returned while an earlier command is still in flight
	ErrCommandPending = errors.New("another command is still pending")

	// ErrConfirmationRequired is returned when an arm/disarm toggle is
	// requested without explicit user confirmation
	ErrConfirmationRequired = errors.New("confirmation required")
)

// commandBusyWindow is how long the dispatcher stays busy after a successful
// dispatch. The device offers no acknowledgment channel, so the window is a
// fixed debounce rather than a delivery guarantee.
const commandBusyWindow = 2 * time.Second

// CommandDispatcher writes device commands to the pending-command slot and
// debounces the command controls while one is in flight.
type CommandDispatcher struct {
	mu   sync.Mutex
	repo tracker.DeviceStateRepo
	busy bool

	// onStateChange is invoked on every busy transition
	onStateChange func(busy bool)

	// afterFunc schedules the busy reset; replaced in tests
	afterFunc func(time.Duration, func())
}

// NewCommandDispatcher creates a dispatcher writing through the repository
func NewCommandDispatcher(repo tracker.DeviceStateRepo, onStateChange func(busy bool)) *CommandDispatcher {
	return &CommandDispatcher{
		repo:          repo,
		onStateChange: onStateChange,
		afterFunc:     func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Send validates and dispatches one command. The busy window opens before the
// write and is rolled back if the write fails, so a failed dispatch never
// leaves the controls disabled.
func (d *CommandDispatcher) Send(ctx context.Context, command string) error {
	switch command {
	case constants.CommandArm, constants.CommandDisarm, constants.CommandReboot:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return ErrCommandPending
	}
	d.busy = true
	d.mu.Unlock()
	d.notify(true)

	if err := d.repo.SetPendingCommand(ctx, command); err != nil {
		d.setBusy(false)
		return fmt.Errorf("failed to dispatch command: %w", err)
	}

	logger.Info("Command dispatched",
		logger.String("command", command))

	d.afterFunc(commandBusyWindow, func() { d.setBusy(false) })
	return nil
}

// ToggleArm reads the armed state once and dispatches the inverse command.
// The confirmed flag must be set by the caller after an explicit user prompt.
func (d *CommandDispatcher) ToggleArm(ctx context.Context, confirmed bool) (string, error) {
	if !confirmed {
		return "", ErrConfirmationRequired
	}

	armed, err := d.repo.ArmedState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read armed state: %w", err)
	}

	command := constants.CommandArm
	if armed {
		command = constants.CommandDisarm
	}

	if err := d.Send(ctx, command); err != nil {
		return "", err
	}
	return command, nil
}

// Busy reports whether a command is currently in flight
func (d *CommandDispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

func (d *CommandDispatcher) setBusy(busy bool) {
	d.mu.Lock()
	changed := d.busy != busy
	d.busy = busy
	d.mu.Unlock()
	if changed {
		d.notify(busy)
	}
}

func (d *CommandDispatcher) notify(busy bool) {
	if d.onStateChange != nil {
		d.onStateChange(busy)
	}
}
