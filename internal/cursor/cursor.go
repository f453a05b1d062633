// Package cursor controls the external helper process that hides the
// on-screen mouse cursor while a session is active.
package cursor

import (
	"fmt"
	"log"
	"os/exec"
)

// The helper and its fixed invocation: always hide, ignore the mod4 modifier,
// re-hide on keyboard and mouse activity.
const helperCommand = "xbanish"

var helperArgs = []string{"-a", "-i", "mod4", "-m", "se"}

// Controller tracks at most one running helper process and toggles it.
type Controller struct {
	command string
	args    []string
	proc    *exec.Cmd
}

// New returns a controller for the default cursor-hiding helper.
func New() *Controller {
	return NewCommand(helperCommand, helperArgs...)
}

// NewCommand returns a controller running an arbitrary helper command.
func NewCommand(command string, args ...string) *Controller {
	return &Controller{command: command, args: args}
}

// Hidden reports whether a helper process is currently tracked.
func (c *Controller) Hidden() bool {
	return c.proc != nil
}

// SetHidden starts or stops the helper. Repeated identical requests are
// no-ops. A failed spawn is logged and leaves the cursor visible; a failed
// kill is returned to the caller, since leaking a running helper is worse
// than a hard stop.
func (c *Controller) SetHidden(hidden bool) error {
	if hidden {
		if c.proc != nil {
			return nil
		}
		cmd := exec.Command(c.command, c.args...)
		if err := cmd.Start(); err != nil {
			log.Printf("Cursor: failed to run %s: %v", c.command, err)
			return nil
		}
		c.proc = cmd
		return nil
	}

	if c.proc == nil {
		return nil
	}
	if err := c.proc.Process.Kill(); err != nil {
		return fmt.Errorf("kill %s: %w", c.command, err)
	}
	// The helper dies from the signal, so Wait reporting a non-zero exit is
	// the expected outcome, not a failure.
	_ = c.proc.Wait()
	c.proc = nil
	return nil
}
