// Package tray provides the system tray surface using getlantern/systray.
// The menu only injects requests into the session's event stream; it never
// touches the controller or the cursor helper directly.
package tray

import (
	"github.com/getlantern/systray"
)

// Tray manages the tray icon and its two-item menu.
type Tray struct {
	onToggle func()
	onQuit   func()
	quitCh   chan struct{}
}

// New creates a tray whose menu items call back into the given funcs.
func New(onToggle, onQuit func()) *Tray {
	return &Tray{
		onToggle: onToggle,
		onQuit:   onQuit,
		quitCh:   make(chan struct{}),
	}
}

// Run starts the tray event loop (blocks until Stop).
func (t *Tray) Run() {
	systray.Run(t.setup, t.exited)
}

// Stop removes the icon and ends Run.
func (t *Tray) Stop() {
	systray.Quit()
}

func (t *Tray) setup() {
	systray.SetTitle("kmpad")
	systray.SetTooltip("kmpad - keyboard/mouse gamepad")
	systray.SetIcon(getIcon())

	toggle := systray.AddMenuItem("Toggle cursor", "Show or hide the mouse cursor")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "End the session")

	go func() {
		for {
			select {
			case <-toggle.ClickedCh:
				if t.onToggle != nil {
					t.onToggle()
				}
			case <-quit.ClickedCh:
				if t.onQuit != nil {
					t.onQuit()
				}
			case <-t.quitCh:
				return
			}
		}
	}()
}

func (t *Tray) exited() {
	close(t.quitCh)
}

// getIcon returns a placeholder icon (valid 16x16 ICO)
func getIcon() []byte {
	icon := make([]byte, 1118)
	// ICO Header
	copy(icon[0:6], []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00})
	// Icon Directory
	copy(icon[6:22], []byte{
		0x10, 0x10, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
		0x48, 0x04, 0x00, 0x00, // Size: 1024 (pixels) + 40 (header) + 32 (mask)
		0x16, 0x00, 0x00, 0x00, // Offset
	})
	// DIB Header
	copy(icon[22:62], []byte{
		0x28, 0x00, 0x00, 0x00, // Size
		0x10, 0x00, 0x00, 0x00, // Width
		0x20, 0x00, 0x00, 0x00, // Height (16 * 2 for icon)
		0x01, 0x00, // Planes
		0x20, 0x00, // BPP
		0x00, 0x00, 0x00, 0x00, // Compression
		0x00, 0x04, 0x00, 0x00, // Image Size
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	})
	// The rest (pixels and mask) can stay 0 for transparency
	return icon
}
