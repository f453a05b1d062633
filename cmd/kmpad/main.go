//go:build linux

// kmpad - keyboard/mouse to virtual gamepad translator
// Presents a Linux uinput gamepad driven by the local keyboard and mouse.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kmpad/internal/cursor"
	"kmpad/internal/pad"
	"kmpad/internal/session"
	"kmpad/internal/shaper"
	"kmpad/internal/source"
	"kmpad/internal/tray"
)

var (
	version = "0.1.0"

	showVer       = flag.Bool("version", false, "Show version")
	listDevs      = flag.Bool("list", false, "List detected input devices")
	profileName   = flag.String("profile", "nimble", "Motion profile (nimble|steady)")
	externalHider = flag.Bool("external-hider", false, "Assume the cursor hider runs outside this process")
	useTray       = flag.Bool("tray", true, "Show a system tray icon")
	interval      = flag.Duration("interval", session.DefaultRecenterInterval, "Recenter deadline after motion stops")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("kmpad version %s\n", version)
		return
	}

	if *listDevs {
		listDevices()
		return
	}

	runService()
}

func listDevices() {
	devices, err := source.Devices()
	if err != nil {
		log.Fatalf("Failed to enumerate input devices: %v", err)
	}

	fmt.Println("Detected Input Devices:")
	fmt.Println("-----------------------")
	for _, dev := range devices {
		fmt.Printf("Path: %s\n", dev.Path)
		fmt.Printf("  Name: %s\n", dev.Name)
		if dev.Keyboard {
			fmt.Printf("  Keyboard: ✓\n")
		}
		if dev.Pointer {
			fmt.Printf("  Pointer: ✓\n")
		}
		fmt.Println()
	}
}

func runService() {
	log.Println("kmpad starting...")

	profile, ok := shaper.ProfileByName(*profileName)
	if !ok {
		log.Fatalf("Unknown motion profile %q (want nimble or steady)", *profileName)
	}

	device, err := pad.New()
	if err != nil {
		log.Fatalf("Failed to create virtual controller: %v", err)
	}

	src, err := source.Open()
	if err != nil {
		_ = device.Close()
		log.Fatalf("Failed to open input devices: %v", err)
	}
	defer src.Stop()

	strategy := session.HiderManaged
	if *externalHider {
		strategy = session.HiderExternal
	}

	sess := session.New(device, cursor.New(), session.Config{
		Strategy:         strategy,
		Profile:          profile,
		RecenterInterval: *interval,
	})

	// Signals end the session through the same serial stream as everything else.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		src.Push(source.Event{Type: source.ExitRequested})
	}()

	log.Printf("Session active (profile=%s, recenter=%s). Delete key exits.", profile.Name, *interval)

	if *useTray {
		runWithTray(sess, src)
		return
	}

	if err := sess.Run(src.Events()); err != nil {
		log.Fatalf("Session shutdown failed: %v", err)
	}
}

// runWithTray keeps the tray loop on the main goroutine, which systray
// requires, and runs the session beside it.
func runWithTray(sess *session.Session, src *source.Source) {
	t := tray.New(
		func() { src.Push(source.Event{Type: source.CursorToggleRequested}) },
		func() { src.Push(source.Event{Type: source.ExitRequested}) },
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- sess.Run(src.Events())
		t.Stop()
	}()

	t.Run()

	if err := <-errCh; err != nil {
		log.Fatalf("Session shutdown failed: %v", err)
	}
}
