//go:build linux

package pad

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// uinput ioctl numbers and limits (linux/uinput.h).
const (
	uinputPath    = "/dev/uinput"
	uinputMaxName = 80

	uiDevCreate  = 0x5501
	uiDevDestroy = 0x5502

	uiSetEvBit  = 0x40045564
	uiSetKeyBit = 0x40045565
	uiSetAbsBit = 0x40045567

	busUSB = 0x03
	absCnt = 64
)

// Device identity. Chosen to impersonate a stock Xbox 360 controller so
// generic detection logic on the consuming side recognizes it without
// special-casing.
const (
	deviceName = "Microsoft X-Box 360 pad"
	vendorID   = 0x045e
	productID  = 0x028e
)

// inputID mirrors struct input_id (linux/input.h).
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// uinputUserDev mirrors struct uinput_user_dev (linux/uinput.h).
type uinputUserDev struct {
	Name         [uinputMaxName]byte
	ID           inputID
	FfEffectsMax uint32
	Absmax       [absCnt]int32
	Absmin       [absCnt]int32
	Absfuzz      [absCnt]int32
	Absflat      [absCnt]int32
}

// New creates the virtual controller device. Failure here is fatal to the
// session: without the device handle there is nothing to translate into.
func New() (*Device, error) {
	f, err := os.OpenFile(uinputPath, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s (is the uinput kernel module loaded?): %w", uinputPath, err)
	}

	if err := setup(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Device{f: f, w: f}, nil
}

// setup declares the device's elements and identity, then creates it.
func setup(f *os.File) error {
	if err := ioctlInt(f, uiSetEvBit, uintptr(evKey)); err != nil {
		return fmt.Errorf("declare key events: %w", err)
	}
	for _, code := range Buttons {
		if err := ioctlInt(f, uiSetKeyBit, uintptr(code)); err != nil {
			return fmt.Errorf("declare button 0x%x: %w", code, err)
		}
	}
	if err := ioctlInt(f, uiSetEvBit, uintptr(evAbs)); err != nil {
		return fmt.Errorf("declare abs events: %w", err)
	}
	for _, code := range Axes {
		if err := ioctlInt(f, uiSetAbsBit, uintptr(code)); err != nil {
			return fmt.Errorf("declare axis 0x%x: %w", code, err)
		}
	}

	dev := uinputUserDev{
		ID: inputID{
			Bustype: busUSB,
			Vendor:  vendorID,
			Product: productID,
			Version: 0x110,
		},
	}
	copy(dev.Name[:], deviceName)
	for _, code := range Axes {
		dev.Absmin[code] = AxisMin
		dev.Absmax[code] = AxisMax
		// flat/fuzz stay zero: the motion shaper already smooths input.
	}

	buf := (*[unsafe.Sizeof(dev)]byte)(unsafe.Pointer(&dev))[:]
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("write device description: %w", err)
	}

	if err := ioctlInt(f, uiDevCreate, 0); err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	return nil
}

// Close destroys the virtual device and releases the handle.
func (d *Device) Close() error {
	if d.f == nil {
		return nil
	}
	if err := ioctlInt(d.f, uiDevDestroy, 0); err != nil {
		_ = d.f.Close()
		d.f = nil
		return fmt.Errorf("destroy device: %w", err)
	}
	err := d.f.Close()
	d.f = nil
	return err
}

func ioctlInt(f *os.File, req uintptr, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, arg)
	if errno != 0 {
		return errno
	}
	return nil
}
