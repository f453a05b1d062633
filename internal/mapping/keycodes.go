package mapping

// Keyboard scan codes (linux/input-event-codes.h), limited to the keys the
// tables bind.
const (
	KeyQ         uint16 = 16
	KeyW         uint16 = 17
	KeyE         uint16 = 18
	KeyR         uint16 = 19
	KeyT         uint16 = 20
	KeyI         uint16 = 23
	KeyLeftCtrl  uint16 = 29
	KeyA         uint16 = 30
	KeyS         uint16 = 31
	KeyD         uint16 = 32
	KeyF         uint16 = 33
	KeyG         uint16 = 34
	KeyJ         uint16 = 36
	KeyK         uint16 = 37
	KeyL         uint16 = 38
	KeyLeftShift uint16 = 42
	KeyBackslash uint16 = 43
	KeyX         uint16 = 45
	KeyC         uint16 = 46
	KeyV         uint16 = 47
	KeyN         uint16 = 49
	KeyM         uint16 = 50
	KeySpace     uint16 = 57
	KeyDelete    uint16 = 111
)

// Mouse button codes.
const (
	BtnLeft  uint16 = 0x110
	BtnRight uint16 = 0x111
)
