package ecs

// Key is an integer key code written by host input callbacks.
type Key int

// Key codes used by the bundled hosts. They follow the DOM keyCode values so
// any host can map its native keys onto them.
const (
	KeyEnter  Key = 13
	KeyEscape Key = 27
	KeySpace  Key = 32
	KeyLeft   Key = 37
	KeyUp     Key = 38
	KeyRight  Key = 39
	KeyDown   Key = 40
)

// Input is the keyboard snapshot handed to step hooks. Later PressKey and
// ReleaseKey calls do not change a snapshot already handed out.
type Input struct {
	keys map[Key]bool
}

// Pressed reports whether k is held. Unknown keys are not pressed.
func (in Input) Pressed(k Key) bool {
	return in.keys[k]
}

// Any reports whether any of keys is held.
func (in Input) Any(keys ...Key) bool {
	for _, k := range keys {
		if in.keys[k] {
			return true
		}
	}
	return false
}

func (in *Input) set(k Key, down bool) {
	if in.keys == nil {
		in.keys = make(map[Key]bool)
	}
	in.keys[k] = down
}

func (in Input) clone() Input {
	if len(in.keys) == 0 {
		return Input{}
	}
	keys := make(map[Key]bool, len(in.keys))
	for k, down := range in.keys {
		keys[k] = down
	}
	return Input{keys: keys}
}
