package input

import (
	"github.com/RafaelCarro/orrery/common"
	"github.com/RafaelCarro/orrery/engine/camera"
	"github.com/RafaelCarro/orrery/engine/window"
)

// binding holds the configurable parts of an input binding.
type binding struct {
	// lockKeys maps key codes to body identifiers for lock toggling.
	lockKeys map[uint32]string
}

// BindOption is a functional option for configuring Bind.
type BindOption func(*binding)

// WithLockKey maps a key to a body lock toggle. Pressing the key calls
// ToggleLock with the given identifier.
//
// Parameters:
//   - keyCode: the virtual key code (see common key code constants)
//   - bodyID: the body identifier to toggle
//
// Returns:
//   - BindOption: option function to apply
func WithLockKey(keyCode uint32, bodyID string) BindOption {
	return func(b *binding) {
		b.lockKeys[keyCode] = bodyID
	}
}

// Bind wires window input events to a camera rig:
//
//   - W/A/S/D translate, Q/E move vertically, Shift is the speed modifier
//   - Space toggles the animation pause (debounced by the rig)
//   - left mouse drag rotates, scroll wheel zooms
//   - keys mapped via WithLockKey toggle body locks
//
// The callbacks only record state on the rig; all pose resolution happens in
// the rig's per-frame Update.
//
// Parameters:
//   - w: the window producing input events
//   - rig: the rig consuming them
//   - options: functional options (lock key bindings)
func Bind(w window.Window, rig camera.Rig, options ...BindOption) {
	b := &binding{
		lockKeys: make(map[uint32]string),
	}
	for _, option := range options {
		option(b)
	}

	w.SetKeyDownCallback(func(keyCode uint32) {
		if key, ok := movementKeyFor(keyCode); ok {
			rig.SetMovementKey(key, true)
			return
		}
		if keyCode == common.KeySpace {
			rig.TogglePause()
			return
		}
		if id, ok := b.lockKeys[keyCode]; ok {
			rig.ToggleLock(id)
		}
	})

	w.SetKeyUpCallback(func(keyCode uint32) {
		if key, ok := movementKeyFor(keyCode); ok {
			rig.SetMovementKey(key, false)
		}
	})

	w.SetMouseDownCallback(func(x, y float32) {
		rig.PointerDown(x, y)
	})
	w.SetMouseUpCallback(func(_, _ float32) {
		rig.PointerUp()
	})
	w.SetMouseMoveCallback(func(x, y float32) {
		rig.PointerMove(x, y)
	})

	w.SetScrollCallback(func(delta float32) {
		rig.Zoom(delta)
	})
}

// movementKeyFor translates a virtual key code into a rig movement key.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - camera.MovementKey: the movement key
//   - bool: true if the code maps to a movement key
func movementKeyFor(keyCode uint32) (camera.MovementKey, bool) {
	switch keyCode {
	case common.KeyW:
		return camera.MoveForward, true
	case common.KeyS:
		return camera.MoveBack, true
	case common.KeyA:
		return camera.MoveLeft, true
	case common.KeyD:
		return camera.MoveRight, true
	case common.KeyE:
		return camera.MoveUp, true
	case common.KeyQ:
		return camera.MoveDown, true
	case common.KeyLeftShift, common.KeyRightShift:
		return camera.MoveFast, true
	default:
		return 0, false
	}
}
