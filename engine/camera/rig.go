package camera

// Rig resolves continuous input plus discrete lock requests into a single
// camera pose each frame. It owns the camera's ground truth (position and
// look-at target), the transient input state mutated by event adapters, and
// the lock state (at most one body lock active at a time).
//
// The host frame loop calls Update once per frame, unconditionally, so camera
// navigation keeps working even while the animation scheduler is paused.
// Input mutators (PointerDown, PointerMove, SetMovementKey, Zoom, ToggleLock)
// only write lightweight state; all pose computation happens in Update.
//
// Unknown lock identifiers and degenerate geometry (zero-length view vectors)
// are tolerated as no-ops; the rig degrades gracefully rather than failing
// the session.
type Rig interface {
	// Position returns the camera's current world-space position.
	//
	// Returns:
	//   - x, y, z: world-space position components
	Position() (x, y, z float32)

	// LookAt returns the point the camera's facing direction is computed
	// toward. Distinct from the camera position.
	//
	// Returns:
	//   - x, y, z: world-space look-at components
	LookAt() (x, y, z float32)

	// Mode returns the navigation mode the next Update will resolve.
	//
	// Returns:
	//   - NavigationMode: the active mode
	Mode() NavigationMode

	// Update resolves movement, rotation, and lock state into the camera pose
	// for this frame. Called once per host frame.
	//
	// Parameters:
	//   - deltaTime: elapsed wall-clock time since the last frame in seconds
	Update(deltaTime float32)

	// PointerDown begins a pointer drag. With no lock active the rig first
	// reconciles its rotation state from the camera's current position
	// relative to the look-at target, so the first drag frame does not jump.
	//
	// Parameters:
	//   - x, y: pointer position in input units
	PointerDown(x, y float32)

	// PointerMove accumulates pointer movement into the rotation target at
	// fixed sensitivity. A no-op unless the pointer is down.
	//
	// Parameters:
	//   - x, y: pointer position in input units
	PointerMove(x, y float32)

	// PointerUp ends the pointer drag.
	PointerUp()

	// SetMovementKey records a held/released movement control.
	//
	// Parameters:
	//   - key: the movement control
	//   - down: true while held
	SetMovementKey(key MovementKey, down bool)

	// Zoom adjusts the camera distance by delta × zoom speed, clamped below
	// by the current minimum distance (the locked body's safe viewing
	// distance while a lock is active). Positive delta zooms in.
	//
	// Parameters:
	//   - delta: scroll/pinch delta in input units
	Zoom(delta float32)

	// ToggleLock toggles the named body lock: on if off (clearing any other
	// lock, since at most one is ever active), off if already on. Engaging a lock
	// adopts the body's precomputed safe viewing distance; disengaging
	// restores defaults and recomputes the look-at target a fixed offset in
	// front of the camera's current facing so free navigation resumes without
	// snapping. Unknown identifiers are a no-op.
	//
	// Parameters:
	//   - id: the body identifier
	ToggleLock(id string)

	// LockedBody returns the identifier of the locked body, if any.
	//
	// Returns:
	//   - string: the body identifier (empty when unlocked)
	//   - bool: true if a lock is active
	LockedBody() (string, bool)

	// TogglePause requests a pause toggle. Requests arriving within the
	// debounce window of the previous accepted toggle are rejected (duplicate
	// input events). Every accepted toggle notifies the registered pause
	// observers exactly once, in registration order.
	TogglePause()

	// SetPaused synchronizes the rig's pause view from the host without
	// debouncing, notifying observers if the state changes. This is how a
	// host-side pause command is chained through to all listeners rather than
	// overwriting them.
	//
	// Parameters:
	//   - paused: the target pause state
	SetPaused(paused bool)

	// Paused reports the rig's view of the pause state.
	//
	// Returns:
	//   - bool: true if paused
	Paused() bool

	// AddPauseObserver registers a callback invoked once per accepted pause
	// toggle with the new state. Observers run in registration order.
	//
	// Parameters:
	//   - fn: callback receiving the new pause state
	AddPauseObserver(fn func(paused bool))
}
