package camera

import "time"

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithPose sets the initial camera position and look-at target.
//
// Parameters:
//   - px, py, pz: world-space camera position
//   - tx, ty, tz: world-space look-at target
//
// Returns:
//   - RigOption: functional option to set the pose
func WithPose(px, py, pz, tx, ty, tz float32) RigOption {
	return func(r *rigImpl) {
		r.position = [3]float32{px, py, pz}
		r.lookAt = [3]float32{tx, ty, tz}
	}
}

// WithBaseSpeed sets the free-fly translation speed in world units per second.
//
// Parameters:
//   - speed: the base speed
//
// Returns:
//   - RigOption: functional option to set the base speed
func WithBaseSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		r.baseSpeed = speed
	}
}

// WithFastMultiplier sets the speed multiplier applied while MoveFast is held.
//
// Parameters:
//   - multiplier: the fast-movement multiplier
//
// Returns:
//   - RigOption: functional option to set the multiplier
func WithFastMultiplier(multiplier float32) RigOption {
	return func(r *rigImpl) {
		r.fastMultiplier = multiplier
	}
}

// WithMouseSensitivity sets the rotation accumulated per pointer input unit.
//
// Parameters:
//   - sensitivity: radians per input unit
//
// Returns:
//   - RigOption: functional option to set the sensitivity
func WithMouseSensitivity(sensitivity float32) RigOption {
	return func(r *rigImpl) {
		r.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - RigOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		r.zoomSpeed = speed
	}
}

// WithViewDistance sets the default camera distance restored when a lock is
// disengaged, and the initial camera distance.
//
// Parameters:
//   - distance: the default view distance
//
// Returns:
//   - RigOption: functional option to set the view distance
func WithViewDistance(distance float32) RigOption {
	return func(r *rigImpl) {
		r.defaultDistance = distance
		r.cameraDistance = distance
	}
}

// WithMinDistance sets the zoom floor used while no lock is active.
//
// Parameters:
//   - distance: the minimum distance
//
// Returns:
//   - RigOption: functional option to set the minimum distance
func WithMinDistance(distance float32) RigOption {
	return func(r *rigImpl) {
		r.defaultMinDistance = distance
		r.minDistance = distance
	}
}

// WithLookDistance sets the fixed offset at which the look-at target is
// re-established in front of the camera when a lock is disengaged.
//
// Parameters:
//   - distance: the look-ahead distance
//
// Returns:
//   - RigOption: functional option to set the look distance
func WithLookDistance(distance float32) RigOption {
	return func(r *rigImpl) {
		r.lookDistance = distance
	}
}

// WithPauseDebounce sets the window within which repeated pause-toggle
// requests are rejected as duplicates.
//
// Parameters:
//   - window: the debounce duration
//
// Returns:
//   - RigOption: functional option to set the debounce window
func WithPauseDebounce(window time.Duration) RigOption {
	return func(r *rigImpl) {
		r.debounce = window
	}
}
