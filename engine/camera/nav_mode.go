package camera

// NavigationMode identifies which of the three mutually exclusive navigation
// behaviors the rig resolves on a given frame.
type NavigationMode int

const (
	// ModeFreeFly is the default: movement keys translate the camera and its
	// look-at target together along the camera's local axes.
	ModeFreeFly NavigationMode = iota

	// ModeMouseLook is active while the pointer is held down with no lock:
	// pointer movement orbits the camera around its look-at target.
	ModeMouseLook

	// ModeObjectLock is active while a body lock is engaged: the camera
	// orbits and faces the locked body.
	ModeObjectLock
)

func (m NavigationMode) String() string {
	switch m {
	case ModeFreeFly:
		return "free-fly"
	case ModeMouseLook:
		return "mouse-look"
	case ModeObjectLock:
		return "object-lock"
	default:
		return "unknown"
	}
}

// MovementKey identifies a held movement control resolved by the rig each
// frame while in free-fly mode.
type MovementKey int

const (
	MoveForward MovementKey = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown

	// MoveFast is the speed modifier: while held, translation speed doubles.
	MoveFast

	movementKeyCount
)
