package body

// Body is the capability contract every celestial body satisfies to
// participate in the visualization. The animation layer drives placement and
// per-frame visual updates through it; the camera layer reads position and
// radius for lock targeting. Any object with this shape may be registered;
// the core consumes bodies, it does not own their construction or lifetime.
type Body interface {
	// Position returns the body's current world-space position.
	//
	// Returns:
	//   - x, y, z: world-space position components
	Position() (x, y, z float32)

	// Radius returns the body's visual radius in world units.
	//
	// Returns:
	//   - float32: the radius
	Radius() float32

	// Update advances the body's per-frame visual state (e.g., self-rotation).
	// Called once per unpaused frame by the animation scheduler.
	//
	// Parameters:
	//   - deltaTime: elapsed simulation time since the last frame in seconds
	Update(deltaTime float32)

	// OrbitAround places the body on its circular parametric orbit around the
	// given center for the given simulated time:
	//
	//	x = cx + sin(simTime*angularSpeed) * distance
	//	z = cz + cos(simTime*angularSpeed) * distance
	//	y = cy
	//
	// Parameters:
	//   - centerX, centerY, centerZ: orbit center in world space
	//   - distance: orbit radius in world units
	//   - angularSpeed: angular velocity in radians per simulated second
	//   - simTime: current simulated time in seconds
	OrbitAround(centerX, centerY, centerZ, distance, angularSpeed, simTime float32)
}
