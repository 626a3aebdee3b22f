package camera

import (
	"math"
	"sync"
	"time"

	"github.com/RafaelCarro/orrery/common"
	"github.com/RafaelCarro/orrery/engine/body"
)

// Tuning constants for the navigation state machine.
const (
	// DefaultMouseSensitivity is the rotation accumulated per pointer input
	// unit, in radians.
	DefaultMouseSensitivity = 0.005

	// DefaultRotationSmoothing is the per-frame lerp factor pulling the
	// current rotation toward the rotation target in mouse-look mode.
	DefaultRotationSmoothing = 0.05

	// DefaultLockSmoothing is the per-frame lerp factor pulling the camera
	// toward its orbit pose around a locked body.
	DefaultLockSmoothing = 0.1

	// DefaultBaseSpeed is the free-fly translation speed in world units per
	// second. The MoveFast modifier doubles it.
	DefaultBaseSpeed = 60.0

	// DefaultFastMultiplier scales the base speed while MoveFast is held.
	DefaultFastMultiplier = 2.0

	// DefaultZoomSpeed scales scroll/pinch deltas into distance changes.
	DefaultZoomSpeed = 15.0

	// DefaultViewDistance is the camera distance restored when a lock is
	// disengaged.
	DefaultViewDistance = 250.0

	// DefaultMinDistance is the zoom floor while no lock is active.
	DefaultMinDistance = 20.0

	// DefaultLookDistance is the fixed offset in front of the camera at which
	// the look-at target is re-established when a lock is disengaged.
	DefaultLookDistance = 50.0

	// PauseDebounce is the window within which a second pause-toggle request
	// is rejected as a duplicate input event.
	PauseDebounce = 100 * time.Millisecond
)

const (
	halfPi = math.Pi / 2

	// phi (polar angle) clamp bounds, keeping the orbit position away from
	// the poles where the look-at up vector flips.
	minPhi = 0.1
	maxPhi = math.Pi - 0.1

	// epsilonDistance guards trigonometric conversions against zero-length
	// view vectors.
	epsilonDistance = 1e-6
)

// inputState is the transient input snapshot rebuilt from raw events. Event
// adapters write these fields; Update is the sole reader and transformer.
type inputState struct {
	pointerDown  bool
	pointerLastX float32
	pointerLastY float32

	// Rotation state in pitch/yaw form. Pitch is clamped to [-π/2, π/2] at
	// accumulation; the placement step converts to the polar angle and clamps
	// again to [minPhi, maxPhi].
	targetPitch, targetYaw   float32
	currentPitch, currentYaw float32

	keys [movementKeyCount]bool

	lastToggle time.Time
}

// rigImpl is the single implementation of Rig.
type rigImpl struct {
	mu *sync.Mutex

	registry *body.Registry

	position [3]float32
	lookAt   [3]float32

	input inputState

	// lockID is the active lock target; empty means no lock. Invariant: at
	// most one lock is ever active.
	lockID string

	cameraDistance float32
	minDistance    float32

	baseSpeed         float32
	fastMultiplier    float32
	mouseSensitivity  float32
	zoomSpeed         float32
	rotationSmoothing float32
	lockSmoothing     float32

	defaultDistance    float32
	defaultMinDistance float32
	lookDistance       float32

	debounce time.Duration

	paused         bool
	pauseObservers []func(paused bool)
}

var _ Rig = &rigImpl{}

// NewRig creates a camera rig bound to the given body registry (shared by
// reference with the animation scheduler for lock targeting). Passing a nil
// registry panics. The rig starts in free-fly mode at the default view
// distance looking at the origin.
//
// Parameters:
//   - registry: the shared body registry (must not be nil)
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(registry *body.Registry, options ...RigOption) Rig {
	if registry == nil {
		panic("camera: NewRig requires a non-nil body registry")
	}
	r := &rigImpl{
		mu:       &sync.Mutex{},
		registry: registry,

		position: [3]float32{0, DefaultViewDistance * 0.35, DefaultViewDistance},
		lookAt:   [3]float32{0, 0, 0},

		cameraDistance: DefaultViewDistance,
		minDistance:    DefaultMinDistance,

		baseSpeed:         DefaultBaseSpeed,
		fastMultiplier:    DefaultFastMultiplier,
		mouseSensitivity:  DefaultMouseSensitivity,
		zoomSpeed:         DefaultZoomSpeed,
		rotationSmoothing: DefaultRotationSmoothing,
		lockSmoothing:     DefaultLockSmoothing,

		defaultDistance:    DefaultViewDistance,
		defaultMinDistance: DefaultMinDistance,
		lookDistance:       DefaultLookDistance,

		debounce: PauseDebounce,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *rigImpl) Position() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position[0], r.position[1], r.position[2]
}

func (r *rigImpl) LookAt() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookAt[0], r.lookAt[1], r.lookAt[2]
}

func (r *rigImpl) Mode() NavigationMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modeLocked()
}

// modeLocked resolves the active navigation mode. Caller must hold the mutex.
func (r *rigImpl) modeLocked() NavigationMode {
	switch {
	case r.lockID != "":
		return ModeObjectLock
	case r.input.pointerDown:
		return ModeMouseLook
	default:
		return ModeFreeFly
	}
}

func (r *rigImpl) Update(deltaTime float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.modeLocked() {
	case ModeObjectLock:
		r.updateObjectLock()
	case ModeMouseLook:
		r.updateMouseLook()
	default:
		r.updateFreeFly(deltaTime)
	}
}

// updateFreeFly translates position and look-at target together along the
// camera's forward/right/world-up axes, preserving orientation across
// movement. Caller must hold the mutex.
func (r *rigImpl) updateFreeFly(deltaTime float32) {
	step := r.baseSpeed * deltaTime
	if r.input.keys[MoveFast] {
		step *= r.fastMultiplier
	}
	if step == 0 {
		return
	}

	fx, fy, fz, ok := common.VecNormalize(
		r.lookAt[0]-r.position[0],
		r.lookAt[1]-r.position[1],
		r.lookAt[2]-r.position[2],
	)
	if !ok {
		// Degenerate pose (position coincides with target); skip movement
		// rather than propagate NaNs.
		return
	}

	// right = normalize(cross(forward, worldUp)) with worldUp = (0, 1, 0).
	rx, _, rz, ok := common.VecNormalize(-fz, 0, fx)
	if !ok {
		return
	}

	var dx, dy, dz float32
	if r.input.keys[MoveForward] {
		dx += fx * step
		dy += fy * step
		dz += fz * step
	}
	if r.input.keys[MoveBack] {
		dx -= fx * step
		dy -= fy * step
		dz -= fz * step
	}
	if r.input.keys[MoveRight] {
		dx += rx * step
		dz += rz * step
	}
	if r.input.keys[MoveLeft] {
		dx -= rx * step
		dz -= rz * step
	}
	if r.input.keys[MoveUp] {
		dy += step
	}
	if r.input.keys[MoveDown] {
		dy -= step
	}

	r.position[0] += dx
	r.position[1] += dy
	r.position[2] += dz
	r.lookAt[0] += dx
	r.lookAt[1] += dy
	r.lookAt[2] += dz
}

// updateMouseLook eases the current rotation toward the rotation target and
// re-places the camera on a sphere of its current distance around the look-at
// target. Caller must hold the mutex.
func (r *rigImpl) updateMouseLook() {
	r.input.currentPitch += (r.input.targetPitch - r.input.currentPitch) * r.rotationSmoothing
	r.input.currentYaw += (r.input.targetYaw - r.input.currentYaw) * r.rotationSmoothing

	dist := common.VecLength(
		r.position[0]-r.lookAt[0],
		r.position[1]-r.lookAt[1],
		r.position[2]-r.lookAt[2],
	)
	if dist < epsilonDistance {
		return
	}

	phi := common.Clamp(halfPi-r.input.currentPitch, minPhi, maxPhi)
	ox, oy, oz := common.SphericalToCartesian(dist, phi, r.input.currentYaw)
	r.position[0] = r.lookAt[0] + ox
	r.position[1] = r.lookAt[1] + oy
	r.position[2] = r.lookAt[2] + oz
}

// updateObjectLock orbits the camera around the locked body's live position
// at the larger of the user distance and the body's safe viewing distance,
// easing toward the target pose and always facing the body. Caller must hold
// the mutex.
func (r *rigImpl) updateObjectLock() {
	b, ok := r.registry.Get(r.lockID)
	if !ok {
		// The locked body was deregistered out from under us; fall back to
		// free navigation instead of orbiting a stale position.
		r.disengageLockLocked()
		return
	}

	bx, by, bz := b.Position()

	radius := r.cameraDistance
	if radius < r.minDistance {
		radius = r.minDistance
	}

	phi := common.Clamp(halfPi-r.input.targetPitch, minPhi, maxPhi)
	ox, oy, oz := common.SphericalToCartesian(radius, phi, r.input.targetYaw)

	r.position[0] = common.Lerp(r.position[0], bx+ox, r.lockSmoothing)
	r.position[1] = common.Lerp(r.position[1], by+oy, r.lockSmoothing)
	r.position[2] = common.Lerp(r.position[2], bz+oz, r.lockSmoothing)

	r.lookAt = [3]float32{bx, by, bz}
}

func (r *rigImpl) PointerDown(x, y float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.input.pointerDown = true
	r.input.pointerLastX = x
	r.input.pointerLastY = y

	if r.lockID != "" {
		return
	}

	// Reconcile rotation state from the camera's actual position relative to
	// the look-at target so the first drag frame does not jump.
	dx := r.position[0] - r.lookAt[0]
	dy := r.position[1] - r.lookAt[1]
	dz := r.position[2] - r.lookAt[2]
	dist := common.VecLength(dx, dy, dz)
	if dist < epsilonDistance {
		return
	}

	phi := float32(math.Acos(float64(common.Clamp(dy/dist, -1, 1))))
	theta := float32(math.Atan2(float64(dz), float64(dx)))

	pitch := float32(halfPi) - phi
	r.input.targetPitch = pitch
	r.input.currentPitch = pitch
	r.input.targetYaw = theta
	r.input.currentYaw = theta
}

func (r *rigImpl) PointerMove(x, y float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.input.pointerDown {
		return
	}

	dx := x - r.input.pointerLastX
	dy := y - r.input.pointerLastY
	r.input.pointerLastX = x
	r.input.pointerLastY = y

	r.input.targetYaw += dx * r.mouseSensitivity
	r.input.targetPitch = common.Clamp(
		r.input.targetPitch-dy*r.mouseSensitivity,
		-halfPi, halfPi,
	)
}

func (r *rigImpl) PointerUp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.input.pointerDown = false
}

func (r *rigImpl) SetMovementKey(key MovementKey, down bool) {
	if key < 0 || key >= movementKeyCount {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.input.keys[key] = down
}

func (r *rigImpl) Zoom(delta float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cameraDistance -= delta * r.zoomSpeed
	if r.cameraDistance < r.minDistance {
		r.cameraDistance = r.minDistance
	}

	if r.lockID != "" {
		// The lock orbit picks up the new distance on the next Update.
		return
	}

	// Free modes dolly along the view direction, never crossing the floor.
	fx, fy, fz, ok := common.VecNormalize(
		r.lookAt[0]-r.position[0],
		r.lookAt[1]-r.position[1],
		r.lookAt[2]-r.position[2],
	)
	if !ok {
		return
	}
	dist := common.VecLength(
		r.position[0]-r.lookAt[0],
		r.position[1]-r.lookAt[1],
		r.position[2]-r.lookAt[2],
	)
	newDist := dist - delta*r.zoomSpeed
	if newDist < r.minDistance {
		newDist = r.minDistance
	}
	r.position[0] = r.lookAt[0] - fx*newDist
	r.position[1] = r.lookAt[1] - fy*newDist
	r.position[2] = r.lookAt[2] - fz*newDist
}

func (r *rigImpl) ToggleLock(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lockID == id && id != "" {
		r.disengageLockLocked()
		return
	}

	safe, ok := r.registry.SafeDistance(id)
	if !ok {
		// Unknown identifiers never interrupt the session.
		return
	}

	// Engaging clears any previously active lock by overwrite: at most one
	// lock is ever active.
	r.lockID = id
	r.minDistance = safe
	r.cameraDistance = safe
}

// disengageLockLocked clears the active lock, restores default distances, and
// re-establishes the look-at target a fixed offset in front of the camera's
// current facing so free navigation resumes without snapping to the origin.
// Caller must hold the mutex.
func (r *rigImpl) disengageLockLocked() {
	r.lockID = ""
	r.minDistance = r.defaultMinDistance
	r.cameraDistance = r.defaultDistance

	fx, fy, fz, ok := common.VecNormalize(
		r.lookAt[0]-r.position[0],
		r.lookAt[1]-r.position[1],
		r.lookAt[2]-r.position[2],
	)
	if !ok {
		fx, fy, fz = 0, 0, -1
	}
	r.lookAt[0] = r.position[0] + fx*r.lookDistance
	r.lookAt[1] = r.position[1] + fy*r.lookDistance
	r.lookAt[2] = r.position[2] + fz*r.lookDistance
}

func (r *rigImpl) LockedBody() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lockID, r.lockID != ""
}

func (r *rigImpl) TogglePause() {
	r.mu.Lock()

	now := time.Now()
	if !r.input.lastToggle.IsZero() && now.Sub(r.input.lastToggle) < r.debounce {
		// Duplicate input event inside the debounce window.
		r.mu.Unlock()
		return
	}
	r.input.lastToggle = now
	r.paused = !r.paused

	state := r.paused
	observers := make([]func(bool), len(r.pauseObservers))
	copy(observers, r.pauseObservers)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}

func (r *rigImpl) SetPaused(paused bool) {
	r.mu.Lock()
	if r.paused == paused {
		r.mu.Unlock()
		return
	}
	r.paused = paused

	observers := make([]func(bool), len(r.pauseObservers))
	copy(observers, r.pauseObservers)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(paused)
	}
}

func (r *rigImpl) Paused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paused
}

func (r *rigImpl) AddPauseObserver(fn func(paused bool)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pauseObservers = append(r.pauseObservers, fn)
}
