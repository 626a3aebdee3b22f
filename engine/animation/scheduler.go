package animation

import (
	"time"

	"github.com/RafaelCarro/orrery/engine/body"
)

// Speed multiplier clamp bounds for playback control.
const (
	MinSpeedMultiplier = 0.1
	MaxSpeedMultiplier = 5.0
)

// OrbitalParams defines a body's fixed circular path: how far from the orbit
// center it travels and how fast it sweeps around it.
type OrbitalParams struct {
	// Distance is the orbit radius in world units.
	Distance float32

	// AngularSpeed is the angular velocity in radians per simulated second.
	AngularSpeed float32
}

// Scheduler is the single authoritative per-frame driver of simulated time
// and body placement. It owns the simulation clock (elapsed time, playback
// speed, time scale, pause state) and the orbital parameter registry; the
// host frame loop calls Tick once per frame.
//
// All operations are total: unknown identifiers are tolerated as silent
// no-ops rather than errors, since a cosmetic mismatch must never halt the
// frame loop.
type Scheduler interface {
	// Start attaches the scheduler to the host's per-frame callback.
	// Idempotent; a no-op if already running. The first Tick after Start
	// establishes the wall-clock reference without advancing simulated time.
	Start()

	// Stop detaches the scheduler from the host's per-frame callback.
	// Idempotent; a no-op if already stopped.
	Stop()

	// Running reports whether the scheduler is attached to the frame loop.
	//
	// Returns:
	//   - bool: true if running
	Running() bool

	// Tick advances the simulation by one frame. If the scheduler is stopped
	// this does nothing. If paused, elapsed-time accumulation and body
	// repositioning are skipped and the wall-clock reference is NOT advanced,
	// so resuming does not replay the paused duration as an orbit jump.
	//
	// When running and unpaused, the frame delta is the wall-clock delta
	// scaled by the speed multiplier; every body with orbital parameters is
	// placed on its circular path at elapsed × timeScaleFactor, then every
	// registered body receives its per-frame visual update. Post-frame
	// observers run last.
	//
	// Parameters:
	//   - now: the host clock reading for this frame
	Tick(now time.Time)

	// SetPaused transitions the pause state. Resuming re-establishes the
	// wall-clock reference at the next Tick so paused time never enters the
	// simulation.
	//
	// Parameters:
	//   - paused: the target pause state
	SetPaused(paused bool)

	// TogglePause inverts the current pause state via SetPaused.
	TogglePause()

	// Paused reports the current pause state.
	//
	// Returns:
	//   - bool: true if paused
	Paused() bool

	// SetSpeedMultiplier sets the playback speed, clamped to [0.1, 5.0].
	//
	// Parameters:
	//   - v: the requested multiplier
	SetSpeedMultiplier(v float32)

	// SpeedMultiplier returns the current (clamped) playback speed.
	//
	// Returns:
	//   - float32: the multiplier
	SpeedMultiplier() float32

	// SetTimeScaleFactor sets the orbital speed scale. Unconstrained; this is
	// independent of the playback speed multiplier.
	//
	// Parameters:
	//   - v: the new time scale factor
	SetTimeScaleFactor(v float32)

	// TimeScaleFactor returns the current orbital speed scale.
	//
	// Returns:
	//   - float32: the factor
	TimeScaleFactor() float32

	// ResetClock zeroes elapsed simulated time and refreshes the wall-clock
	// reference. Body positions are unchanged until the next Tick.
	ResetClock()

	// SimTime returns the current simulated time (elapsed × timeScaleFactor)
	// in seconds.
	//
	// Returns:
	//   - float32: the simulated time
	SimTime() float32

	// RegisterBody adds a body to the shared registry and, when orbital
	// parameters are given, to the orbit registry. A body registered without
	// parameters receives only the per-frame visual update and never moves,
	// which is how a stationary central body is expressed.
	//
	// Parameters:
	//   - id: the body identifier
	//   - b: the body capability handle
	//   - params: optional orbital parameters (first value used if present)
	RegisterBody(id string, b body.Body, params ...OrbitalParams)

	// DeregisterBody removes the body and any orbital parameters for the
	// given identifier. Unknown identifiers are a no-op.
	//
	// Parameters:
	//   - id: the body identifier
	DeregisterBody(id string)

	// UpdateOrbit sets the orbital parameters for a registered body. If the
	// identifier is not registered this is a silent no-op.
	//
	// Parameters:
	//   - id: the body identifier
	//   - distance: orbit radius in world units
	//   - angularSpeed: angular velocity in radians per simulated second
	UpdateOrbit(id string, distance, angularSpeed float32)

	// Orbit returns the orbital parameters stored for the given identifier.
	//
	// Parameters:
	//   - id: the body identifier
	//
	// Returns:
	//   - OrbitalParams: the stored parameters (zero value if absent)
	//   - bool: true if parameters exist for the identifier
	Orbit(id string) (OrbitalParams, bool)

	// AddFrameObserver registers a callback invoked after body placement and
	// visual updates on every unpaused tick, in registration order. This is
	// the hook hosts use to observe the simulation without reaching into it.
	//
	// Parameters:
	//   - fn: callback receiving the simulated time for the frame
	AddFrameObserver(fn func(simTime float32))
}
