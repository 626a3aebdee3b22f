package animation

// SchedulerOption is a functional option for configuring a Scheduler.
type SchedulerOption func(*schedulerImpl)

// WithSpeedMultiplier sets the initial playback speed, clamped to [0.1, 5.0].
//
// Parameters:
//   - v: the initial multiplier
//
// Returns:
//   - SchedulerOption: functional option to set the speed multiplier
func WithSpeedMultiplier(v float32) SchedulerOption {
	return func(s *schedulerImpl) {
		m := float64(v)
		if m < MinSpeedMultiplier {
			m = MinSpeedMultiplier
		}
		if m > MaxSpeedMultiplier {
			m = MaxSpeedMultiplier
		}
		s.speedMultiplier = m
	}
}

// WithTimeScaleFactor sets the initial orbital speed scale.
//
// Parameters:
//   - v: the initial time scale factor
//
// Returns:
//   - SchedulerOption: functional option to set the time scale factor
func WithTimeScaleFactor(v float32) SchedulerOption {
	return func(s *schedulerImpl) {
		s.timeScaleFactor = float64(v)
	}
}

// WithOrbitCenter sets the shared orbit center. The solar visualization keeps
// this at the origin; the option exists for hosts composing multiple systems.
//
// Parameters:
//   - x, y, z: world-space center components
//
// Returns:
//   - SchedulerOption: functional option to set the orbit center
func WithOrbitCenter(x, y, z float32) SchedulerOption {
	return func(s *schedulerImpl) {
		s.center = [3]float32{x, y, z}
	}
}
