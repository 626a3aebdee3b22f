package body

// PlanetOption is a functional option for configuring a Planet.
type PlanetOption func(*planetImpl)

// WithRadius sets the planet's visual radius in world units.
//
// Parameters:
//   - radius: the radius (must be > 0 to be useful for camera lock distances)
//
// Returns:
//   - PlanetOption: functional option to set the radius
func WithRadius(radius float32) PlanetOption {
	return func(p *planetImpl) {
		p.radius = radius
	}
}

// WithSpinSpeed sets the axial self-rotation speed.
//
// Parameters:
//   - speed: rotation speed in radians per simulated second
//
// Returns:
//   - PlanetOption: functional option to set the spin speed
func WithSpinSpeed(speed float32) PlanetOption {
	return func(p *planetImpl) {
		p.spinSpeed = speed
	}
}

// WithTexture sets the asset name of the planet's surface texture.
//
// Parameters:
//   - name: the texture asset name
//
// Returns:
//   - PlanetOption: functional option to set the texture
func WithTexture(name string) PlanetOption {
	return func(p *planetImpl) {
		p.texture = name
	}
}

// WithRings attaches a ring system to the planet.
//
// Parameters:
//   - innerRadius: inner edge of the ring in world units
//   - outerRadius: outer edge of the ring in world units
//   - texture: asset name of the ring texture
//
// Returns:
//   - PlanetOption: functional option to attach the rings
func WithRings(innerRadius, outerRadius float32, texture string) PlanetOption {
	return func(p *planetImpl) {
		p.rings = &RingData{
			InnerRadius: innerRadius,
			OuterRadius: outerRadius,
			Texture:     texture,
		}
	}
}

// WithAtmosphere attaches a translucent atmosphere shell to the planet.
//
// Parameters:
//   - r, g, b, a: atmosphere tint components
//   - scale: shell radius as a multiple of the planet radius
//
// Returns:
//   - PlanetOption: functional option to attach the atmosphere
func WithAtmosphere(r, g, b, a, scale float32) PlanetOption {
	return func(p *planetImpl) {
		p.atmosphere = &AtmosphereData{
			Color: [4]float32{r, g, b, a},
			Scale: scale,
		}
	}
}

// WithPosition sets the planet's initial world-space position. Orbiting
// bodies are repositioned on the first unpaused tick; stationary bodies keep
// this position for the session.
//
// Parameters:
//   - x, y, z: world-space position components
//
// Returns:
//   - PlanetOption: functional option to set the position
func WithPosition(x, y, z float32) PlanetOption {
	return func(p *planetImpl) {
		p.position = [3]float32{x, y, z}
	}
}
