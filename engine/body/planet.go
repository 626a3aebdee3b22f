package body

import (
	"math"
	"sync"
)

// twoPi is used to wrap accumulated spin so it never grows unbounded.
const twoPi = 2 * math.Pi

// RingData describes a flat ring system around a planet (Saturn, Uranus).
// The external draw step builds the ring geometry; the core only carries the
// parameters alongside the body.
type RingData struct {
	// InnerRadius is the inner edge of the ring in world units.
	InnerRadius float32

	// OuterRadius is the outer edge of the ring in world units.
	OuterRadius float32

	// Texture is the asset name of the ring texture.
	Texture string
}

// AtmosphereData describes a translucent atmosphere shell drawn slightly
// larger than the planet surface.
type AtmosphereData struct {
	// Color is the atmosphere tint (RGBA, premultiplied by the draw step).
	Color [4]float32

	// Scale is the shell radius as a multiple of the planet radius.
	Scale float32
}

// planetImpl is the standard Body implementation: a textured sphere with
// optional rings and atmosphere, spinning about its own axis each frame.
type planetImpl struct {
	mu *sync.Mutex

	name   string
	radius float32

	position [3]float32

	// spin is the accumulated axial rotation in radians, advanced by Update.
	spin      float32
	spinSpeed float32

	texture    string
	rings      *RingData
	atmosphere *AtmosphereData
}

// Planet is a Body with visual resource data attached: a surface texture
// name, an accumulated axial spin angle, and optional ring/atmosphere
// parameters. The draw step reads these; the core only maintains them.
type Planet interface {
	Body

	// Name returns the planet's identifier.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Spin returns the accumulated axial rotation in radians, wrapped to [0, 2π).
	//
	// Returns:
	//   - float32: the spin angle
	Spin() float32

	// Texture returns the asset name of the surface texture, or empty if none.
	//
	// Returns:
	//   - string: the texture asset name
	Texture() string

	// Rings returns the ring parameters, or nil if the planet has no rings.
	//
	// Returns:
	//   - *RingData: ring parameters or nil
	Rings() *RingData

	// Atmosphere returns the atmosphere parameters, or nil if none.
	//
	// Returns:
	//   - *AtmosphereData: atmosphere parameters or nil
	Atmosphere() *AtmosphereData

	// SetPosition places the body directly in world space. Used for stationary
	// central bodies that are never driven by OrbitAround.
	//
	// Parameters:
	//   - x, y, z: world-space position components
	SetPosition(x, y, z float32)
}

var _ Planet = &planetImpl{}

// NewPlanet creates a Planet with the given name and options applied in order.
// Radius defaults to 1 and spin speed to 0 (no self-rotation).
//
// Parameters:
//   - name: the planet's identifier
//   - options: functional options to configure the planet
//
// Returns:
//   - Planet: the newly created planet
func NewPlanet(name string, options ...PlanetOption) Planet {
	p := &planetImpl{
		mu:     &sync.Mutex{},
		name:   name,
		radius: 1.0,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *planetImpl) Name() string {
	return p.name
}

func (p *planetImpl) Position() (x, y, z float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position[0], p.position[1], p.position[2]
}

func (p *planetImpl) Radius() float32 {
	return p.radius
}

func (p *planetImpl) Spin() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spin
}

func (p *planetImpl) Texture() string {
	return p.texture
}

func (p *planetImpl) Rings() *RingData {
	return p.rings
}

func (p *planetImpl) Atmosphere() *AtmosphereData {
	return p.atmosphere
}

func (p *planetImpl) SetPosition(x, y, z float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = [3]float32{x, y, z}
}

// Update advances the axial spin by spinSpeed * deltaTime, wrapped to [0, 2π).
func (p *planetImpl) Update(deltaTime float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spin += p.spinSpeed * deltaTime
	p.spin = float32(math.Mod(float64(p.spin), twoPi))
	if p.spin < 0 {
		p.spin += twoPi
	}
}

// OrbitAround places the planet on its circular parametric path. Y stays at
// the center's height; orbits are coplanar in this visualization.
func (p *planetImpl) OrbitAround(centerX, centerY, centerZ, distance, angularSpeed, simTime float32) {
	angle := float64(simTime * angularSpeed)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position[0] = centerX + float32(math.Sin(angle))*distance
	p.position[1] = centerY
	p.position[2] = centerZ + float32(math.Cos(angle))*distance
}
