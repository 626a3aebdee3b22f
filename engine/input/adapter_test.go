package input

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/RafaelCarro/orrery/common"
	"github.com/RafaelCarro/orrery/engine/body"
	"github.com/RafaelCarro/orrery/engine/camera"
	"github.com/RafaelCarro/orrery/engine/window"
)

// stubWindow records the callbacks Bind installs so tests can fire events
// without a real platform window.
type stubWindow struct {
	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(delta float32)
	onKeyDown   func(keyCode uint32)
	onKeyUp     func(keyCode uint32)
	onMouseDown func(x, y float32)
	onMouseUp   func(x, y float32)
	onMouseMove func(x, y float32)
}

var _ window.Window = &stubWindow{}

func (s *stubWindow) SetUpdateCallback(cb func())                { s.onUpdate = cb }
func (s *stubWindow) SetResizeCallback(cb func(w, h int))        { s.onResize = cb }
func (s *stubWindow) SetScrollCallback(cb func(delta float32))   { s.onScroll = cb }
func (s *stubWindow) SetKeyDownCallback(cb func(keyCode uint32)) { s.onKeyDown = cb }
func (s *stubWindow) SetKeyUpCallback(cb func(keyCode uint32))   { s.onKeyUp = cb }
func (s *stubWindow) SetMouseDownCallback(cb func(x, y float32)) { s.onMouseDown = cb }
func (s *stubWindow) SetMouseUpCallback(cb func(x, y float32))   { s.onMouseUp = cb }
func (s *stubWindow) SetMouseMoveCallback(cb func(x, y float32)) { s.onMouseMove = cb }
func (s *stubWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (s *stubWindow) IsRunning() bool                            { return true }
func (s *stubWindow) Close() error                               { return nil }
func (s *stubWindow) ProcessMessages()                           {}
func (s *stubWindow) Width() int                                 { return 1280 }
func (s *stubWindow) Height() int                                { return 720 }

func newTestRig(t *testing.T) camera.Rig {
	t.Helper()
	registry := body.NewRegistry()
	registry.Add("earth", body.NewPlanet("earth", body.WithRadius(3)))
	return camera.NewRig(registry, camera.WithPose(0, 0, 100, 0, 0, 0))
}

func TestBindMovementKeys(t *testing.T) {
	w := &stubWindow{}
	rig := newTestRig(t)
	Bind(w, rig)

	px, _, pz := rig.Position()

	w.onKeyDown(common.KeyW)
	rig.Update(1.0)
	_, _, z2 := rig.Position()
	if z2 >= pz {
		t.Errorf("holding W should move forward, z %f -> %f", pz, z2)
	}

	w.onKeyUp(common.KeyW)
	rig.Update(1.0)
	_, _, z3 := rig.Position()
	if z3 != z2 {
		t.Errorf("releasing W should stop movement, z %f -> %f", z2, z3)
	}

	x2, _, _ := rig.Position()
	if x2 != px {
		t.Errorf("forward movement must not strafe, x %f -> %f", px, x2)
	}
}

func TestBindPauseToggle(t *testing.T) {
	w := &stubWindow{}
	rig := newTestRig(t)
	Bind(w, rig)

	if rig.Paused() {
		t.Fatal("rig should start unpaused")
	}
	w.onKeyDown(common.KeySpace)
	if !rig.Paused() {
		t.Error("space should toggle pause")
	}
}

func TestBindLockKey(t *testing.T) {
	w := &stubWindow{}
	rig := newTestRig(t)
	Bind(w, rig, WithLockKey(common.Key1, "earth"))

	w.onKeyDown(common.Key1)
	id, locked := rig.LockedBody()
	if !locked || id != "earth" {
		t.Errorf("LockedBody = (%q, %v), want (earth, true)", id, locked)
	}

	w.onKeyDown(common.Key1)
	if _, locked := rig.LockedBody(); locked {
		t.Error("pressing the lock key again should release the lock")
	}
}

func TestBindUnmappedKeyIgnored(t *testing.T) {
	w := &stubWindow{}
	rig := newTestRig(t)
	Bind(w, rig)

	w.onKeyDown(common.KeyR)
	w.onKeyUp(common.KeyR)
	if _, locked := rig.LockedBody(); locked {
		t.Error("unmapped key must not engage a lock")
	}
	if rig.Paused() {
		t.Error("unmapped key must not toggle pause")
	}
}

func TestBindMouseDrag(t *testing.T) {
	w := &stubWindow{}
	rig := newTestRig(t)
	Bind(w, rig)

	w.onMouseDown(640, 360)
	if rig.Mode() != camera.ModeMouseLook {
		t.Errorf("Mode = %v, want mouse-look while dragging", rig.Mode())
	}
	w.onMouseMove(740, 360)
	w.onMouseUp(740, 360)
	if rig.Mode() != camera.ModeFreeFly {
		t.Errorf("Mode = %v, want free-fly after release", rig.Mode())
	}
}

func TestBindScrollZooms(t *testing.T) {
	w := &stubWindow{}
	rig := newTestRig(t)
	Bind(w, rig)

	_, _, before := rig.Position()
	w.onScroll(2)
	_, _, after := rig.Position()
	if after >= before {
		t.Errorf("scrolling up should dolly toward the target, z %f -> %f", before, after)
	}
}
