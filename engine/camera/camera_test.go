package camera

import (
	"math"
	"testing"

	"github.com/RafaelCarro/orrery/engine/body"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera()

	if cam.Rig() != nil {
		t.Error("camera should start without a rig")
	}
	if cam.Near() <= 0 || cam.Far() <= cam.Near() {
		t.Errorf("clip planes near=%f far=%f", cam.Near(), cam.Far())
	}
	ux, uy, uz := cam.Up()
	if ux != 0 || uy != 1 || uz != 0 {
		t.Errorf("up = (%f, %f, %f), want (0, 1, 0)", ux, uy, uz)
	}

	// Without a rig, Update leaves the identity matrices in place.
	cam.Update()
	vm := cam.ViewMatrix()
	if vm[0] != 1 || vm[5] != 1 || vm[10] != 1 || vm[15] != 1 {
		t.Error("view matrix should stay identity without a rig")
	}
}

func TestCameraFollowsRigPose(t *testing.T) {
	registry := body.NewRegistry()
	rig := NewRig(registry, WithPose(0, 0, 100, 0, 0, 0))
	cam := NewCamera(WithRig(rig), WithAspect(16.0/9.0))

	cam.Update()
	before := cam.ViewMatrix()

	// Move the rig and verify the view matrix tracks it.
	rig.SetMovementKey(MoveRight, true)
	rig.Update(1.0)
	cam.Update()
	after := cam.ViewMatrix()

	if before == after {
		t.Error("view matrix should change when the rig moves")
	}
}

func TestCameraProjectionInverse(t *testing.T) {
	registry := body.NewRegistry()
	rig := NewRig(registry)
	cam := NewCamera(WithRig(rig))
	cam.Update()

	proj := cam.ProjectionMatrix()
	inv := cam.InverseProjectionMatrix()

	// proj * inv ≈ identity
	var prod [16]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += proj[k*4+j] * inv[i*4+k]
			}
			prod[i*4+j] = sum
		}
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if math.Abs(float64(prod[i*4+j]-want)) > 1e-4 {
				t.Fatalf("proj * inv differs from identity at (%d, %d): %f", i, j, prod[i*4+j])
			}
		}
	}
}

func TestCameraSetAspectRecomputes(t *testing.T) {
	registry := body.NewRegistry()
	rig := NewRig(registry)
	cam := NewCamera(WithRig(rig), WithAspect(1.0))
	cam.Update()

	before := cam.ProjectionMatrix()
	cam.SetAspect(2.0)
	after := cam.ProjectionMatrix()

	if before[0] == after[0] {
		t.Error("projection x scale should change with the aspect ratio")
	}
	// Only the horizontal scale depends on aspect.
	if before[5] != after[5] {
		t.Error("projection y scale should be aspect-independent")
	}
}
