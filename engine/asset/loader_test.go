package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-color PNG and returns its path.
func writeTestPNG(t *testing.T, name string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestLoadAndWait(t *testing.T) {
	path := writeTestPNG(t, "earth.png", 8, 4)

	l := NewLoader(WithWorkers(2))
	l.Load("earth", path)
	l.Wait()

	tex, ok := l.Texture("earth")
	if !ok {
		t.Fatal("texture not in cache after Wait")
	}
	if tex.Width != 8 || tex.Height != 4 {
		t.Errorf("dimensions = %dx%d, want 8x4", tex.Width, tex.Height)
	}
	if len(tex.Pixels) != 8*4*4 {
		t.Errorf("pixel bytes = %d, want %d", len(tex.Pixels), 8*4*4)
	}
	if tex.Pixels[0] != 200 || tex.Pixels[1] != 100 || tex.Pixels[2] != 50 || tex.Pixels[3] != 255 {
		t.Errorf("first pixel = %v", tex.Pixels[:4])
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoader(WithWorkers(1))
	l.Load("ghost", filepath.Join(t.TempDir(), "missing.png"))
	l.Wait()

	if _, ok := l.Texture("ghost"); ok {
		t.Error("failed load must not populate the cache")
	}
}

func TestLoadDuplicateNameIgnored(t *testing.T) {
	path := writeTestPNG(t, "a.png", 2, 2)

	l := NewLoader(WithWorkers(1))
	l.Load("a", path)
	l.Wait()
	l.Load("a", filepath.Join(t.TempDir(), "missing.png"))
	l.Wait()

	tex, ok := l.Texture("a")
	if !ok || tex.Width != 2 {
		t.Error("first load should win for duplicate names")
	}
}

func TestLoadReader(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	l := NewLoader(WithWorkers(1))
	if err := l.LoadReader("mem", &buf); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	l.Wait()

	tex, ok := l.Texture("mem")
	if !ok {
		t.Fatal("texture not in cache")
	}
	if tex.Width != 3 || tex.Height != 3 {
		t.Errorf("dimensions = %dx%d, want 3x3", tex.Width, tex.Height)
	}
}

func TestTexturesSnapshot(t *testing.T) {
	path := writeTestPNG(t, "b.png", 1, 1)

	l := NewLoader()
	l.Load("b", path)
	l.Wait()

	snap := l.Textures()
	if len(snap) != 1 {
		t.Fatalf("snapshot size = %d, want 1", len(snap))
	}
	delete(snap, "b")
	if _, ok := l.Texture("b"); !ok {
		t.Error("mutating the snapshot must not affect the cache")
	}
}
