package asset

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/RafaelCarro/orrery/common"
)

// Texture is a decoded, CPU-side texture ready for GPU upload.
type Texture struct {
	Name   string
	Pixels []byte // RGBA, 4 bytes per pixel
	Width  uint32
	Height uint32
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	cache map[string]*Texture

	workers int
	pool    worker.DynamicWorkerPool

	wg     sync.WaitGroup
	nextID int
}

// Loader decodes image files into RGBA textures on a background worker pool
// and caches the results by name. Loads are fire-and-forget: submit everything
// up front, then call Wait before uploading to the GPU. A failed load is
// logged and its name simply never appears in the cache.
type Loader interface {
	// Load queues an image file for decoding and caches the result under the
	// given name. Duplicate names are ignored (first load wins).
	//
	// Parameters:
	//   - name: the cache key for the decoded texture
	//   - path: the image file path (.png or .jpg/.jpeg)
	Load(name, path string)

	// LoadReader queues image data from a reader for decoding under the given
	// name. The reader is consumed before this method returns; only the decode
	// runs on the pool.
	//
	// Parameters:
	//   - name: the cache key for the decoded texture
	//   - r: the reader providing encoded image data
	//
	// Returns:
	//   - error: error if the reader cannot be consumed
	LoadReader(name string, r io.Reader) error

	// Texture retrieves a decoded texture by name.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - *Texture: the decoded texture or nil
	//   - bool: true if the texture is present
	Texture(name string) (*Texture, bool)

	// Textures returns a copy of the texture cache.
	//
	// Returns:
	//   - map[string]*Texture: all decoded textures keyed by name
	Textures() map[string]*Texture

	// Wait blocks until every queued load has finished, successfully or not.
	Wait()
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the specified options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader with its worker pool started
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		cache:   make(map[string]*Texture),
		workers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(l)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	// Queue size of 64 covers a full solar-system texture set with headroom.
	l.pool = worker.NewDynamicWorkerPool(l.workers, 64, 1*time.Second)

	return l
}

func (l *loader) Load(name, path string) {
	l.mu.Lock()
	if _, ok := l.cache[name]; ok {
		l.mu.Unlock()
		return
	}
	id := l.nextID
	l.nextID++
	l.mu.Unlock()

	l.wg.Add(1)
	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer l.wg.Done()

			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("[Asset] failed to read texture %q from %s: %v", name, path, err)
				return nil, err
			}
			return l.decodeAndStore(name, path, data)
		},
	})
}

func (l *loader) LoadReader(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read texture data for %q: %w", name, err)
	}

	l.mu.Lock()
	if _, ok := l.cache[name]; ok {
		l.mu.Unlock()
		return nil
	}
	id := l.nextID
	l.nextID++
	l.mu.Unlock()

	l.wg.Add(1)
	l.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer l.wg.Done()
			return l.decodeAndStore(name, "", data)
		},
	})
	return nil
}

func (l *loader) Texture(name string) (*Texture, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ok := l.cache[name]
	return t, ok
}

func (l *loader) Textures() map[string]*Texture {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]*Texture, len(l.cache))
	for k, v := range l.cache {
		result[k] = v
	}
	return result
}

func (l *loader) Wait() {
	l.wg.Wait()
}

// decodeAndStore decodes encoded image bytes to RGBA and caches the result.
// Runs on a pool worker. Failures are logged and leave the cache untouched.
func (l *loader) decodeAndStore(name, path string, data []byte) (any, error) {
	src := common.TextureSource{
		Name: name,
		Path: path,
		Data: data,
	}

	pixels, width, height, err := src.Decode()
	if err != nil {
		log.Printf("[Asset] failed to decode texture %q: %v", name, err)
		return nil, err
	}

	l.mu.Lock()
	l.cache[name] = &Texture{
		Name:   name,
		Pixels: pixels,
		Width:  width,
		Height: height,
	}
	l.mu.Unlock()

	return nil, nil
}
