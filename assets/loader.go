// Package assets provides the default asynchronous texture loader backing
// the tileset pipeline.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/tileset"
)

type load struct {
	img  image.Image
	err  error
	done bool
}

// ImageLoader decodes image files on a bounded pool of workers and answers
// readiness polls. Handles are deduplicated by path, so repeated loads of the
// same texture decode once. Safe for concurrent use.
type ImageLoader struct {
	mu     sync.Mutex
	group  errgroup.Group
	next   tileset.Handle
	loads  map[tileset.Handle]*load
	byPath map[string]tileset.Handle
}

// NewImageLoader creates a loader running at most workers decodes at once.
// Workers <= 0 means unbounded.
func NewImageLoader(workers int) *ImageLoader {
	l := &ImageLoader{
		loads:  make(map[tileset.Handle]*load),
		byPath: make(map[string]tileset.Handle),
	}
	if workers > 0 {
		l.group.SetLimit(workers)
	}
	return l
}

// Load begins loading path and returns its handle without blocking.
func (l *ImageLoader) Load(path string) tileset.Handle {
	l.mu.Lock()
	if h, ok := l.byPath[path]; ok {
		l.mu.Unlock()
		return h
	}
	h := l.next
	l.next++
	ld := &load{}
	l.loads[h] = ld
	l.byPath[path] = h
	l.mu.Unlock()

	l.group.Go(func() error {
		img, err := decodeFile(path)
		l.mu.Lock()
		ld.img = img
		ld.err = err
		ld.done = true
		l.mu.Unlock()
		return nil
	})
	return h
}

// IsLoaded reports whether a handle reached a successful terminal state. A
// failed or unknown handle never reports loaded.
func (l *ImageLoader) IsLoaded(h tileset.Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	ld, ok := l.loads[h]
	return ok && ld.done && ld.err == nil
}

// Image returns the decoded pixels for a handle, or the load's error.
func (l *ImageLoader) Image(h tileset.Handle) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ld, ok := l.loads[h]
	if !ok {
		return nil, fmt.Errorf("assets: unknown handle %d", h)
	}
	if !ld.done {
		return nil, fmt.Errorf("assets: handle %d still loading", h)
	}
	if ld.err != nil {
		return nil, ld.err
	}
	return ld.img, nil
}

// Wait blocks until every load issued so far has finished, then returns the
// first load error, if any. Groups holding a failed handle never become
// ready, so callers use Wait to tell "still decoding" from "stuck".
func (l *ImageLoader) Wait() error {
	_ = l.group.Wait()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ld := range l.loads {
		if ld.err != nil {
			return ld.err
		}
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}
