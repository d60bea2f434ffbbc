package tileset

import "image"

// Handle is an opaque reference to an in-flight or completed texture load.
type Handle uint64

// Loader is the asynchronous texture loading collaborator. Load never blocks;
// the pipeline polls IsLoaded once per tick and calls Image only after a
// handle reports loaded.
type Loader interface {
	// Load begins loading the image at path and returns a handle for it.
	Load(path string) Handle
	// IsLoaded reports whether the handle's load reached a successful
	// terminal state. A failed or unknown handle never reports loaded.
	IsLoaded(h Handle) bool
	// Image returns the decoded pixels for a loaded handle.
	Image(h Handle) (image.Image, error)
}
