package loader

// Event is a pipeline event. It is a closed set: LoadTiles feeds requests in,
// LoadedTileset and TilesetFailed come back out to subscribers.
type Event interface {
	isEvent()
}

// LoadTiles asks the pipeline to build the tileset described by Request.
type LoadTiles struct {
	Request Request
}

// LoadedTileset is emitted once per successfully built group, after the
// finished tileset has been registered.
type LoadedTileset struct {
	Name string
}

// TilesetFailed is emitted when a ready group's atlas could not be built. The
// group is discarded and not retried.
type TilesetFailed struct {
	Name string
	Err  error
}

func (LoadTiles) isEvent()     {}
func (LoadedTileset) isEvent() {}
func (TilesetFailed) isEvent() {}

// EventQueue is a simple FIFO of pipeline events.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
