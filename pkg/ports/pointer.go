package ports

// PointerEvent is a pointer position in client coordinates.
type PointerEvent struct {
	X float64
	Y float64
}

// PointerHandler receives document-scope pointer events.
type PointerHandler interface {
	PointerMove(ev PointerEvent)
	PointerUp(ev PointerEvent)
}

// PointerTracker grants document-scope pointer listening for the duration of a gesture.
type PointerTracker interface {
	// Track registers h for move and up events. The returned release func
	// unregisters it; calling it more than once is harmless.
	Track(h PointerHandler) (release func())
}
