package session

// EventType identifies a change the presentation layer may want to redraw.
type EventType int

const (
	EventHoverChanged       EventType = iota // data: Hover
	EventCutsChanged                         // data: nil
	EventSelectionChanged                    // data: model.Rect, or nil when cleared
	EventExtractionsChanged                  // data: nil
)

func (e EventType) String() string {
	switch e {
	case EventHoverChanged:
		return "HoverChanged"
	case EventCutsChanged:
		return "CutsChanged"
	case EventSelectionChanged:
		return "SelectionChanged"
	case EventExtractionsChanged:
		return "ExtractionsChanged"
	default:
		return "Unknown"
	}
}

// Listener is called synchronously when an event occurs. It must not block.
type Listener func(data any)

// On registers a listener for the specified event type. Listeners run in
// registration order.
func (s *Session) On(event EventType, listener Listener) {
	s.listeners[event] = append(s.listeners[event], listener)
}

// emit triggers all listeners for the specified event type.
func (s *Session) emit(event EventType, data any) {
	for _, listener := range s.listeners[event] {
		listener(data)
	}
}
