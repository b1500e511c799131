package storage

import "github.com/ardnew/mscstore/pkg"

// EventType identifies a mount lifecycle notification slot.
type EventType int

// Mount lifecycle event types.
const (
	// EventMountChanged fires after the mount state has changed.
	EventMountChanged EventType = iota

	// EventPreMountChanged fires before the mount state changes.
	EventPreMountChanged
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventMountChanged:
		return "mount-changed"
	case EventPreMountChanged:
		return "pre-mount-changed"
	default:
		return "unknown"
	}
}

// Event carries mount lifecycle notification data.
type Event struct {
	Type    EventType // Which slot fired
	Mounted bool      // New mount state
}

// Callback receives mount lifecycle notifications. The storage layer
// does not itself mount anything; it only forwards state transitions
// reported by the command front end.
type Callback func(Event)

// RegisterCallback installs callback in the slot for eventType,
// replacing any existing callback. Unknown event types fail with
// [pkg.ErrInvalidArgument] and mutate nothing; valid types never fail.
func (h *Handle) RegisterCallback(eventType EventType, callback Callback) error {
	h.ensureOpen()

	h.mutex.Lock()
	defer h.mutex.Unlock()

	switch eventType {
	case EventMountChanged:
		h.onMount = callback
	case EventPreMountChanged:
		h.onPreMount = callback
	default:
		pkg.LogError(pkg.ComponentStorage, "unknown event type",
			"eventType", int(eventType))
		return pkg.ErrInvalidArgument
	}
	return nil
}

// UnregisterCallback clears the slot for eventType. Unknown event types
// fail with [pkg.ErrInvalidArgument] and mutate nothing.
func (h *Handle) UnregisterCallback(eventType EventType) error {
	h.ensureOpen()

	h.mutex.Lock()
	defer h.mutex.Unlock()

	switch eventType {
	case EventMountChanged:
		h.onMount = nil
	case EventPreMountChanged:
		h.onPreMount = nil
	default:
		pkg.LogError(pkg.ComponentStorage, "unknown event type",
			"eventType", int(eventType))
		return pkg.ErrInvalidArgument
	}
	return nil
}

// NotifyMountChanged invokes the mount-changed callback, if one is
// registered.
func (h *Handle) NotifyMountChanged(mounted bool) {
	h.ensureOpen()

	h.mutex.RLock()
	cb := h.onMount
	h.mutex.RUnlock()

	if cb != nil {
		cb(Event{Type: EventMountChanged, Mounted: mounted})
	}
}

// NotifyPreMountChanged invokes the pre-mount-changed callback, if one
// is registered.
func (h *Handle) NotifyPreMountChanged(mounted bool) {
	h.ensureOpen()

	h.mutex.RLock()
	cb := h.onPreMount
	h.mutex.RUnlock()

	if cb != nil {
		cb(Event{Type: EventPreMountChanged, Mounted: mounted})
	}
}
