package core

import "sync"

// EventContext carries the payload of a fired event. Which fields are
// meaningful depends on the event code.
type EventContext struct {
	// Path of the asset the event refers to, relative to the assets root.
	Path string
	// Data is an optional code-specific payload.
	Data interface{}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next tick.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// A watched asset file appeared. Path holds the asset path.
	EVENT_CODE_ASSET_CREATED SystemEventCode = 0x10

	// A watched asset file changed on disk. Path holds the asset path.
	EVENT_CODE_ASSET_MODIFIED SystemEventCode = 0x11

	// A watched asset file was deleted. Path holds the asset path.
	EVENT_CODE_ASSET_REMOVED SystemEventCode = 0x12

	// A cached material type was dropped from the registry. Path holds the
	// material type path. Resolved materials derived from it are stale.
	EVENT_CODE_MATERIAL_TYPE_INVALIDATED SystemEventCode = 0x20

	// An object was spawned into the scene. Path holds the object path.
	EVENT_CODE_OBJECT_SPAWNED SystemEventCode = 0x21

	// An existing object was updated in place after a reload.
	EVENT_CODE_OBJECT_UPDATED SystemEventCode = 0x22

	// The camera settings changed. Data holds the new settings.
	EVENT_CODE_CAMERA_CHANGED SystemEventCode = 0x23

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// Should return true if handled, which stops propagation to later listeners.
type FnOnEvent func(code SystemEventCode, sender interface{}, data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.RWMutex
	registered map[SystemEventCode][]*registeredEvent
}

var onceEvent sync.Once
var eventState *eventSystemState

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[SystemEventCode][]*registeredEvent),
		}
	})
	return true
}

func EventSystemShutdown() error {
	if eventState == nil {
		return nil
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()
	eventState.registered = make(map[SystemEventCode][]*registeredEvent)
	return nil
}

// EventRegister starts listening for events fired with the given code.
// Duplicate listener registrations for the same code are rejected.
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("event listener already registered for code 0x%x", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

// EventUnregister stops listening for events with the given code. Returns
// false when no matching registration is found.
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// EventFire dispatches an event to listeners of the given code. If a handler
// returns true the event is considered handled and not passed on.
func EventFire(code SystemEventCode, sender interface{}, context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.RLock()
	events := make([]*registeredEvent, len(eventState.registered[code]))
	copy(events, eventState.registered[code])
	eventState.mu.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, context) {
			return true
		}
	}
	return false
}
