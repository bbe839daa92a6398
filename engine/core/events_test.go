package core

import "testing"

type testListener struct{ name string }

func TestEventRegisterAndFire(t *testing.T) {
	if !EventSystemInitialize() {
		t.Fatal("initialize")
	}
	t.Cleanup(func() { _ = EventSystemShutdown() })

	l := &testListener{name: "a"}
	var got []string
	ok := EventRegister(EVENT_CODE_OBJECT_SPAWNED, l, func(code SystemEventCode, sender interface{}, ctx EventContext) bool {
		got = append(got, ctx.Path)
		return false
	})
	if !ok {
		t.Fatal("register")
	}

	EventFire(EVENT_CODE_OBJECT_SPAWNED, nil, EventContext{Path: "objects/cube.obj"})
	EventFire(EVENT_CODE_OBJECT_UPDATED, nil, EventContext{Path: "objects/other.obj"})

	if len(got) != 1 || got[0] != "objects/cube.obj" {
		t.Fatalf("received %v", got)
	}
}

func TestEventDuplicateRegistrationRejected(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { _ = EventSystemShutdown() })

	l := &testListener{name: "dup"}
	fn := func(code SystemEventCode, sender interface{}, ctx EventContext) bool { return false }
	if !EventRegister(EVENT_CODE_ASSET_MODIFIED, l, fn) {
		t.Fatal("first registration")
	}
	if EventRegister(EVENT_CODE_ASSET_MODIFIED, l, fn) {
		t.Fatal("duplicate registration must be rejected")
	}
}

func TestEventHandledStopsPropagation(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { _ = EventSystemShutdown() })

	first := &testListener{name: "first"}
	second := &testListener{name: "second"}
	var reachedSecond bool

	EventRegister(EVENT_CODE_CAMERA_CHANGED, first, func(SystemEventCode, interface{}, EventContext) bool {
		return true
	})
	EventRegister(EVENT_CODE_CAMERA_CHANGED, second, func(SystemEventCode, interface{}, EventContext) bool {
		reachedSecond = true
		return false
	})

	if !EventFire(EVENT_CODE_CAMERA_CHANGED, nil, EventContext{}) {
		t.Fatal("expected the event to be handled")
	}
	if reachedSecond {
		t.Fatal("handled event must not propagate further")
	}
}

func TestEventUnregister(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { _ = EventSystemShutdown() })

	l := &testListener{name: "gone"}
	var fired bool
	EventRegister(EVENT_CODE_ASSET_REMOVED, l, func(SystemEventCode, interface{}, EventContext) bool {
		fired = true
		return false
	})
	if !EventUnregister(EVENT_CODE_ASSET_REMOVED, l) {
		t.Fatal("unregister")
	}
	if EventUnregister(EVENT_CODE_ASSET_REMOVED, l) {
		t.Fatal("second unregister must miss")
	}

	EventFire(EVENT_CODE_ASSET_REMOVED, nil, EventContext{})
	if fired {
		t.Fatal("unregistered listener must not fire")
	}
}
