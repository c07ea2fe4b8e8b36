package vue

import "fmt"

// EventHandler receives an emitted payload.
type EventHandler func(payload any)

// eventEntry boxes a handler so it can be removed by identity; func values
// themselves are not comparable.
type eventEntry struct {
	fn   EventHandler
	once bool
}

// On subscribes fn to event and returns its unsubscribe function.
func (vm *Instance) On(event string, fn EventHandler) func() {
	entry := &eventEntry{fn: fn}
	vm.events[event] = append(vm.events[event], entry)
	return func() { vm.removeEventEntry(event, entry) }
}

// Once subscribes fn for a single emission.
func (vm *Instance) Once(event string, fn EventHandler) func() {
	entry := &eventEntry{fn: fn, once: true}
	vm.events[event] = append(vm.events[event], entry)
	return func() { vm.removeEventEntry(event, entry) }
}

// Off drops every handler for event, or every handler the instance has
// when event is empty.
func (vm *Instance) Off(event string) {
	if event == "" {
		vm.events = make(map[string][]*eventEntry)
		return
	}
	delete(vm.events, event)
}

func (vm *Instance) removeEventEntry(event string, entry *eventEntry) {
	entries := vm.events[event]
	for i, e := range entries {
		if e == entry {
			vm.events[event] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Emit fires event to the handlers registered on this instance and then to
// the listener the parent attached on the component tag. Handler panics are
// recovered and reported; one bad handler does not stop the rest.
func (vm *Instance) Emit(event string, payload any) {
	if entries := vm.events[event]; len(entries) > 0 {
		// snapshot: a once handler removes itself mid-iteration
		snapshot := make([]*eventEntry, len(entries))
		copy(snapshot, entries)
		for _, entry := range snapshot {
			if entry.once {
				vm.removeEventEntry(event, entry)
			}
			vm.invokeEventHandler(event, entry.fn, payload)
		}
	}
	if listener := vm.parentListeners[event]; listener != nil && listener.Fn != nil {
		if listener.Once {
			delete(vm.parentListeners, event)
		}
		vm.invokeEventHandler(event, EventHandler(listener.Fn), payload)
	}
}

func (vm *Instance) invokeEventHandler(event string, fn EventHandler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			vm.rt.HandleError(recoveredError(r), vm, fmt.Sprintf("handler for event %q", event))
		}
	}()
	fn(payload)
}
