package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"scrollwatch/internal/eventbus"
)

// openLog moves log output to the file at path and replays what was logged
// into early before it was open. On failure output falls back to stderr.
func openLog(path string, early *bytes.Buffer) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(os.Stderr)
		_, _ = os.Stderr.Write(early.Bytes())
		return nil, err
	}
	// Nothing writes to early once the output has moved
	log.SetOutput(f)
	if _, err := f.Write(early.Bytes()); err != nil {
		log.Printf("Could not replay startup log: %v", err)
	}
	early.Reset()
	return f, nil
}

// subscribeLifecycleLog logs config and tracker lifecycle events. The
// returned function removes the subscribers.
func subscribeLifecycleLog(bus eventbus.EventBus) func() {
	unsubs := []func(){
		bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
				log.Printf("Config loaded from %s: source=%s throttle=%dms", event.Path, event.Source, event.ThrottleMs)
			}
		}),
		bus.Subscribe(eventbus.EventTrackerActivated, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.TrackerActivatedEvent); ok {
				log.Printf("Tracker activated: source=%s activation=%d interval=%s", event.Source, event.Activation, event.Interval)
			}
		}),
		bus.Subscribe(eventbus.EventTrackerDeactivated, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.TrackerDeactivatedEvent); ok {
				log.Printf("Tracker deactivated: source=%s activation=%d", event.Source, event.Activation)
			}
		}),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
