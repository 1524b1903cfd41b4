package logic

import (
	"scrollwatch/internal/domain"
	"scrollwatch/internal/eventbus"
)

// RecordSnapshots feeds every published snapshot on the bus into store.
// The returned func stops recording.
func RecordSnapshots(bus eventbus.EventBus, store SnapshotStore) func() {
	return bus.Subscribe(eventbus.EventSnapshotPublished, func(e eventbus.DomainEvent) {
		published, ok := e.(eventbus.SnapshotPublishedEvent)
		if !ok {
			return
		}
		store.Add(domain.TimedSnapshot{
			At:       published.At,
			Source:   published.Source,
			Snapshot: published.Snapshot,
		})
	})
}
