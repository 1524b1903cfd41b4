package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollwatch/internal/domain"
	"scrollwatch/internal/eventbus"
)

func TestRecordSnapshotsStoresPublishedSnapshots(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	store := NewMemorySnapshotStore(8)
	stop := RecordSnapshots(bus, store)

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	bus.Publish(eventbus.SnapshotPublishedEvent{Source: "element", At: at, Snapshot: domain.Snapshot{X: 2, Y: 9, ScrollingDown: true}})
	bus.Publish(eventbus.TrackerActivatedEvent{Source: "element"})

	require.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)
	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Equal(t, "element", latest.Source)
	assert.Equal(t, at, latest.At)
	assert.Equal(t, domain.Snapshot{X: 2, Y: 9, ScrollingDown: true}, latest.Snapshot)

	stop()
	bus.Publish(eventbus.SnapshotPublishedEvent{Source: "element", Snapshot: domain.Snapshot{Y: 10}})
	bus.Publish(eventbus.ConfigSavedEvent{Path: "flush"})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, store.Len())
}
