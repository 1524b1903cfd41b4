package logic

import "scrollwatch/internal/domain"

// SnapshotStore provides access to the published snapshot history
type SnapshotStore interface {
	Add(entry domain.TimedSnapshot)
	All() []domain.TimedSnapshot
	Latest() (domain.TimedSnapshot, bool)
	Len() int
	Clear()
}
