package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSnapshotPublished  EventType = "SnapshotPublished"
	EventTrackerActivated   EventType = "TrackerActivated"
	EventTrackerDeactivated EventType = "TrackerDeactivated"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SnapshotPublishedEvent carries a snapshot out of a tracker. Activation
// identifies the tracker activation that produced it, so consumers can drop
// snapshots from an activation they already tore down.
type SnapshotPublishedEvent struct {
	Source     string
	Activation int
	At         time.Time
	Snapshot   Snapshot
}

func (e SnapshotPublishedEvent) Type() EventType { return EventSnapshotPublished }

// TrackerActivatedEvent is emitted when tracking starts on a surface
type TrackerActivatedEvent struct {
	Source     string
	Activation int
	Interval   time.Duration
}

func (e TrackerActivatedEvent) Type() EventType { return EventTrackerActivated }

// TrackerDeactivatedEvent is emitted when tracking stops
type TrackerDeactivatedEvent struct {
	Source     string
	Activation int
}

func (e TrackerDeactivatedEvent) Type() EventType { return EventTrackerDeactivated }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	Source     string
	ThrottleMs int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
