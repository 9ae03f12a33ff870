package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFilesChanged  EventType = "FilesChanged"
	EventPickRequested EventType = "PickRequested"
	EventPickCancelled EventType = "PickCancelled"
	EventPickFailed    EventType = "PickFailed"
	EventEssayChanged  EventType = "EssayChanged"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventAppReady      EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FilesChangedEvent is emitted after the uploader commits a new file list
type FilesChangedEvent struct {
	Files []FileDescriptor
}

func (e FilesChangedEvent) Type() EventType { return EventFilesChanged }

// PickRequestedEvent is emitted when the document chooser is opened
type PickRequestedEvent struct {
	TypeFilters []string
	Multiple    bool
}

func (e PickRequestedEvent) Type() EventType { return EventPickRequested }

// PickCancelledEvent is emitted when the user dismisses the chooser
type PickCancelledEvent struct{}

func (e PickCancelledEvent) Type() EventType { return EventPickCancelled }

// PickFailedEvent is emitted when the chooser itself fails
type PickFailedEvent struct {
	Err error
}

func (e PickFailedEvent) Type() EventType { return EventPickFailed }

// EssayChangedEvent is emitted when the essay text changes
type EssayChangedEvent struct {
	Words int
}

func (e EssayChangedEvent) Type() EventType { return EventEssayChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string // empty when defaults were used
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
