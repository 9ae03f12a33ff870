package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"essaydesk/internal/config"
	"essaydesk/internal/eventbus"
)

// setupLogging sends logs to the configured file. The terminal belongs to
// the UI, so nothing is logged to stdout or stderr.
func setupLogging(settings config.LogSettings) (func(), error) {
	level, err := logrus.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", settings.Level, err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if settings.File == "" {
		logrus.SetOutput(io.Discard)
		return func() {}, nil
	}

	logFile, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// keep running without a log
		logrus.SetOutput(io.Discard)
		return func() {}, nil
	}
	logrus.SetOutput(logFile)
	return func() { logFile.Close() }, nil
}

// startLogging opens the log, subscribes the event logger and then
// publishes the config load so it is recorded
func startLogging(settings config.LogSettings, bus eventbus.EventBus, loaded eventbus.ConfigLoadedEvent) (func(), error) {
	closeLog, err := setupLogging(settings)
	if err != nil {
		return nil, err
	}
	unsubscribe := subscribeLogger(bus)
	bus.Publish(loaded)
	return func() {
		unsubscribe()
		closeLog()
	}, nil
}

var loggedEvents = []eventbus.EventType{
	eventbus.EventFilesChanged,
	eventbus.EventPickRequested,
	eventbus.EventPickCancelled,
	eventbus.EventPickFailed,
	eventbus.EventEssayChanged,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
	eventbus.EventAppReady,
}

// subscribeLogger records every domain event in the log
func subscribeLogger(bus eventbus.EventBus) func() {
	unsubs := make([]func(), 0, len(loggedEvents))
	for _, t := range loggedEvents {
		unsubs = append(unsubs, bus.Subscribe(t, logEvent))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

func logEvent(e eventbus.DomainEvent) {
	entry := logrus.WithField("event", e.Type())
	switch event := e.(type) {
	case eventbus.FilesChangedEvent:
		names := make([]string, len(event.Files))
		for i, f := range event.Files {
			names[i] = f.Name
		}
		entry = entry.WithField("files", names)
	case eventbus.PickRequestedEvent:
		entry = entry.WithFields(logrus.Fields{"types": event.TypeFilters, "multiple": event.Multiple})
	case eventbus.PickFailedEvent:
		entry = entry.WithError(event.Err)
	case eventbus.EssayChangedEvent:
		entry = entry.WithField("words", event.Words)
	case eventbus.ConfigLoadedEvent:
		entry = entry.WithField("path", event.Path)
	case eventbus.ConfigSavedEvent:
		entry = entry.WithField("path", event.Path)
	case eventbus.AppReadyEvent:
		entry = entry.WithField("existing_config", event.HasExistingConfig)
	}
	entry.Debug("event")
}
