// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

import "log/slog"

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., failed to create a metric instrument).
	EventError EventType = iota
	// EventWarning indicates a warning event (e.g., an invalid constraint regex).
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event represents an internal operational event from the pattern package.
// Compilation itself never fails the caller (an invalid constraint degrades
// to literal text); events are how those degradations and instrument
// failures are surfaced.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal operational events from the pattern
// package. Implementations can log events, send them to monitoring
// systems, or take custom actions based on event type.
//
// Example custom handler:
//
//	pattern.WithEventHandler(func(e pattern.Event) {
//	    if e.Type == pattern.EventWarning {
//	        metrics.BadConstraints.Inc()
//	    }
//	    slog.Default().Warn(e.Message, e.Args...)
//	})
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the
// provided slog.Logger. This is the implementation used by WithLogger.
//
// If logger is nil, returns a no-op handler that discards all events.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {} // no-op
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}
