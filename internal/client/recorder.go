package client

import (
	"github.com/rs/zerolog"

	"github.com/neko3da4/CHRFORGE/internal/bus"
)

// EventLog is the bus event BusRecorder forwards stage events on.
const EventLog = "log"

// Stage events emitted by the pipeline in order.
const (
	EventWriteThrift = "writeThrift"
	EventRequest     = "request"
	EventResponse    = "response"
	EventReadThrift  = "readThrift"
)

// LogRecorder writes stage events to a zerolog logger at debug level.
type LogRecorder struct {
	Logger zerolog.Logger
}

func (l LogRecorder) Record(event string, fields map[string]any) {
	l.Logger.Debug().Str("event", event).Fields(fields).Msg("pipeline_event")
}

// BusRecorder forwards stage events on the bus as EventLog broadcasts.
type BusRecorder struct {
	Bus *bus.Bus
}

func (b BusRecorder) Record(event string, fields map[string]any) {
	if b.Bus == nil {
		return
	}
	b.Bus.Emit(EventLog, event, fields)
}

// MultiRecorder fans one stage event out to several recorders.
type MultiRecorder []Recorder

func (m MultiRecorder) Record(event string, fields map[string]any) {
	for _, r := range m {
		if r != nil {
			r.Record(event, fields)
		}
	}
}
