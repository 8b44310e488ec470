package client

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/neko3da4/CHRFORGE/internal/bus"
)

func TestLogRecorder(t *testing.T) {
	var buf bytes.Buffer
	rec := LogRecorder{Logger: zerolog.New(&buf)}

	rec.Record(EventRequest, map[string]any{"call_id": "abc"})

	out := buf.String()
	if !strings.Contains(out, `"event":"request"`) {
		t.Fatalf("event missing from log line: %s", out)
	}
	if !strings.Contains(out, `"call_id":"abc"`) {
		t.Fatalf("fields missing from log line: %s", out)
	}
	if !strings.Contains(out, "pipeline_event") {
		t.Fatalf("message missing from log line: %s", out)
	}
}

func TestBusRecorderForwards(t *testing.T) {
	b := bus.New(zerolog.Nop())

	var (
		gotEvent  string
		gotFields map[string]any
	)
	b.On(EventLog, func(args ...any) {
		if len(args) == 2 {
			gotEvent, _ = args[0].(string)
			gotFields, _ = args[1].(map[string]any)
		}
	})

	BusRecorder{Bus: b}.Record(EventResponse, map[string]any{"status": 200})

	if gotEvent != EventResponse {
		t.Fatalf("forwarded event = %q, want %q", gotEvent, EventResponse)
	}
	if gotFields["status"] != 200 {
		t.Fatalf("forwarded fields = %v", gotFields)
	}
}

func TestBusRecorderNilBus(t *testing.T) {
	BusRecorder{}.Record(EventRequest, nil)
}

func TestMultiRecorderFanOut(t *testing.T) {
	first := &captureRecorder{}
	second := &captureRecorder{}

	multi := MultiRecorder{first, nil, second}
	multi.Record(EventWriteThrift, nil)

	if len(first.seen()) != 1 || len(second.seen()) != 1 {
		t.Fatalf("fan out = %v / %v", first.seen(), second.seen())
	}
}
