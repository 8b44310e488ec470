package client

import (
	"encoding/json"
	"fmt"

	"github.com/neko3da4/CHRFORGE/internal/endpoint"
	"github.com/neko3da4/CHRFORGE/internal/wire"
)

// MustRefreshCode is the application error code that allows a one-shot
// token refresh and retry.
const MustRefreshCode = "MUST_REFRESH_V3_TOKEN"

// ParseKind selects how a decoded record is classified.
type ParseKind int

const (
	// ParseFull renames the whole record through the codec.
	ParseFull ParseKind = iota
	// ParseNamed renames the success slot as a specific struct.
	ParseNamed
	// ParseRaw leaves the success slot untouched.
	ParseRaw
)

// ParseMode carries the classification choice for one call. The zero value
// is full renaming.
type ParseMode struct {
	Kind   ParseKind
	Struct string
}

// NamedParse builds the mode renaming the success slot as structName.
func NamedParse(structName string) ParseMode {
	return ParseMode{Kind: ParseNamed, Struct: structName}
}

// ErrorPayload is the classified application exception of one call.
type ErrorPayload struct {
	Kind  string
	Value any
}

// Code digs the application error code out of the payload.
func (p *ErrorPayload) Code() string {
	if p == nil {
		return ""
	}
	if m, ok := p.Value.(map[string]any); ok {
		if code, ok := m["code"].(string); ok {
			return code
		}
	}
	return ""
}

// Result is the classified outcome of one call.
type Result struct {
	Method    string
	Success   any
	Exception *ErrorPayload
}

type classified struct {
	result Result
	// hasError mirrors the empty-success rule: no success payload in a
	// non-empty record is an error even without an exception slot.
	hasError bool
	// violation marks a record carrying both a success and an exception.
	violation bool
}

func classifyRecord(codec Codec, reg *endpoint.Registry, path string, parse ParseMode, rec wire.Record) classified {
	var out classified
	out.hasError = !rec.HasSuccess() && !rec.IsEmpty()
	out.violation = rec.HasSuccess() && rec.HasException()

	kind := reg.ErrorKindFor(path)
	switch parse.Kind {
	case ParseNamed:
		if v := rec.Success(); v != nil {
			out.result.Success = codec.RenameNamed(parse.Struct, v)
		}
		if rec.HasException() {
			out.result.Exception = &ErrorPayload{Kind: kind, Value: codec.RenameNamed(kind, rec.Exception())}
		}
	case ParseRaw:
		out.result.Success = rec.Success()
		if rec.HasException() {
			out.result.Exception = &ErrorPayload{Kind: kind, Value: codec.RenameNamed(kind, rec.Exception())}
		}
	default:
		renamed := codec.RenameFull(rec, reg.IsSquare(path))
		out.result.Success = renamed.Success()
		if renamed.HasException() {
			out.result.Exception = &ErrorPayload{Kind: kind, Value: renamed.Exception()}
		}
	}
	return out
}

// renderPayload renders an error payload for failure messages.
func renderPayload(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
