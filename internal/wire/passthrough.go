package wire

import "errors"

var (
	ErrUnknownCategory  = errors.New("wire: unknown protocol category")
	ErrUnsupportedValue = errors.New("wire: unsupported request value")
	ErrEmptyPayload     = errors.New("wire: empty response payload")
)

// Passthrough is a bytes-in, bytes-out codec for development and tests.
// Encode accepts pre-encoded payloads, Decode wraps the raw body as the
// success slot, and both rename operations are the identity. It carries no
// knowledge of the real serialization format.
type Passthrough struct{}

func (Passthrough) Encode(method string, value any, category Category) ([]byte, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	switch v := value.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case string:
		return []byte(v), nil
	default:
		return nil, ErrUnsupportedValue
	}
}

func (Passthrough) Decode(payload []byte, category Category) (Record, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	body := make([]byte, len(payload))
	copy(body, payload)
	return Record{FieldSuccess: body}, nil
}

func (Passthrough) RenameFull(rec Record, square bool) Record {
	return rec
}

func (Passthrough) RenameNamed(structName string, value any) any {
	return value
}
