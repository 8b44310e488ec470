package wire

// Field slots of a decoded response record.
const (
	FieldSuccess   = 0
	FieldException = 1
)

// Record is a decoded response payload keyed by field ID.
// Slot 0 carries the success payload, slot 1 the application exception,
// higher slots are reserved by the wire format.
type Record map[int]any

// Success returns the slot 0 payload, nil when absent.
func (r Record) Success() any {
	return r[FieldSuccess]
}

// Exception returns the slot 1 payload, nil when absent.
func (r Record) Exception() any {
	return r[FieldException]
}

// HasSuccess reports whether slot 0 holds a non-nil payload.
func (r Record) HasSuccess() bool {
	v, ok := r[FieldSuccess]
	return ok && v != nil
}

// HasException reports whether slot 1 holds a non-nil payload.
func (r Record) HasException() bool {
	v, ok := r[FieldException]
	return ok && v != nil
}

// IsEmpty reports whether the record carries no fields at all.
func (r Record) IsEmpty() bool {
	return len(r) == 0
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
