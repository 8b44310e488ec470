package wire

import (
	"fmt"
	"strings"
)

// DiagnosticDumpLimit bounds how many payload bytes diagnostics may expose.
const DiagnosticDumpLimit = 100

// HexDump renders up to max bytes of b as space-joined lowercase hex pairs.
// max <= 0 falls back to DiagnosticDumpLimit.
func HexDump(b []byte, max int) string {
	if max <= 0 {
		max = DiagnosticDumpLimit
	}
	if len(b) > max {
		b = b[:max]
	}
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}
