package client

import (
	"time"

	"github.com/neko3da4/CHRFORGE/internal/wire"
)

// envelope is the transient state of one call attempt. A refresh retry
// rebuilds it from scratch so headers pick up the refreshed token.
type envelope struct {
	callID   string
	path     string
	method   string
	value    any
	category wire.Category
	parse    ParseMode
	headers  map[string]string
	url      string
	host     string
	timeout  time.Duration
	retry    bool
}
