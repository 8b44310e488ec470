package endpoint

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
)

// Environment variables overriding the domain table.
const (
	EnvHostDomain        = "LINE_HOST_DOMAIN"
	EnvObsDomain         = "LINE_OBS_DOMAIN"
	EnvAPIDomain         = "LINE_API_DOMAIN"
	EnvAccessDomain      = "LINE_ACCESS_DOMAIN"
	EnvBizTimelineDomain = "LINE_BIZ_TIMELINE_DOMAIN"
)

// Table holds the base URLs calls are routed to.
type Table struct {
	Host        string `envconfig:"LINE_HOST_DOMAIN" default:"http://localhost:8111"`
	Obs         string `envconfig:"LINE_OBS_DOMAIN" default:"http://localhost:8112"`
	API         string `envconfig:"LINE_API_DOMAIN" default:"http://localhost:8113"`
	Access      string `envconfig:"LINE_ACCESS_DOMAIN" default:"http://localhost:8114"`
	BizTimeline string `envconfig:"LINE_BIZ_TIMELINE_DOMAIN" default:"http://localhost:8121"`
}

// DefaultTable returns the built-in local defaults without reading the
// environment.
func DefaultTable() Table {
	return Table{
		Host:        "http://localhost:8111",
		Obs:         "http://localhost:8112",
		API:         "http://localhost:8113",
		Access:      "http://localhost:8114",
		BizTimeline: "http://localhost:8121",
	}
}

// Domains provides racefree access to the active table. The whole table is
// swapped on reload; readers never observe a partial update.
type Domains struct {
	table atomic.Pointer[Table]
}

// NewDomains loads the table from the environment, falling back to the
// built-in defaults per field.
func NewDomains() (*Domains, error) {
	var t Table
	if err := envconfig.Process("", &t); err != nil {
		return nil, fmt.Errorf("endpoint: process domain environment: %w", err)
	}
	d := &Domains{}
	d.table.Store(&t)
	return d, nil
}

// NewStaticDomains pins the table to t. Reload still applies environment
// overrides on top of it.
func NewStaticDomains(t Table) *Domains {
	d := &Domains{}
	d.table.Store(&t)
	return d
}

// Current returns the active table.
func (d *Domains) Current() Table {
	return *d.table.Load()
}

// Reload applies environment overrides to the active table and swaps it
// atomically. Fields without an environment value keep their current setting.
func (d *Domains) Reload() {
	next := d.Current()
	if v, ok := os.LookupEnv(EnvHostDomain); ok {
		next.Host = v
	}
	if v, ok := os.LookupEnv(EnvObsDomain); ok {
		next.Obs = v
	}
	if v, ok := os.LookupEnv(EnvAPIDomain); ok {
		next.API = v
	}
	if v, ok := os.LookupEnv(EnvAccessDomain); ok {
		next.Access = v
	}
	if v, ok := os.LookupEnv(EnvBizTimelineDomain); ok {
		next.BizTimeline = v
	}
	d.table.Store(&next)
}
