package endpoint

import (
	"sort"
	"strings"
	"sync"
)

// errorKinds maps paths with a non-default error kind. Paths absent here
// classify as ErrorKindTalk.
var errorKinds = map[string]string{
	"/S3":                    ErrorKindTalk,
	"/S4":                    ErrorKindTalk,
	"/SYNC4":                 ErrorKindTalk,
	"/SYNC3":                 ErrorKindTalk,
	"/CH3":                   ErrorKindChannel,
	"/CH4":                   ErrorKindChannel,
	"/SQ1":                   ErrorKindSquare,
	"/LIFF1":                 ErrorKindLiff,
	"/api/v3p/rs":            ErrorKindTalk,
	"/api/v3/TalkService.do": ErrorKindTalk,
}

var squarePaths = map[string]struct{}{
	"/SQ1":   {},
	"/SQLV1": {},
}

// Registry stores endpoint descriptors by path and resolves the base URL
// for each path through its domain table.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]Descriptor
	domains   *Domains
}

// NewRegistry initializes an empty registry. A nil domains falls back to the
// built-in defaults without consulting the environment.
func NewRegistry(domains *Domains) *Registry {
	if domains == nil {
		domains = NewStaticDomains(DefaultTable())
	}
	return &Registry{
		endpoints: make(map[string]Descriptor),
		domains:   domains,
	}
}

// Register adds or replaces the descriptor for its path. Last write wins.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints[d.Path] = d
}

// Lookup returns the descriptor registered for path.
func (r *Registry) Lookup(path string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.endpoints[path]
	return d, ok
}

// All returns a snapshot of every descriptor, ordered by path.
func (r *Registry) All() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.endpoints))
	for _, d := range r.endpoints {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ByCategory returns a snapshot of descriptors in c, ordered by path.
func (r *Registry) ByCategory(c Category) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Descriptor
	for _, d := range r.endpoints {
		if d.Category == c {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ErrorKindFor returns the error kind classified errors on path carry.
// A descriptor's explicit kind wins over the built-in table; unregistered
// paths get the default kind.
func (r *Registry) ErrorKindFor(path string) string {
	r.mu.RLock()
	d, ok := r.endpoints[path]
	r.mu.RUnlock()
	if ok && d.ErrorKind != "" {
		return d.ErrorKind
	}
	if kind, ok := errorKinds[path]; ok {
		return kind
	}
	return ErrorKindTalk
}

// IsSquare reports whether path belongs to the square endpoint set.
func (r *Registry) IsSquare(path string) bool {
	_, ok := squarePaths[path]
	return ok
}

// DomainFor selects the base URL serving path. More specific prefixes are
// checked before their shorter forms.
func (r *Registry) DomainFor(path string) string {
	t := r.domains.Current()
	switch {
	case strings.HasPrefix(path, "/BEACON"):
		return t.Obs
	case strings.HasPrefix(path, "/CHANNEL"), strings.HasPrefix(path, "/CH"):
		return t.API
	case strings.HasPrefix(path, "/SQUARE"), strings.HasPrefix(path, "/SQ"):
		return t.API
	default:
		return t.Host
	}
}

// URLFor joins the selected base URL and path. An explicit non-empty domain
// overrides table selection.
func (r *Registry) URLFor(path, domain string) string {
	if domain == "" {
		domain = r.DomainFor(path)
	}
	return strings.TrimRight(domain, "/") + "/" + strings.TrimLeft(path, "/")
}

// Domains exposes the registry's domain table.
func (r *Registry) Domains() *Domains {
	return r.domains
}

// ReloadDomains re-reads domain overrides from the environment and swaps the
// whole table in one step.
func (r *Registry) ReloadDomains() {
	r.domains.Reload()
}
