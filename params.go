package pathway

// paramPair is one named capture in pattern order.
type paramPair struct {
	name  string
	value string
}

// Params holds the path captures of a successful route match: the named
// param values in pattern order, plus the wildcard remainder when the
// matched pattern ends in a wildcard. Params are created fresh per match,
// are read-only to handlers, and are discarded with the request.
type Params struct {
	pairs       []paramPair
	wildcard    string
	hasWildcard bool
}

// Lookup returns the capture for name and whether it exists. A named
// wildcard capture is found under its name like any param. Lookup is
// nil-safe so handlers can call it on requests that matched a pattern
// without captures.
func (p *Params) Lookup(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, pair := range p.pairs {
		if pair.name == name {
			return pair.value, true
		}
	}
	return "", false
}

// Get returns the capture for name, or "" if there is none.
func (p *Params) Get(name string) string {
	v, _ := p.Lookup(name)
	return v
}

// Wildcard returns the path remainder consumed by a terminal wildcard
// segment and whether the matched pattern had one. The remainder is
// reported whether or not the wildcard was named; an anonymous wildcard
// contributes no named capture but is still visible here.
func (p *Params) Wildcard() (string, bool) {
	if p == nil {
		return "", false
	}
	return p.wildcard, p.hasWildcard
}

// Len returns the number of named captures.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}
