package pathway

import "strings"

// route is the terminal record of one registered pattern. Capture names
// live here rather than on the trie edges, so two patterns may name the
// same param position differently (e.g. /a/:x/b and /a/:y/c).
type route struct {
	pattern      string
	handler      Handler
	paramNames   []string
	wildcardName string
	hasWildcard  bool
}

// node is one level of the segment-indexed trie. Each node has literal
// children keyed by segment text, at most one param child, and at most one
// wildcard terminal (wildcards are final by construction, enforced at
// parse time).
type node struct {
	literals map[string]*node
	param    *node
	wildcard *route
	leaf     *route
}

func newNode() *node {
	return &node{}
}

// table is the route table for a single HTTP method. It is built
// incrementally during registration and read-only during serving.
type table struct {
	root *node
}

func newTable() *table {
	return &table{root: newNode()}
}

// add registers a pattern. It returns a *ConfigurationError if the pattern
// is malformed or a structurally identical pattern is already registered.
func (t *table) add(pattern string, h Handler) error {
	segs, err := parsePattern(pattern)
	if err != nil {
		return err
	}

	rt := &route{pattern: pattern, handler: h}
	n := t.root
	for _, seg := range segs {
		switch seg.kind {
		case segmentLiteral:
			if n.literals == nil {
				n.literals = make(map[string]*node)
			}
			child, ok := n.literals[seg.value]
			if !ok {
				child = newNode()
				n.literals[seg.value] = child
			}
			n = child

		case segmentParam:
			rt.paramNames = append(rt.paramNames, seg.value)
			if n.param == nil {
				n.param = newNode()
			}
			n = n.param

		case segmentWildcard:
			rt.hasWildcard = true
			rt.wildcardName = seg.value
			if n.wildcard != nil {
				return newConfigurationError(pattern, "duplicate route: wildcard already registered at this position by "+n.wildcard.pattern)
			}
			n.wildcard = rt
			return nil
		}
	}

	if n.leaf != nil {
		return newConfigurationError(pattern, "duplicate route: already registered as "+n.leaf.pattern)
	}
	n.leaf = rt
	return nil
}

// match resolves a path against the table. On success it returns the
// handler and freshly built Params. Precedence at every depth is literal,
// then param, then wildcard, with backtracking; this yields the match with
// the longest run of literal agreement, and prefers params over wildcards
// at the first differing position.
func (t *table) match(path string) (Handler, *Params, bool) {
	segs := splitPath(path)
	rt, values, remainder := t.root.match(segs, nil)
	if rt == nil {
		return nil, nil, false
	}
	return rt.handler, buildParams(rt, values, remainder), true
}

// match walks the trie. values accumulates param captures positionally;
// the returned remainder is the joined path consumed by a wildcard, empty
// when the match ended on a leaf.
func (n *node) match(segs []string, values []string) (*route, []string, string) {
	if len(segs) == 0 {
		if n.leaf != nil {
			return n.leaf, values, ""
		}
		// A wildcard needs a non-empty remainder.
		return nil, nil, ""
	}

	head, rest := segs[0], segs[1:]

	if child, ok := n.literals[head]; ok {
		if rt, v, rem := child.match(rest, values); rt != nil {
			return rt, v, rem
		}
	}
	if n.param != nil {
		if rt, v, rem := n.param.match(rest, append(values, head)); rt != nil {
			return rt, v, rem
		}
	}
	if n.wildcard != nil {
		return n.wildcard, values, strings.Join(segs, "/")
	}
	return nil, nil, ""
}

// buildParams zips the route's capture names with the positionally
// collected values and attaches the wildcard remainder.
func buildParams(rt *route, values []string, remainder string) *Params {
	p := &Params{}
	if len(rt.paramNames) > 0 {
		p.pairs = make([]paramPair, 0, len(rt.paramNames)+1)
		for i, name := range rt.paramNames {
			p.pairs = append(p.pairs, paramPair{name: name, value: values[i]})
		}
	}
	if rt.hasWildcard {
		p.wildcard = remainder
		p.hasWildcard = true
		if rt.wildcardName != "" {
			p.pairs = append(p.pairs, paramPair{name: rt.wildcardName, value: remainder})
		}
	}
	return p
}
