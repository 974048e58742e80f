// Package nictags answers whether a NIC tag is known to the platform.
// Tag management itself lives elsewhere; the API only needs existence
// checks when a network is created.
package nictags

// Checker reports whether a NIC tag exists.
type Checker interface {
	Exists(name string) bool
}

// Static is a fixed tag set seeded from configuration.
type Static map[string]struct{}

var _ Checker = Static{}

// NewStatic builds a static checker from a tag list.
func NewStatic(tags []string) Static {
	s := make(Static, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s Static) Exists(name string) bool {
	_, ok := s[name]
	return ok
}
