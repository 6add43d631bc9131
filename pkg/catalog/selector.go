package catalog

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Matches reports whether a topic tag and a requested topic are related.
// The relation is loose on purpose: either string may contain the other,
// so "test" matches "testing" and "aws lambda" matches "lambda".
func Matches(tag, topic string) bool {
	return strings.Contains(tag, topic) || strings.Contains(topic, tag)
}

// Filter returns the resources with at least one tag matching topic.
// An empty topic, or one that matches nothing, yields the whole catalog.
func Filter(topic string) []Resource {
	topic = strings.ToLower(topic)
	if topic == "" {
		return All()
	}

	var matched []Resource
	for _, r := range resources {
		if slices.ContainsFunc(r.Topics, func(tag string) bool { return Matches(tag, topic) }) {
			matched = append(matched, r.clone())
		}
	}
	if len(matched) == 0 {
		return All()
	}
	return matched
}

type SelectorOption func(*Selector)

// WithIntN sets the source of random indexes. intN must return a value in [0, n).
func WithIntN(intN func(n int) int) SelectorOption {
	return func(s *Selector) {
		s.intN = intN
	}
}

// Selector picks one resource at random from the filtered catalog.
// It is safe for concurrent use as long as its random source is.
type Selector struct {
	intN func(n int) int
}

// NewSelector creates a selector backed by math/rand/v2 unless overridden.
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{intN: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick returns a uniformly random resource among those matching topic.
func (s *Selector) Pick(topic string) Resource {
	candidates := Filter(topic)
	return candidates[s.intN(len(candidates))]
}
