// Package feature detects categorical tags in free text via static keyword
// tables compiled into an Aho-Corasick automaton. Matching is
// case-insensitive substring search: no stemming, no negation handling
// ("no parking" still matches "parking").
package feature

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Vocabulary maps a tag to the keywords whose presence implies it.
// A vocabulary is closed: set operations (Missing, Unique) are always
// computed relative to the same tag universe.
type Vocabulary map[string][]string

// Tags returns the sorted tag universe of the vocabulary.
func (v Vocabulary) Tags() []string {
	tags := make([]string, 0, len(v))
	for tag := range v {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Matcher is a Vocabulary compiled for matching. Build one per vocabulary at
// startup; Extract is safe for concurrent use.
type Matcher struct {
	vocab   Vocabulary
	matcher *ahocorasick.Matcher
	kwToTag []string // automaton keyword index -> tag
}

// NewMatcher builds the automaton over the vocabulary's lowered keywords.
func NewMatcher(vocab Vocabulary) *Matcher {
	m := &Matcher{vocab: vocab}

	keywords := make([]string, 0, len(vocab)*4)
	for _, tag := range vocab.Tags() {
		for _, kw := range vocab[tag] {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
			m.kwToTag = append(m.kwToTag, tag)
		}
	}
	if len(keywords) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(keywords)
	}
	return m
}

// Extract returns the sorted set of tags present in `text`. A tag is present
// if any of its keywords is a substring of the lowered text.
func (m *Matcher) Extract(text string) []string {
	present := make([]string, 0, len(m.vocab))
	if m.matcher == nil {
		return present
	}

	seen := make(map[string]bool, len(m.vocab))
	for _, hit := range m.matcher.MatchThreadSafe([]byte(strings.ToLower(text))) {
		if hit >= len(m.kwToTag) {
			continue
		}
		if tag := m.kwToTag[hit]; !seen[tag] {
			seen[tag] = true
			present = append(present, tag)
		}
	}
	sort.Strings(present)
	return present
}

// Missing returns vocabulary − present, sorted.
func Missing(present []string, vocab Vocabulary) []string {
	presentSet := toSet(present)
	missing := make([]string, 0, len(vocab))
	for tag := range vocab {
		if !presentSet[tag] {
			missing = append(missing, tag)
		}
	}
	sort.Strings(missing)
	return missing
}

// Unique returns present − union(others), sorted: the tags only this record
// has within its comparison set.
func Unique(present []string, others ...[]string) []string {
	union := make(map[string]bool)
	for _, tags := range others {
		for _, tag := range tags {
			union[tag] = true
		}
	}
	unique := make([]string, 0, len(present))
	for _, tag := range present {
		if !union[tag] {
			unique = append(unique, tag)
		}
	}
	sort.Strings(unique)
	return unique
}

// Union returns the sorted union of all tag sets.
func Union(sets ...[]string) []string {
	union := make(map[string]bool)
	for _, tags := range sets {
		for _, tag := range tags {
			union[tag] = true
		}
	}
	out := make([]string, 0, len(union))
	for tag := range union {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func toSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}
	return set
}
