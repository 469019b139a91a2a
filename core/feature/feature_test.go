package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testVocab = Vocabulary{
	"wifi":    {"wifi", "internet"},
	"parking": {"parking", "garage"},
	"balcony": {"balcony", "terrace"},
}

func TestMatcherExtract(t *testing.T) {
	matcher := NewMatcher(testVocab)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty text", text: "", want: []string{}},
		{name: "single keyword", text: "fast WIFI included", want: []string{"wifi"}},
		{name: "keyword alias", text: "great Internet connection", want: []string{"wifi"}},
		{name: "multiple tags sorted", text: "terrace, garage and wifi", want: []string{"balcony", "parking", "wifi"}},
		{name: "substring inside word", text: "carparking available", want: []string{"parking"}},
		{name: "two keywords of one tag yield it once", text: "wifi and internet", want: []string{"wifi"}},
		// no negation handling: a documented false-positive source
		{name: "negated keyword still matches", text: "no parking nearby", want: []string{"parking"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Extract(tt.text))
		})
	}
}

func TestMatcherExtract_emptyVocabulary(t *testing.T) {
	matcher := NewMatcher(Vocabulary{})
	assert.Equal(t, []string{}, matcher.Extract("wifi everywhere"))
}

func TestMissing(t *testing.T) {
	present := NewMatcher(testVocab).Extract("wifi and balcony")
	missing := Missing(present, testVocab)

	assert.Equal(t, []string{"parking"}, missing)

	// missing and present partition the vocabulary
	for _, tag := range missing {
		assert.NotContains(t, present, tag)
	}
	assert.ElementsMatch(t, testVocab.Tags(), append(append([]string{}, present...), missing...))
}

func TestUnique(t *testing.T) {
	a := []string{"balcony", "parking", "wifi"}
	b := []string{"wifi"}
	c := []string{"parking"}

	assert.Equal(t, []string{"balcony"}, Unique(a, b, c))
	assert.Equal(t, []string{}, Unique(b, a))
	assert.Equal(t, []string{"balcony", "parking", "wifi"}, Unique(a))
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []string{"balcony", "parking", "wifi"}, Union([]string{"wifi"}, []string{"parking", "balcony"}, nil))
	assert.Equal(t, []string{}, Union())
}
