package autocomplete

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func indexedService() *Service {
	s := New()
	s.BuildIndex([]string{
		"Peyton Manning",
		"Eli Manning",
		"Joe Montana",
		"Joe Burrow",
		"Josh Allen",
		"Jordan Love",
		"Alex Smith",
		"Emmitt Smith",
	})
	return s
}

func TestSuggestPrefixMatches(t *testing.T) {
	s := indexedService()

	got := s.Suggest("jo", 10)

	// All prefix matches, alphabetical
	assert.Equal(t, []string{"Joe Burrow", "Joe Montana", "Jordan Love", "Josh Allen"}, got)
}

func TestSuggestIsCaseInsensitive(t *testing.T) {
	s := indexedService()

	assert.Equal(t, s.Suggest("jo", 10), s.Suggest("JO", 10))
	assert.Equal(t, []string{"Peyton Manning"}, s.Suggest("PEYTON", 10))
}

func TestSuggestSubstringFallback(t *testing.T) {
	s := indexedService()

	// No name starts with "man"; surname matches come back alphabetically
	assert.Equal(t, []string{"Eli Manning", "Peyton Manning"}, s.Suggest("man", 10))
}

func TestSuggestPrefixBeforeSubstring(t *testing.T) {
	s := indexedService()

	// "e" prefixes Eli and Emmitt; every other name containing an "e"
	// follows after them
	got := s.Suggest("e", 10)
	assert.Equal(t, "Eli Manning", got[0])
	assert.Equal(t, "Emmitt Smith", got[1])
	assert.Contains(t, got[2:], "Joe Montana")
}

func TestSuggestHonorsLimit(t *testing.T) {
	s := indexedService()

	assert.Len(t, s.Suggest("jo", 2), 2)
	assert.Equal(t, []string{"Joe Burrow", "Joe Montana"}, s.Suggest("jo", 2))

	// Non-positive limit falls back to the default
	names := make([]string, 0, DefaultLimit+5)
	for i := 0; i < DefaultLimit+5; i++ {
		names = append(names, "Player "+string(rune('a'+i)))
	}
	s.BuildIndex(names)
	assert.Len(t, s.Suggest("player", 0), DefaultLimit)
}

func TestSuggestEmptyAndOversizedQueries(t *testing.T) {
	s := indexedService()

	assert.Empty(t, s.Suggest("", 10))
	assert.Empty(t, s.Suggest("   ", 10))
	assert.Empty(t, s.Suggest(strings.Repeat("a", 101), 10))
}

func TestSuggestNoMatches(t *testing.T) {
	s := indexedService()

	got := s.Suggest("zz", 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSuggestBeforeIndexBuilt(t *testing.T) {
	s := New()
	assert.Empty(t, s.Suggest("jo", 10))
}
