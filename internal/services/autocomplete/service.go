package autocomplete

import (
	"sort"
	"strings"
	"sync"
)

// DefaultLimit caps suggestion lists at the length the typeahead UI shows
const DefaultLimit = 10

// maxQueryLength guards against absurd inputs; longer queries match nothing
const maxQueryLength = 100

// Service answers typeahead queries over the catalog's player names.
// Suggestions are always drawn from the whole catalog, never filtered by any
// in-progress game, so a query can't narrow down a session's hidden answer.
type Service struct {
	mu sync.RWMutex

	// names sorted case-insensitively; normalized[i] corresponds to names[i]
	names      []string
	normalized []string
}

// New creates an empty autocomplete index
func New() *Service {
	return &Service{}
}

// BuildIndex replaces the index with the given display names
func (s *Service) BuildIndex(names []string) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})

	normalized := make([]string, len(sorted))
	for i, n := range sorted {
		normalized[i] = normalize(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = sorted
	s.normalized = normalized
}

// Suggest returns up to limit display names matching the query: prefix
// matches first, then substring matches, both in alphabetical order.
// A limit <= 0 falls back to DefaultLimit.
func (s *Service) Suggest(query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := normalize(query)
	if q == "" || len(q) > maxQueryLength {
		return []string{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]string, 0, limit)
	for i, n := range s.normalized {
		if strings.HasPrefix(n, q) {
			results = append(results, s.names[i])
			if len(results) == limit {
				return results
			}
		}
	}

	// Substring fallback for mid-name matches ("smith" finding "Alex Smith")
	for i, n := range s.normalized {
		if strings.HasPrefix(n, q) {
			continue
		}
		if strings.Contains(n, q) {
			results = append(results, s.names[i])
			if len(results) == limit {
				return results
			}
		}
	}

	return results
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
