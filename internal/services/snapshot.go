package services

import (
	"strings"

	"leasehub-admin/internal/utils"
)

// Snapshot implements the fetch-once-filter-in-memory listing strategy
// used for the customers and boosts tables. The collection is assumed
// to be admin-scale: it is fetched (or read from the Redis snapshot
// cache) once, then search-term changes filter the held slice without
// another round trip. The tradeoff is staleness — deletes from other
// sessions are invisible until the snapshot is refreshed, and a local
// delete must patch the snapshot through Remove.
type Snapshot[T any] struct {
	items      []T
	searchText func(T) []string
}

func NewSnapshot[T any](items []T, searchText func(T) []string) *Snapshot[T] {
	return &Snapshot[T]{items: items, searchText: searchText}
}

func (s *Snapshot[T]) Len() int {
	return len(s.items)
}

func (s *Snapshot[T]) Items() []T {
	return s.items
}

// Filter returns the items whose searchable fields contain the term,
// case-insensitively. An empty term matches everything.
func (s *Snapshot[T]) Filter(term string) []T {
	if term == "" {
		return s.items
	}
	needle := strings.ToLower(term)
	var out []T
	for _, item := range s.items {
		for _, field := range s.searchText(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Page filters by term and slices the requested window. It returns the
// window, the total filtered count and the page count. totalPages is
// always computed from the filtered length at call time, never from a
// length captured before a mutation.
func (s *Snapshot[T]) Page(term string, page, limit int) ([]T, int, int) {
	page, limit = utils.NormalizePage(page, limit)
	filtered := s.Filter(term)
	start, end := utils.WindowBounds(len(filtered), page, limit)
	return filtered[start:end], len(filtered), utils.TotalPages(int64(len(filtered)), limit)
}

// Remove patches the snapshot after a local delete so the next Page
// call reflects it without a refetch. Returns true if something was
// removed.
func (s *Snapshot[T]) Remove(match func(T) bool) bool {
	for i, item := range s.items {
		if match(item) {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}
