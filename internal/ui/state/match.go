package state

import (
	"strings"

	"github.com/atomicstack/quicknav/internal/logging/events"
	"github.com/atomicstack/quicknav/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatchIndex returns the row whose label best matches query, or -1 when
// nothing matches. Exact and prefix matches win over fuzzy ones.
func BestMatchIndex(items []menu.Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(items) {
		return -1
	}
	return best.OriginalIndex
}

// JumpToLabel moves the top screen's selection to the best label match. It
// reports whether the selection changed.
func (s *Stack) JumpToLabel(query string, sel *Selections) bool {
	top := s.Top()
	if top == nil {
		return false
	}
	idx := BestMatchIndex(top.Items(), query)
	if idx < 0 || idx == CurrentIndex(top, sel) {
		return false
	}
	sel.Set(top.ID(), idx)
	events.Nav.Move(string(top.ID()), idx)
	return true
}
