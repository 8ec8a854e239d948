package table

import (
	"sort"
	"strings"
)

type group struct {
	id   int
	rows []Row
}

// groupSet keeps groups in first-seen order so the output never depends on
// map iteration.
type groupSet struct {
	order []*group
	byKey map[string]*group
}

func newGroupSet() *groupSet {
	return &groupSet{byKey: map[string]*group{}}
}

// add appends row to the group of key. nextID is called once per new group.
func (s *groupSet) add(key string, row Row, nextID func() int) {
	g, ok := s.byKey[key]
	if !ok {
		g = &group{id: nextID()}
		s.byKey[key] = g
		s.order = append(s.order, g)
	}
	row.ID = g.id
	g.rows = append(g.rows, row)
}

// flatten orders each group, applies the keyword filter and sets ChildCount to
// the number of rows kept. Groups left empty are dropped.
func (s *groupSet) flatten(keyword string) []Row {
	var result []Row
	for _, g := range s.order {
		sortGroup(g.rows)
		kept := g.rows
		if keyword != "" {
			kept = kept[:0:0]
			for _, row := range g.rows {
				if MatchKeyword(row, keyword) {
					kept = append(kept, row)
				}
			}
		}
		for i := range kept {
			kept[i].ChildCount = len(kept)
		}
		result = append(result, kept...)
	}
	return result
}

// sortGroup puts the on-demand row first and the reserved rows after it by
// ascending expected cost. Rows without a cost go last.
func sortGroup(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return compareWithinGroup(&rows[i], &rows[j], true) < 0
	})
}

// restoreGroupOrder applies sortGroup to every run of rows sharing an id.
func restoreGroupOrder(rows []Row) {
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].ID == rows[start].ID {
			end++
		}
		sortGroup(rows[start:end])
		start = end
	}
}

// MatchKeyword reports whether keyword is a substring of the row name, memory,
// processor or region, ignoring case.
func MatchKeyword(row Row, keyword string) bool {
	if keyword == "" {
		return true
	}
	keyword = strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(row.Name), keyword) ||
		strings.Contains(strings.ToLower(row.Memory), keyword) ||
		strings.Contains(strings.ToLower(row.Processor), keyword) ||
		strings.Contains(strings.ToLower(row.Region), keyword)
}
