package model

import "sort"

// CutSet holds the active interior boundaries. A row boundary i is the line
// between row i-1 and row i; the outer edges 0 and N are never stored.
type CutSet struct {
	rows    map[int]struct{}
	columns map[int]struct{}
}

// NewCutSet returns an empty cut set.
func NewCutSet() *CutSet {
	return &CutSet{
		rows:    make(map[int]struct{}),
		columns: make(map[int]struct{}),
	}
}

// ToggleRow adds the row boundary if absent, removes it otherwise.
func (c *CutSet) ToggleRow(i int) {
	toggle(c.rows, i)
}

// ToggleColumn adds the column boundary if absent, removes it otherwise.
func (c *CutSet) ToggleColumn(i int) {
	toggle(c.columns, i)
}

// RemoveRow deletes a row boundary. Returns false if it was not set.
func (c *CutSet) RemoveRow(i int) bool {
	return remove(c.rows, i)
}

// RemoveColumn deletes a column boundary. Returns false if it was not set.
func (c *CutSet) RemoveColumn(i int) bool {
	return remove(c.columns, i)
}

// HasRow reports whether row boundary i is cut.
func (c *CutSet) HasRow(i int) bool {
	_, ok := c.rows[i]
	return ok
}

// HasColumn reports whether column boundary i is cut.
func (c *CutSet) HasColumn(i int) bool {
	_, ok := c.columns[i]
	return ok
}

// Rows returns the row boundaries in ascending order.
func (c *CutSet) Rows() []int {
	return sortedKeys(c.rows)
}

// Columns returns the column boundaries in ascending order.
func (c *CutSet) Columns() []int {
	return sortedKeys(c.columns)
}

// Len returns the total number of cuts on both axes.
func (c *CutSet) Len() int {
	return len(c.rows) + len(c.columns)
}

// Clear removes every cut.
func (c *CutSet) Clear() {
	for _, i := range c.Rows() {
		c.RemoveRow(i)
	}
	for _, i := range c.Columns() {
		c.RemoveColumn(i)
	}
}

func toggle(set map[int]struct{}, i int) {
	if _, ok := set[i]; ok {
		delete(set, i)
		return
	}
	set[i] = struct{}{}
}

func remove(set map[int]struct{}, i int) bool {
	if _, ok := set[i]; !ok {
		return false
	}
	delete(set, i)
	return true
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
