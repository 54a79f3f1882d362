// Package categories holds the share flow's category picker model: a filtered,
// multi-select list over a site's category tree, independent of any UI
// framework.
package categories

import (
	"sort"
	"strings"

	"github.com/myrinnew/wpkit/internal/wpapi"
)

// Item is one selectable row.
type Item struct {
	ID    int64
	Label string
	Depth int
}

// Action reports what a key press did to the picker.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionToggled
	ActionConfirmed
	ActionCancelled
)

// Result is the outcome of a handled key.
type Result struct {
	Action Action
	Item   Item
}

// Picker is the category picker state.
type Picker struct {
	items    []Item
	filtered []Item
	query    string
	cursor   int
	selected map[int64]bool
}

// NewPicker builds a picker over a site's categories, ordered as an indented
// tree (children under parents, siblings alphabetical).
func NewPicker(cats []wpapi.Category) *Picker {
	p := &Picker{
		items:    buildTree(cats),
		selected: make(map[int64]bool),
	}
	p.rebuildFiltered()
	return p
}

func buildTree(cats []wpapi.Category) []Item {
	children := make(map[int64][]wpapi.Category, len(cats))
	known := make(map[int64]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
	}
	for _, c := range cats {
		parent := c.Parent
		// Orphans (parent deleted server-side) surface at the top level.
		if parent != 0 && !known[parent] {
			parent = 0
		}
		children[parent] = append(children[parent], c)
	}
	for _, siblings := range children {
		sort.Slice(siblings, func(i, j int) bool {
			return strings.ToLower(siblings[i].Name) < strings.ToLower(siblings[j].Name)
		})
	}

	var out []Item
	visited := make(map[int64]bool, len(cats))
	var walk func(parent int64, depth int)
	walk = func(parent int64, depth int) {
		for _, c := range children[parent] {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			out = append(out, Item{ID: c.ID, Label: c.Name, Depth: depth})
			walk(c.ID, depth+1)
		}
	}
	walk(0, 0)

	// Parent links can form a cycle (bad server data); its members are
	// unreachable from the root. Surface them at the top level like orphans.
	if len(visited) < len(cats) {
		var rest []wpapi.Category
		for _, c := range cats {
			if !visited[c.ID] {
				rest = append(rest, c)
			}
		}
		sort.Slice(rest, func(i, j int) bool {
			return strings.ToLower(rest[i].Name) < strings.ToLower(rest[j].Name)
		})
		for _, c := range rest {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			out = append(out, Item{ID: c.ID, Label: c.Name, Depth: 0})
			walk(c.ID, 1)
		}
	}
	return out
}

// Items returns the rows currently visible under the active query.
func (p *Picker) Items() []Item {
	return append([]Item(nil), p.filtered...)
}

// Query returns the active filter text.
func (p *Picker) Query() string { return p.query }

// Cursor returns the index of the highlighted row within Items.
func (p *Picker) Cursor() int { return p.cursor }

// IsSelected reports whether the category is toggled on.
func (p *Picker) IsSelected(id int64) bool { return p.selected[id] }

// SelectedIDs returns the toggled category IDs in display order.
func (p *Picker) SelectedIDs() []int64 {
	var out []int64
	for _, it := range p.items {
		if p.selected[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}

// SetQuery replaces the filter text and clamps the cursor.
func (p *Picker) SetQuery(q string) {
	p.query = q
	p.rebuildFiltered()
}

func (p *Picker) rebuildFiltered() {
	q := strings.ToLower(strings.TrimSpace(p.query))
	if q == "" {
		p.filtered = append([]Item(nil), p.items...)
	} else {
		p.filtered = p.filtered[:0]
		for _, it := range p.items {
			if strings.Contains(strings.ToLower(it.Label), q) {
				p.filtered = append(p.filtered, it)
			}
		}
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = len(p.filtered) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Toggle flips the selection of the highlighted row.
func (p *Picker) Toggle() Result {
	if len(p.filtered) == 0 {
		return Result{Action: ActionNone}
	}
	it := p.filtered[p.cursor]
	p.selected[it.ID] = !p.selected[it.ID]
	return Result{Action: ActionToggled, Item: it}
}

// HandleKey applies a key press to the picker.
func (p *Picker) HandleKey(key string) Result {
	switch key {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
			return Result{Action: ActionMoved, Item: p.filtered[p.cursor]}
		}
		return Result{Action: ActionNone}
	case "down", "j":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
			return Result{Action: ActionMoved, Item: p.filtered[p.cursor]}
		}
		return Result{Action: ActionNone}
	case " ", "space":
		return p.Toggle()
	case "enter":
		return Result{Action: ActionConfirmed}
	case "esc":
		return Result{Action: ActionCancelled}
	default:
		return Result{Action: ActionNone}
	}
}
