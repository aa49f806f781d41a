// SPDX-License-Identifier: MIT

package landmark

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
	"github.com/katalvlaran/campusnav/ranking"
)

// Sentinel errors returned by Catalog.Add.
var (
	ErrNilLandmark = errors.New("landmark: landmark is nil")
	ErrEmptyID     = errors.New("landmark: landmark ID is empty")
	ErrNoNode      = errors.New("landmark: landmark has no node")
	ErrDuplicateID = errors.New("landmark: duplicate landmark ID")
)

var byImportance = ranking.Reverse(ranking.Key(func(l *Landmark) float64 { return l.Importance }))

// Catalog is a concurrency-safe collection of landmarks in insertion order.
type Catalog struct {
	mu    sync.RWMutex
	items []*Landmark
	byID  map[string]*Landmark
}

// NewCatalog returns a catalog holding ls. Invalid or duplicate entries are
// reported by the first failing Add.
func NewCatalog(ls ...*Landmark) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Landmark)}
	for _, l := range ls {
		if err := c.Add(l); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add appends l.
func (c *Catalog) Add(l *Landmark) error {
	switch {
	case l == nil:
		return ErrNilLandmark
	case l.ID == "":
		return ErrEmptyID
	case l.Node == nil:
		return fmt.Errorf("%w: %q", ErrNoNode, l.ID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.byID[l.ID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateID, l.ID)
	}
	c.items = append(c.items, l)
	c.byID[l.ID] = l

	return nil
}

// Remove deletes the landmark with the given ID and reports whether it existed.
func (c *Catalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, l := range c.items {
		if l.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}

	return true
}

// Get returns the landmark with the given ID.
func (c *Catalog) Get(id string) (*Landmark, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.byID[id]

	return l, ok
}

// Len returns the number of landmarks.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// All returns every landmark in insertion order.
func (c *Catalog) All() []*Landmark {
	return c.filter(func(*Landmark) bool { return true })
}

func (c *Catalog) filter(keep func(*Landmark) bool) []*Landmark {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Landmark, 0, len(c.items))
	for _, l := range c.items {
		if keep(l) {
			out = append(out, l)
		}
	}

	return out
}

// Search returns landmarks matching keyword, most important first. Equal
// importance keeps insertion order. A blank keyword matches nothing.
func (c *Catalog) Search(keyword string) []*Landmark {
	if strings.TrimSpace(keyword) == "" {
		return nil
	}

	return ranking.MergeSort(c.filter(func(l *Landmark) bool { return l.Matches(keyword) }), byImportance)
}

// ByCategory returns landmarks whose category equals category, ignoring case.
func (c *Catalog) ByCategory(category string) []*Landmark {
	return c.filter(func(l *Landmark) bool { return strings.EqualFold(l.Category, category) })
}

// ByType returns landmarks of type t.
func (c *Catalog) ByType(t Type) []*Landmark {
	return c.filter(func(l *Landmark) bool { return l.Type() == t })
}

// AtNode returns the landmarks anchored at node id.
func (c *Catalog) AtNode(id string) []*Landmark {
	return c.filter(func(l *Landmark) bool { return l.Node.ID == id })
}

// Near returns landmarks within radius meters of center, closest first.
func (c *Catalog) Near(center orb.Point, radius float64) []*Landmark {
	near := c.filter(func(l *Landmark) bool { return geo.WithinRadius(center, l.Node.Point(), radius) })
	dist := func(l *Landmark) float64 { return geo.Haversine(center, l.Node.Point()) }

	return ranking.MergeSort(near, ranking.Key(dist))
}

// MostImportant returns up to n landmarks by descending importance.
func (c *Catalog) MostImportant(n int) []*Landmark {
	if n <= 0 {
		return nil
	}
	out := ranking.MergeSort(c.All(), byImportance)
	if len(out) > n {
		out = out[:n]
	}

	return out
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	for _, l := range c.All() {
		seen[l.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)

	return out
}

// Stats summarises the catalog.
type Stats struct {
	Total             int
	Categories        []string
	CategoryCounts    map[string]int
	TypeCounts        map[Type]int
	AverageImportance float64
}

// Stats computes summary counts over the current contents.
func (c *Catalog) Stats() Stats {
	all := c.All()
	s := Stats{
		Total:          len(all),
		Categories:     c.Categories(),
		CategoryCounts: make(map[string]int),
		TypeCounts:     make(map[Type]int),
	}
	var sum float64
	for _, l := range all {
		s.CategoryCounts[l.Category]++
		s.TypeCounts[l.Type()]++
		sum += l.Importance
	}
	if len(all) > 0 {
		s.AverageImportance = sum / float64(len(all))
	}

	return s
}

// FromGraph derives a catalog from the landmark nodes of g: one entry per
// node, ID "lm_<node ID>", default importance and no category.
func FromGraph(g *core.Graph) *Catalog {
	c := &Catalog{byID: make(map[string]*Landmark)}
	if g == nil {
		return c
	}
	for _, n := range g.Landmarks() {
		_ = c.Add(New("lm_"+n.ID, n.Name, "", n.Description, n, DefaultImportance))
	}

	return c
}
