// Package catalog derives the displayed product list from the full
// catalog and a set of filter criteria. Filtering is conjunctive across
// dimensions and disjunctive within each dimension; selections go
// through a staged/applied pair so the user applies them explicitly.
package catalog

import (
	"sort"
	"strings"

	"github.com/dhdiogoh/cyga-ecommerce/internal/domain/money"
	domproduct "github.com/dhdiogoh/cyga-ecommerce/internal/domain/product"
)

type Category string

const (
	CategoryAneis     Category = "Anéis"
	CategoryBrincos   Category = "Brincos"
	CategoryColares   Category = "Colares"
	CategoryPulseiras Category = "Pulseiras"
)

type Material string

const (
	MaterialOuro  Material = "Ouro"
	MaterialPrata Material = "Prata"
	MaterialAco   Material = "Aço"
)

// PriceBracket is a named half-open price interval: the lower bound is
// inclusive, the upper exclusive, and the last bracket has no upper
// bound.
type PriceBracket string

const (
	BracketUpTo100   PriceBracket = "0-100"
	Bracket100To300  PriceBracket = "100-300"
	Bracket300To500  PriceBracket = "300-500"
	BracketAbove500  PriceBracket = "500+"
)

// Brackets lists the reference bracket set in ascending order.
var Brackets = []PriceBracket{BracketUpTo100, Bracket100To300, Bracket300To500, BracketAbove500}

// Contains reports whether a price in centavos falls in the bracket.
func (b PriceBracket) Contains(price money.Amount) bool {
	switch b {
	case BracketUpTo100:
		return price < 10000
	case Bracket100To300:
		return price >= 10000 && price < 30000
	case Bracket300To500:
		return price >= 30000 && price < 50000
	case BracketAbove500:
		return price >= 50000
	default:
		return false
	}
}

type SortKey string

const (
	SortRecent    SortKey = "recentes"
	SortPriceAsc  SortKey = "preco-asc"
	SortPriceDesc SortKey = "preco-desc"
	SortNameAsc   SortKey = "nome-asc"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortRecent, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	default:
		return false
	}
}

// Criteria is one filter selection: a value set per dimension plus the
// sort key. Empty sets impose no constraint on their dimension.
type Criteria struct {
	Categories map[Category]struct{}
	Materials  map[Material]struct{}
	Brackets   map[PriceBracket]struct{}
	Sort       SortKey
}

func NewCriteria() Criteria {
	return Criteria{
		Categories: make(map[Category]struct{}),
		Materials:  make(map[Material]struct{}),
		Brackets:   make(map[PriceBracket]struct{}),
		Sort:       SortRecent,
	}
}

func (c Criteria) clone() Criteria {
	out := NewCriteria()
	for k := range c.Categories {
		out.Categories[k] = struct{}{}
	}
	for k := range c.Materials {
		out.Materials[k] = struct{}{}
	}
	for k := range c.Brackets {
		out.Brackets[k] = struct{}{}
	}
	out.Sort = c.Sort
	return out
}

// IsEmpty reports whether no filter dimension is constrained and the
// sort is the default.
func (c Criteria) IsEmpty() bool {
	return len(c.Categories) == 0 && len(c.Materials) == 0 &&
		len(c.Brackets) == 0 && c.Sort == SortRecent
}

func (c Criteria) matches(p *domproduct.Product) bool {
	if len(c.Categories) > 0 {
		if _, ok := c.Categories[Category(p.CategoryName)]; !ok {
			return false
		}
	}
	if len(c.Materials) > 0 {
		found := false
		for m := range c.Materials {
			if p.Material != "" && strings.Contains(p.Material, string(m)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(c.Brackets) > 0 {
		found := false
		for b := range c.Brackets {
			if b.Contains(p.Price) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Compute returns the filtered and sorted product list for the given
// criteria. It is a pure function: the input slice is not modified and
// sorts are stable. The "recentes" key passes the catalog order
// through unchanged; the catalog's own order is treated as recency.
func Compute(products []*domproduct.Product, c Criteria) []*domproduct.Product {
	result := make([]*domproduct.Product, 0, len(products))
	for _, p := range products {
		if c.matches(p) {
			result = append(result, p)
		}
	}

	switch c.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	}
	return result
}

// Controller holds the staged and applied criteria pair for one page.
// Toggles edit the staged criteria only; Apply switches them over in
// one step. Not safe for concurrent use.
type Controller struct {
	staged  Criteria
	applied Criteria
}

func NewController() *Controller {
	return &Controller{
		staged:  NewCriteria(),
		applied: NewCriteria(),
	}
}

// ToggleCategory adds the category to the staged set if absent and
// removes it if present.
func (f *Controller) ToggleCategory(v Category) {
	toggle(f.staged.Categories, v)
}

func (f *Controller) ToggleMaterial(v Material) {
	toggle(f.staged.Materials, v)
}

func (f *Controller) ToggleBracket(v PriceBracket) {
	toggle(f.staged.Brackets, v)
}

// SetSort stages a sort key; invalid keys are ignored.
func (f *Controller) SetSort(k SortKey) {
	if k.IsValid() {
		f.staged.Sort = k
	}
}

// Apply copies the staged criteria over the applied ones as one atomic
// switch.
func (f *Controller) Apply() {
	f.applied = f.staged.clone()
}

// Clear resets both staged and applied criteria to their defaults.
func (f *Controller) Clear() {
	f.staged = NewCriteria()
	f.applied = NewCriteria()
}

// Staged returns a copy of the criteria under edit.
func (f *Controller) Staged() Criteria {
	return f.staged.clone()
}

// Applied returns a copy of the criteria driving the displayed list.
func (f *Controller) Applied() Criteria {
	return f.applied.clone()
}

// Compute filters and sorts the catalog with the applied criteria.
func (f *Controller) Compute(products []*domproduct.Product) []*domproduct.Product {
	return Compute(products, f.applied)
}

func toggle[T comparable](set map[T]struct{}, v T) {
	if _, ok := set[v]; ok {
		delete(set, v)
		return
	}
	set[v] = struct{}{}
}
