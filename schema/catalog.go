package schema

import (
	"fmt"
	"sync"
)

// CatalogSize is the fixed number of principles in the catalog.
const CatalogSize = 50

// categories cycle across the catalog in id order.
var categories = [...]string{"Ethics", "Strategy", "Operations"}

var (
	catalog     []Principle
	catalogByID map[string]Principle
	catalogOnce sync.Once
)

func buildCatalog() {
	catalog = make([]Principle, CatalogSize)
	catalogByID = make(map[string]Principle, CatalogSize)
	for i := range CatalogSize {
		p := Principle{
			ID:       fmt.Sprintf("principle-%d", i+1),
			Text:     fmt.Sprintf("Principle #%d", i+1),
			Category: categories[i%len(categories)],
		}
		catalog[i] = p
		catalogByID[p.ID] = p
	}
}

// Catalog returns the fixed, ordered principle list. The returned slice is
// shared; callers must not mutate it.
func Catalog() []Principle {
	catalogOnce.Do(buildCatalog)
	return catalog
}

// PrincipleByID looks up a catalog principle by id.
func PrincipleByID(id string) (Principle, bool) {
	catalogOnce.Do(buildCatalog)
	p, ok := catalogByID[id]
	return p, ok
}

// PrincipleText returns the display text for a catalog id, or the id itself
// when it is not in the catalog.
func PrincipleText(id string) string {
	if p, ok := PrincipleByID(id); ok {
		return p.Text
	}
	return id
}
