package domain

// Catalog identifies which of the two independent item lists an Item
// belongs to.
type Catalog string

const (
	CatalogTea   Catalog = "tea"
	CatalogSnack Catalog = "snack"
)

// Valid reports whether c names a known catalog.
func (c Catalog) Valid() bool {
	return c == CatalogTea || c == CatalogSnack
}

// Item is a tea or snack offering with its menu price.
type Item struct {
	ID      string
	Catalog Catalog
	Name    string
	Price   float64
}
