package chainmap

// Product is an inventory record. The SKU doubles as the table key; the
// remaining fields are payload and may be overwritten by Update.
type Product struct {
	SKU      string
	Name     string
	Category string
	Stock    int
	Price    float64
}

// Inventory is a product table keyed by SKU.
type Inventory = ChainMap[string, Product]

// Returns a product table hashed with xxhash. Options passed here are
// applied after the hasher, so WithHashFunc still overrides it.
func NewInventory(capacity int, opts ...Option[string, Product]) *Inventory {
	opts = append([]Option[string, Product]{
		WithHashFunc[string, Product](StringHashFunc()),
	}, opts...)

	return New(capacity, opts...)
}
