package ports

import (
	"context"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/product"
)

// ProductRepository provides read access to catalog products. Order placement
// resolves each cart item against the catalog to snapshot the current price.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
