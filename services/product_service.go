package services

import (
	"context"
	"smorgas_server/database"
	"smorgas_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// ProductService serves the menu catalog. The catalog changes rarely, so
// reads are answered from the cache when possible.
type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
	cache  *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cache *CacheService) *ProductService {
	return &ProductService{
		logger: logger,
		db:     db,
		cache:  cache,
	}
}

// GetCatalog returns all products grouped by category.
func (ps *ProductService) GetCatalog(ctx context.Context) (map[string][]tables.Product, error) {
	if catalog, ok := ps.cache.GetCatalog(ctx); ok {
		return catalog, nil
	}

	products, err := database.Query[tables.Product](ps.db).
		OrderBy("category", database.ASC).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string][]tables.Product)
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "Other"
		}
		catalog[category] = append(catalog[category], p)
	}

	ps.cache.SetCatalog(ctx, catalog)
	return catalog, nil
}
