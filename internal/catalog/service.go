package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db/models"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
	pkgerrors "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/errors"
)

// ListProductsInput holds the validated listing filters.
type ListProductsInput struct {
	Category string
	Organic  *bool
	Search   string
}

// Service exposes the storefront catalog read paths.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// ListProducts returns active products matching the filters.
func (s *service) ListProducts(ctx context.Context, input ListProductsInput) ([]models.Product, error) {
	filter := ListFilter{Organic: input.Organic, Search: input.Search}

	if raw := strings.TrimSpace(input.Category); raw != "" {
		category, err := enums.ParseProductCategory(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product category").WithDetails(map[string]string{"category": raw})
		}
		filter.Category = category
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}

// GetProduct loads an active product by id for storefront display.
func (s *service) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

// GetByID loads a product by id without filtering on the active flag. It is
// the lookup the cart service uses, which applies its own availability rule.
func (s *service) GetByID(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id must be positive")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}
