package cart

import (
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db/models"
)

// Entry pairs a denormalized product snapshot with a quantity. The snapshot is
// persisted whole so the cart renders even when the catalog is unreachable.
// At most one entry exists per product id; quantities are always >= 1.
type Entry struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// LineTotal returns price times quantity for this entry.
func (e Entry) LineTotal() int {
	return e.Product.Price * e.Quantity
}
