package cart

import (
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db/models"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/enums"
)

// Event describes a successful cart mutation. The store emits events instead
// of talking to any notification surface directly; UI layers subscribe and
// decide what to show.
type Event struct {
	Type    enums.CartEventType `json:"type"`
	Product *models.Product     `json:"product,omitempty"`
	Message string              `json:"message"`
}

// Listener receives cart events synchronously after a mutation settles.
type Listener func(Event)

const (
	msgAdded   = "Added to cart"
	msgUpdated = "Cart updated"
	msgRemoved = "Removed from cart"
	msgCleared = "Cart cleared"
)

func addedEvent(product models.Product) Event {
	p := product
	return Event{Type: enums.CartEventAdded, Product: &p, Message: msgAdded}
}

func quantityUpdatedEvent(product models.Product) Event {
	p := product
	return Event{Type: enums.CartEventQuantityUpdated, Product: &p, Message: msgUpdated}
}

func removedEvent(product models.Product) Event {
	p := product
	return Event{Type: enums.CartEventRemoved, Product: &p, Message: msgRemoved}
}

func clearedEvent() Event {
	return Event{Type: enums.CartEventCleared, Message: msgCleared}
}
