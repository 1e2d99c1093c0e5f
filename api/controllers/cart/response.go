package cart

import (
	cartsvc "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/cart"
)

// CartView is the envelope data for every cart endpoint. Event is present
// only on mutations, carrying the toast message the storefront shows.
type CartView struct {
	Cart  *cartsvc.Snapshot `json:"cart"`
	Event *cartsvc.Event    `json:"event,omitempty"`
}

func newCartView(snapshot *cartsvc.Snapshot, event *cartsvc.Event) CartView {
	return CartView{Cart: snapshot, Event: event}
}
