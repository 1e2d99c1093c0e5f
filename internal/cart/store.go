package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db/models"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/logger"
)

// Store is the single source of truth for one shopper's cart. It owns the
// in-memory entry list and its persisted mirror; all mutations go through its
// API and re-serialize the full snapshot to storage. Consumers get read-only
// copies and subscribe for change events.
type Store struct {
	mu        sync.Mutex
	entries   []Entry
	storage   Storage
	listeners []Listener
	logg      *logger.Logger
}

// NewStore loads the persisted snapshot behind storage and returns a ready
// store. An absent or unparsable payload degrades to an empty cart: the
// corrupt key is cleared and no error is surfaced.
func NewStore(ctx context.Context, storage Storage, logg *logger.Logger) (*Store, error) {
	if storage == nil {
		return nil, errors.New("cart storage required")
	}

	s := &Store{storage: storage, logg: logg}

	payload, err := storage.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		// first visit, start empty
	case err != nil:
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "error", err.Error()), "cart snapshot load failed, starting empty")
		}
	default:
		var entries []Entry
		if unmarshalErr := json.Unmarshal(payload, &entries); unmarshalErr != nil {
			if logg != nil {
				logg.Warn(logg.WithField(ctx, "error", unmarshalErr.Error()), "cart snapshot corrupt, discarding")
			}
			if clearErr := storage.Clear(ctx); clearErr != nil && logg != nil {
				logg.Warn(ctx, "failed to clear corrupt cart snapshot")
			}
		} else {
			s.entries = sanitizeEntries(entries)
		}
	}

	return s, nil
}

// Subscribe registers a listener invoked synchronously after each mutation.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Add puts qty units of product into the cart. An existing entry for the same
// product id is merged by summing quantities; a new product is appended at the
// end, preserving insertion order.
func (s *Store) Add(ctx context.Context, product models.Product, qty int) Event {
	s.mu.Lock()

	var event Event
	if idx := s.indexOf(product.ID); idx >= 0 {
		s.entries[idx].Quantity += qty
		s.entries[idx].Product = product
		event = quantityUpdatedEvent(product)
	} else {
		s.entries = append(s.entries, Entry{Product: product, Quantity: qty})
		event = addedEvent(product)
	}

	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(event)
	return event
}

// Remove drops the entry for productID. Removing an absent product is a
// silent no-op and emits nothing.
func (s *Store) Remove(ctx context.Context, productID int) (Event, bool) {
	s.mu.Lock()

	idx := s.indexOf(productID)
	if idx < 0 {
		s.mu.Unlock()
		return Event{}, false
	}

	removed := s.entries[idx].Product
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	event := removedEvent(removed)

	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(event)
	return event, true
}

// SetQuantity sets the entry's quantity to exactly qty. A qty at or below
// zero removes the entry instead of keeping a zero-quantity row. Absent
// entries are a silent no-op.
func (s *Store) SetQuantity(ctx context.Context, productID, qty int) (Event, bool) {
	if qty <= 0 {
		return s.Remove(ctx, productID)
	}

	s.mu.Lock()

	idx := s.indexOf(productID)
	if idx < 0 {
		s.mu.Unlock()
		return Event{}, false
	}

	s.entries[idx].Quantity = qty
	event := quantityUpdatedEvent(s.entries[idx].Product)

	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify(event)
	return event, true
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) Event {
	s.mu.Lock()
	s.entries = nil
	s.persistLocked(ctx)
	s.mu.Unlock()

	event := clearedEvent()
	s.notify(event)
	return event
}

// Entries returns a copy of the ordered entry list.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Count sums quantities across all entries.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, entry := range s.entries {
		total += entry.Quantity
	}
	return total
}

// Subtotal sums price times quantity across all entries.
func (s *Store) Subtotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, entry := range s.entries {
		total += entry.LineTotal()
	}
	return total
}

func (s *Store) indexOf(productID int) int {
	for i, entry := range s.entries {
		if entry.Product.ID == productID {
			return i
		}
	}
	return -1
}

// persistLocked re-serializes the full snapshot. Write failures are logged
// and swallowed so a storage hiccup never blocks the shopper.
func (s *Store) persistLocked(ctx context.Context) {
	payload, err := json.Marshal(s.entries)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "cart snapshot marshal failed", err)
		}
		return
	}
	if err := s.storage.Save(ctx, payload); err != nil && s.logg != nil {
		s.logg.Error(ctx, "cart snapshot write failed", err)
	}
}

func (s *Store) notify(event Event) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}

// sanitizeEntries drops rows a well-behaved store never writes: zero or
// negative quantities and duplicate product ids (first occurrence wins).
func sanitizeEntries(entries []Entry) []Entry {
	seen := map[int]struct{}{}
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Quantity <= 0 {
			continue
		}
		if _, dup := seen[entry.Product.ID]; dup {
			continue
		}
		seen[entry.Product.ID] = struct{}{}
		out = append(out, entry)
	}
	return out
}
