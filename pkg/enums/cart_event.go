package enums

import "fmt"

// CartEventType classifies the notifications a cart mutation emits.
type CartEventType string

const (
	CartEventAdded           CartEventType = "added"
	CartEventQuantityUpdated CartEventType = "quantity_updated"
	CartEventRemoved         CartEventType = "removed"
	CartEventCleared         CartEventType = "cleared"
)

var validCartEventTypes = []CartEventType{
	CartEventAdded,
	CartEventQuantityUpdated,
	CartEventRemoved,
	CartEventCleared,
}

// String implements fmt.Stringer.
func (e CartEventType) String() string {
	return string(e)
}

// IsValid reports whether the value is a known CartEventType.
func (e CartEventType) IsValid() bool {
	for _, candidate := range validCartEventTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseCartEventType converts raw input into a CartEventType.
func ParseCartEventType(value string) (CartEventType, error) {
	for _, candidate := range validCartEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart event type %q", value)
}
