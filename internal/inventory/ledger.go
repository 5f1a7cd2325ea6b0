package inventory

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/osse101/MagicGarden_Go/internal/domain"
)

// Ledger mirrors the player's unplanted items in server order.
// It is not safe for concurrent use; the session serializes access.
type Ledger struct {
	items []domain.InventoryItem
	index map[string]int
	newID func() string
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		index: make(map[string]int),
		newID: uuid.NewString,
	}
}

// Load replaces the ledger contents with the plants fetched from the server,
// assigning a fresh instance id to each unit.
func (l *Ledger) Load(plants []domain.Plant) {
	l.items = make([]domain.InventoryItem, 0, len(plants))
	l.index = make(map[string]int, len(plants))
	for _, p := range plants {
		l.Append(p)
	}
}

// Append records a confirmed purchase and returns the new item
func (l *Ledger) Append(plant domain.Plant) domain.InventoryItem {
	item := domain.InventoryItem{
		InstanceID: l.uniqueID(plant.ID),
		Plant:      plant,
	}
	l.index[item.InstanceID] = len(l.items)
	l.items = append(l.items, item)
	return item
}

// Remove drops a single item by instance id
func (l *Ledger) Remove(instanceID string) (domain.InventoryItem, error) {
	pos, ok := l.index[instanceID]
	if !ok {
		return domain.InventoryItem{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, instanceID)
	}

	item := l.items[pos]
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	delete(l.index, instanceID)
	for i := pos; i < len(l.items); i++ {
		l.index[l.items[i].InstanceID] = i
	}
	return item, nil
}

// Get looks up an item by instance id
func (l *Ledger) Get(instanceID string) (domain.InventoryItem, bool) {
	pos, ok := l.index[instanceID]
	if !ok {
		return domain.InventoryItem{}, false
	}
	return l.items[pos], true
}

// Items returns a copy of the ledger contents
func (l *Ledger) Items() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items held
func (l *Ledger) Len() int {
	return len(l.items)
}

// uniqueID builds "<catalogID>-<token>" and retries on the (unlikely) collision
func (l *Ledger) uniqueID(catalogID int) string {
	prefix := strconv.Itoa(catalogID) + "-"
	for {
		id := prefix + l.newID()
		if _, exists := l.index[id]; !exists {
			return id
		}
	}
}
