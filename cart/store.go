package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Item is one cart line. The snapshot fields (name, image, unit price) are
// copied from the catalog at add time so the cart renders without joins.
type Item struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note"`
}

// Store holds one owner's ordered cart, persisted to a JSON file after every
// mutation. The file is read once at construction; a missing or malformed
// file loads as an empty cart. Last write wins — there is no cross-writer
// coordination on the storage file.
type Store struct {
	mu    sync.Mutex
	path  string
	items []Item
}

// NewStore loads the cart persisted at path, if any.
func NewStore(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt storage: start over empty rather than refusing to load.
		return s
	}
	s.items = items
	return s
}

// Add appends the item with a synthesized id: product id, variant id (or a
// fixed placeholder), creation timestamp and a random fragment so rapid adds
// of the same product never collide.
func (s *Store) Add(item Item) Item {
	variant := item.VariantID
	if variant == "" {
		variant = "default"
	}
	item.ID = fmt.Sprintf("%s-%s-%d-%s", item.ProductID, variant, time.Now().UnixMilli(), uuid.NewString()[:8])
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.persist()
	return item
}

// Remove deletes the matching item; absent ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity replaces the item's quantity in place. Quantities below 1
// are rejected and leave the item unchanged.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items returns a copy of the current lines in order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total is Σ unit price × quantity.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Count is Σ quantity.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// persist writes the full item list synchronously. Callers hold the lock.
func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0755)
	_ = os.WriteFile(s.path, data, 0644)
}
