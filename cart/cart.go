// Package cart holds the customer's in-progress order. Every mutation
// writes the full cart through to the persistent store before the
// cartChanged event fires, so readers can always re-query instead of
// caching a copy.
package cart

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nextgen-foodcourt/foodcourt-client/events"
	"github.com/nextgen-foodcourt/foodcourt-client/models"
	"github.com/nextgen-foodcourt/foodcourt-client/storage"
)

// StorageKey is the persisted cart key, kept byte-compatible with the
// web client so an existing state file hydrates cleanly.
const StorageKey = "foodCourtCart"

type Store struct {
	mu    sync.Mutex
	kv    storage.Store
	bus   *events.Bus
	lines []models.CartLine
}

// New hydrates the cart from the persistent store. A missing or
// corrupt value starts an empty cart.
func New(kv storage.Store, bus *events.Bus) *Store {
	s := &Store{kv: kv, bus: bus}
	if raw, ok := kv.Get(StorageKey); ok {
		var lines []models.CartLine
		if err := json.Unmarshal([]byte(raw), &lines); err == nil {
			s.lines = lines
		}
	}
	return s
}

// AddItem merges into an existing line for the dish, incrementing its
// quantity by one, or appends a fresh line at quantity 1.
func (s *Store) AddItem(dishID int, name string, unitPrice float64, outletName string) {
	s.mu.Lock()
	if i := s.index(dishID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, models.CartLine{
			DishID:     dishID,
			Name:       name,
			UnitPrice:  unitPrice,
			Quantity:   1,
			OutletName: outletName,
		})
	}
	s.persist()
	s.mu.Unlock()

	s.bus.Publish(events.CartChanged)
}

// SetQuantity overwrites the line's quantity. Zero or less removes the
// line entirely; no zero-quantity lines ever persist.
func (s *Store) SetQuantity(dishID, quantity int) {
	s.mu.Lock()
	i := s.index(dishID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if quantity <= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	} else {
		s.lines[i].Quantity = quantity
	}
	s.persist()
	s.mu.Unlock()

	s.bus.Publish(events.CartChanged)
}

// SetNotes overwrites the notes of an existing line. Absent lines are
// left alone and no event fires.
func (s *Store) SetNotes(dishID int, notes string) {
	s.mu.Lock()
	i := s.index(dishID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines[i].Notes = notes
	s.persist()
	s.mu.Unlock()

	s.bus.Publish(events.CartChanged)
}

func (s *Store) RemoveItem(dishID int) {
	s.mu.Lock()
	i := s.index(dishID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persist()
	s.mu.Unlock()

	s.bus.Publish(events.CartChanged)
}

// Clear empties the cart and drops its persisted key.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.kv.Remove(StorageKey)
	s.mu.Unlock()

	s.bus.Publish(events.CartChanged)
}

// TotalPrice sums unit price times quantity across lines. Decimal
// arithmetic keeps the total exact; an empty cart totals zero.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.lines)
}

// Count is the sum of quantities across lines; it drives the cart
// badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy of the current lines.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Snapshot captures the cart for submission. The returned value shares
// nothing with the live cart, so checkout is immune to concurrent
// edits.
func (s *Store) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return models.CartSnapshot{
		Lines:      lines,
		TotalPrice: total(lines).InexactFloat64(),
		CapturedAt: time.Now(),
	}
}

func total(lines []models.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// index returns the position of the line for dishID, or -1. Caller
// holds the lock.
func (s *Store) index(dishID int) int {
	for i, l := range s.lines {
		if l.DishID == dishID {
			return i
		}
	}
	return -1
}

// persist writes the full cart through to the store. Caller holds the
// lock.
func (s *Store) persist() {
	if len(s.lines) == 0 {
		s.kv.Remove(StorageKey)
		return
	}
	data, err := json.Marshal(s.lines)
	if err != nil {
		return
	}
	s.kv.Set(StorageKey, string(data))
}
