package store

import (
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// Snapshot is the full persisted state: one slice per collection.
type Snapshot struct {
	Users          []domain.User
	Events         []domain.Event
	PaymentMethods []domain.PaymentMethod
	Products       []domain.Product
	Sales          []domain.Sale
}

// Storage loads the snapshot once at startup and saves it in full after
// every mutation.
type Storage interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

// Store holds every collection in memory and writes a full snapshot through
// the Storage hook after each mutation. A failed save keeps the in-memory
// change: memory is the source of truth and the file catches up on the next
// successful save. Mutations serialize through a mutex.
type Store struct {
	mu      sync.Mutex
	data    Snapshot
	storage Storage
}

// New loads the initial snapshot from storage. A nil storage gives a purely
// in-memory store, which the tests use.
func New(storage Storage) (*Store, error) {
	s := &Store{storage: storage}
	if storage != nil {
		snap, err := storage.Load()
		if err != nil {
			return nil, err
		}
		s.data = snap
	}
	return s, nil
}

// persist must be called with the mutex held.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.data); err != nil {
		log.Printf("store: snapshot save failed: %v", err)
	}
}

// ── users ─────────────────────────────────────────────────────────────────────

// AddUser appends the user unless a record with the same normalized name
// exists. It returns the stored record and whether it was created.
func (s *Store) AddUser(u domain.User) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(u.Name)
	for _, existing := range s.data.Users {
		if domain.NormalizeName(existing.Name) == key {
			return existing, false
		}
	}
	u.Name = strings.TrimSpace(u.Name)
	s.data.Users = append(s.data.Users, u)
	s.persist()
	return u, true
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, len(s.data.Users))
	copy(out, s.data.Users)
	return out
}

// ── events ────────────────────────────────────────────────────────────────────

func (s *Store) AddEvent(e domain.Event) (domain.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(e.Name)
	for _, existing := range s.data.Events {
		if domain.NormalizeName(existing.Name) == key {
			return existing, false
		}
	}
	e.Name = strings.TrimSpace(e.Name)
	s.data.Events = append(s.data.Events, e)
	s.persist()
	return e, true
}

func (s *Store) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Event, len(s.data.Events))
	copy(out, s.data.Events)
	return out
}

// RemoveEventCascade removes the event and every sale recorded under its
// name as one logical operation with a single persist, so local snapshots
// never hold the event without its sales or vice versa. It reports how many
// sales were removed and whether the event existed.
func (s *Store) RemoveEventCascade(name string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(name)
	idx := -1
	for i, e := range s.data.Events {
		if domain.NormalizeName(e.Name) == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false
	}
	eventName := s.data.Events[idx].Name
	s.data.Events = append(s.data.Events[:idx], s.data.Events[idx+1:]...)

	kept := s.data.Sales[:0]
	removed := 0
	for _, sale := range s.data.Sales {
		if sale.EventName == eventName {
			removed++
			continue
		}
		kept = append(kept, sale)
	}
	s.data.Sales = kept
	s.persist()
	return removed, true
}

// ── payment methods ───────────────────────────────────────────────────────────

func (s *Store) AddPaymentMethod(m domain.PaymentMethod) (domain.PaymentMethod, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(m.Name)
	for _, existing := range s.data.PaymentMethods {
		if domain.NormalizeName(existing.Name) == key {
			return existing, false
		}
	}
	m.Name = strings.TrimSpace(m.Name)
	s.data.PaymentMethods = append(s.data.PaymentMethods, m)
	s.persist()
	return m, true
}

func (s *Store) PaymentMethods() []domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PaymentMethod, len(s.data.PaymentMethods))
	copy(out, s.data.PaymentMethods)
	return out
}

// ── products ──────────────────────────────────────────────────────────────────

func (s *Store) AddProduct(p domain.Product) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(p.Name)
	for _, existing := range s.data.Products {
		if domain.NormalizeName(existing.Name) == key {
			return existing, false
		}
	}
	p.Name = strings.TrimSpace(p.Name)
	s.data.Products = append(s.data.Products, p)
	s.persist()
	return p, true
}

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.data.Products))
	copy(out, s.data.Products)
	return out
}

// UpdateProduct replaces price and status of the product with the given
// name, keeping the stored name.
func (s *Store) UpdateProduct(name string, p domain.Product) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(name)
	for i, existing := range s.data.Products {
		if domain.NormalizeName(existing.Name) == key {
			s.data.Products[i].Price = p.Price
			s.data.Products[i].Status = p.Status
			updated := s.data.Products[i]
			s.persist()
			return updated, true
		}
	}
	return domain.Product{}, false
}

func (s *Store) RemoveProduct(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.NormalizeName(name)
	for i, existing := range s.data.Products {
		if domain.NormalizeName(existing.Name) == key {
			s.data.Products = append(s.data.Products[:i], s.data.Products[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// ── sales ─────────────────────────────────────────────────────────────────────

// UpsertSale replaces the sale with the same id or appends it. The caller is
// responsible for preserving CreatedAt across edits (the composer does).
func (s *Store) UpsertSale(sale domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data.Sales {
		if existing.ID == sale.ID {
			s.data.Sales[i] = sale
			s.persist()
			return
		}
	}
	s.data.Sales = append(s.data.Sales, sale)
	s.persist()
}

func (s *Store) SaleByID(id uuid.UUID) (domain.Sale, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.data.Sales {
		if sale.ID == id {
			sale.Items = domain.CloneItems(sale.Items)
			return sale, true
		}
	}
	return domain.Sale{}, false
}

func (s *Store) Sales() []domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Sale, len(s.data.Sales))
	copy(out, s.data.Sales)
	for i := range out {
		out[i].Items = domain.CloneItems(out[i].Items)
	}
	return out
}

func (s *Store) RemoveSale(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sale := range s.data.Sales {
		if sale.ID == id {
			s.data.Sales = append(s.data.Sales[:i], s.data.Sales[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}
