package cartengine

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var errStoreDown = errors.New("store unavailable")

// memCartStore is an in-memory server cart store with failure injection.
type memCartStore struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*entity.Cart // by user
	rows  map[uuid.UUID][]*entity.CartItemRow

	failFind     bool
	failCreate   bool
	failList     bool
	failInsertOn map[uuid.UUID]bool
	failUpdate   bool
	failDelete   bool
	createCalls  int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{
		carts:        make(map[uuid.UUID]*entity.Cart),
		rows:         make(map[uuid.UUID][]*entity.CartItemRow),
		failInsertOn: make(map[uuid.UUID]bool),
	}
}

func (s *memCartStore) seed(userID uuid.UUID, lines ...entity.CartLine) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	s.carts[userID] = cart
	for _, line := range lines {
		s.rows[cart.ID] = append(s.rows[cart.ID], &entity.CartItemRow{
			ID: uuid.New(), CartID: cart.ID, VariantID: line.VariantID, Quantity: line.Quantity,
		})
	}

	return cart.ID
}

func (s *memCartStore) lines(userID uuid.UUID) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return nil
	}

	out := []entity.CartLine{}
	for _, row := range s.rows[cart.ID] {
		out = append(out, entity.CartLine{VariantID: row.VariantID, Quantity: row.Quantity})
	}

	return out
}

func (s *memCartStore) FindCartByUser(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failFind {
		return nil, errStoreDown
	}
	cart, ok := s.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return cart, nil
}

func (s *memCartStore) CreateCart(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createCalls++
	if s.failCreate {
		return nil, errStoreDown
	}
	if _, ok := s.carts[userID]; ok {
		return nil, repository.ErrDuplicateCart
	}
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	s.carts[userID] = cart

	return cart, nil
}

func (s *memCartStore) ListCartItems(_ context.Context, cartID uuid.UUID) ([]entity.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failList {
		return nil, errStoreDown
	}
	out := []entity.CartLine{}
	for _, row := range s.rows[cartID] {
		out = append(out, entity.CartLine{VariantID: row.VariantID, Quantity: row.Quantity})
	}

	return out, nil
}

func (s *memCartStore) FindCartItem(_ context.Context, cartID, variantID uuid.UUID) (*entity.CartItemRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows[cartID] {
		if row.VariantID == variantID {
			copied := *row

			return &copied, nil
		}
	}

	return nil, repository.ErrCartItemNotFound
}

func (s *memCartStore) InsertCartItem(_ context.Context, cartID, variantID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failInsertOn[variantID] {
		return errStoreDown
	}
	for _, row := range s.rows[cartID] {
		if row.VariantID == variantID {
			return repository.ErrDuplicateCartItem
		}
	}
	s.rows[cartID] = append(s.rows[cartID], &entity.CartItemRow{
		ID: uuid.New(), CartID: cartID, VariantID: variantID, Quantity: quantity,
	})

	return nil
}

func (s *memCartStore) UpdateCartItemQuantity(_ context.Context, rowID uuid.UUID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failUpdate {
		return errStoreDown
	}
	for _, rows := range s.rows {
		for _, row := range rows {
			if row.ID == rowID {
				row.Quantity = quantity

				return nil
			}
		}
	}

	return repository.ErrCartItemNotFound
}

func (s *memCartStore) DeleteCartItem(_ context.Context, cartID, variantID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failDelete {
		return errStoreDown
	}
	kept := s.rows[cartID][:0]
	for _, row := range s.rows[cartID] {
		if row.VariantID != variantID {
			kept = append(kept, row)
		}
	}
	s.rows[cartID] = kept

	return nil
}

func (s *memCartStore) DeleteAllCartItems(_ context.Context, cartID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failDelete {
		return errStoreDown
	}
	delete(s.rows, cartID)

	return nil
}

// memGuestStore is an in-memory guest store keyed by device.
type memGuestStore struct {
	mu       sync.Mutex
	data     map[uuid.UUID][]entity.CartLine
	failLoad bool
	failSave bool
	failClr  bool
}

func newMemGuestStore() *memGuestStore {
	return &memGuestStore{data: make(map[uuid.UUID][]entity.CartLine)}
}

func (g *memGuestStore) Load(_ context.Context, deviceID uuid.UUID) ([]entity.CartLine, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failLoad {
		return nil, errStoreDown
	}
	out := make([]entity.CartLine, len(g.data[deviceID]))
	copy(out, g.data[deviceID])

	return out, nil
}

func (g *memGuestStore) Save(_ context.Context, deviceID uuid.UUID, lines []entity.CartLine) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failSave {
		return errStoreDown
	}
	stored := make([]entity.CartLine, len(lines))
	copy(stored, lines)
	g.data[deviceID] = stored

	return nil
}

func (g *memGuestStore) Clear(_ context.Context, deviceID uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failClr {
		return errStoreDown
	}
	delete(g.data, deviceID)

	return nil
}

func (g *memGuestStore) stored(deviceID uuid.UUID) []entity.CartLine {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]entity.CartLine{}, g.data[deviceID]...)
}

// memCatalog serves a fixed set of variants.
type memCatalog struct {
	repository.CatalogRepository

	mu       sync.Mutex
	variants map[uuid.UUID]*entity.Variant
	calls    int
	fail     bool
}

func newMemCatalog(variants ...*entity.Variant) *memCatalog {
	c := &memCatalog{variants: make(map[uuid.UUID]*entity.Variant)}
	for _, v := range variants {
		c.variants[v.ID] = v
	}

	return c
}

func (c *memCatalog) FetchVariantsWithProduct(_ context.Context, ids []uuid.UUID) ([]*entity.Variant, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	if c.fail {
		return nil, errStoreDown
	}
	out := []*entity.Variant{}
	for _, id := range ids {
		if v, ok := c.variants[id]; ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.CartEvent
}

func (p *recordingPublisher) PublishCartEvent(_ context.Context, event *service.CartEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) last() *service.CartEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.events) == 0 {
		return nil
	}

	return p.events[len(p.events)-1]
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}

	return out
}
