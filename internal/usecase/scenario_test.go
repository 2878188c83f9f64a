package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"b2bcart/internal/domain/model"
	repo "b2bcart/internal/repository"
	"b2bcart/internal/usecase"
)

// =====================
// インメモリ実装（フロー確認用）
// =====================

type memStore struct {
	carts    map[int64]model.Cart
	items    map[int64]model.CartItem
	offers   map[int64]model.Offer
	payments map[int64]model.Payment
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{
		carts:    map[int64]model.Cart{},
		items:    map[int64]model.CartItem{},
		offers:   map[int64]model.Offer{},
		payments: map[int64]model.Payment{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) Carts() repo.CartRepository         { return memCarts{s} }
func (s *memStore) CartItems() repo.CartItemRepository { return memItems{s} }
func (s *memStore) Offers() repo.OfferRepository       { return memOffers{s} }
func (s *memStore) Payments() repo.PaymentRepository   { return memPayments{s} }

func (s *memStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s)
}

type memCarts struct{ s *memStore }

func (m memCarts) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	c, ok := m.s.carts[cartID]
	if !ok {
		return model.Cart{}, repo.ErrNotFound
	}
	return c, nil
}

func (m memCarts) FindActiveByClientIDForUpdate(ctx context.Context, clientID int64) (model.Cart, error) {
	for _, c := range m.s.carts {
		if c.ClientID == clientID &&
			(c.Status == model.CartStatusOpen || c.Status == model.CartStatusCheckout) {
			return c, nil
		}
	}
	return model.Cart{}, repo.ErrNotFound
}

func (m memCarts) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	//部分ユニーク制約の再現：アクティブなカートが既にあればINSERTは失敗する
	if _, err := m.FindActiveByClientIDForUpdate(ctx, cart.ClientID); err == nil {
		return model.Cart{}, repo.ErrDuplicate
	}
	cart.ID = m.s.id()
	m.s.carts[cart.ID] = cart
	return cart, nil
}

func (m memCarts) UpdateStatus(ctx context.Context, cartID int64, from model.CartStatus, to model.CartStatus) error {
	c, ok := m.s.carts[cartID]
	if !ok || c.Status != from {
		return repo.ErrNotFound
	}
	c.Status = to
	m.s.carts[cartID] = c
	return nil
}

type memItems struct{ s *memStore }

func (m memItems) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	items := []model.CartItem{}
	for _, it := range m.s.items {
		if it.CartID == cartID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m memItems) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	it, ok := m.s.items[cartItemID]
	if !ok {
		return model.CartItem{}, repo.ErrNotFound
	}
	return it, nil
}

func (m memItems) FindByCartAndOfferForUpdate(ctx context.Context, cartID int64, offerID int64) (model.CartItem, error) {
	for _, it := range m.s.items {
		if it.CartID == cartID && it.OfferID == offerID {
			return it, nil
		}
	}
	return model.CartItem{}, repo.ErrNotFound
}

func (m memItems) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	item.ID = m.s.id()
	m.s.items[item.ID] = item
	return item, nil
}

func (m memItems) AddQuantity(ctx context.Context, cartItemID int64, addQty int64) error {
	it, ok := m.s.items[cartItemID]
	if !ok {
		return repo.ErrNotFound
	}
	it.Quantity += addQty
	m.s.items[cartItemID] = it
	return nil
}

func (m memItems) DeleteByID(ctx context.Context, cartItemID int64) error {
	if _, ok := m.s.items[cartItemID]; !ok {
		return repo.ErrNotFound
	}
	delete(m.s.items, cartItemID)
	return nil
}

type memOffers struct{ s *memStore }

func (m memOffers) FindByID(ctx context.Context, offerID int64) (model.Offer, error) {
	o, ok := m.s.offers[offerID]
	if !ok {
		return model.Offer{}, repo.ErrNotFound
	}
	return o, nil
}

func (m memOffers) ListByClientID(ctx context.Context, clientID int64) ([]model.Offer, error) {
	offers := []model.Offer{}
	for _, o := range m.s.offers {
		if o.ClientID == clientID {
			offers = append(offers, o)
		}
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].ID < offers[j].ID })
	return offers, nil
}

func (m memOffers) Create(ctx context.Context, offer model.Offer) (model.Offer, error) {
	offer.ID = m.s.id()
	m.s.offers[offer.ID] = offer
	return offer, nil
}

type memPayments struct{ s *memStore }

func (m memPayments) Create(ctx context.Context, payment model.Payment) (model.Payment, error) {
	payment.ID = m.s.id()
	m.s.payments[payment.ID] = payment
	return payment, nil
}

// =====================
// シナリオ
// =====================

// カート作成 → 同じオファーを2回追加（2+3） → チェックアウト → 支払い確定。
// 明細は1行・数量5・支払い額は10.00×5=50.00になる。
func TestScenario_CreateAddMergeCheckoutPay(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	clock := fixedClock{now: testNow}

	cartUC := usecase.NewCartUsecase(store, clock)
	checkoutUC := usecase.NewCheckoutUsecase(store, cartUC, clock)

	offer, err := store.Offers().Create(ctx, model.Offer{
		ClientID:   1,
		ProductID:  100,
		UnitPrice:  mustDecimal(t, "10.00"),
		ValidUntil: testNow.AddDate(0, 0, 7),
	})
	assert.NoError(t, err)

	cart, err := cartUC.CreateCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, model.CartStatusOpen, cart.Status)

	//アクティブなカートがあるうちは二つ目は作れない
	_, err = cartUC.CreateCart(ctx, 1)
	assertKind(t, err, usecase.KindCartAlreadyExists)

	out, err := cartUC.AddOfferToCart(ctx, cart.ID, usecase.AddOfferInput{OfferID: offer.ID, Quantity: 2})
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)

	out, err = cartUC.AddOfferToCart(ctx, cart.ID, usecase.AddOfferInput{OfferID: offer.ID, Quantity: 3})
	assert.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(5), out.Items[0].Quantity)

	out, err = checkoutUC.StartCheckout(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.CartStatusCheckout, out.Status)

	//CHECKOUT中はもう編集できない
	_, err = cartUC.AddOfferToCart(ctx, cart.ID, usecase.AddOfferInput{OfferID: offer.ID, Quantity: 1})
	assertKind(t, err, usecase.KindInvalidCartState)

	final, err := checkoutUC.FinalizePayment(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.CartStatusPaid, final.Cart.Status)
	assert.Equal(t, model.PaymentStatusPaid, final.Payment.Status)
	assert.True(t, final.Payment.Amount.Equal(mustDecimal(t, "50.00")),
		"amount = %s", final.Payment.Amount)

	//PAIDからはどの操作でも後戻りしない
	_, err = checkoutUC.StartCheckout(ctx, cart.ID)
	assertKind(t, err, usecase.KindInvalidCartState)
	_, err = checkoutUC.FinalizePayment(ctx, cart.ID)
	assertKind(t, err, usecase.KindInvalidCartState)
	_, err = cartUC.RemoveOfferFromCart(ctx, cart.ID, out.Items[0].ID)
	assertKind(t, err, usecase.KindInvalidCartState)

	paid, err := store.Carts().FindByID(ctx, cart.ID)
	assert.NoError(t, err)
	assert.Equal(t, model.CartStatusPaid, paid.Status)

	//支払い済みになれば新しいカートを作れる
	fresh, err := cartUC.CreateCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, model.CartStatusOpen, fresh.Status)
	assert.NotEqual(t, cart.ID, fresh.ID)
}

// 期限切れオファーはシナリオ全体でも追加できない
func TestScenario_ExpiredOfferRejected(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	clock := fixedClock{now: testNow}

	cartUC := usecase.NewCartUsecase(store, clock)

	expired, err := store.Offers().Create(ctx, model.Offer{
		ClientID:   1,
		ProductID:  100,
		UnitPrice:  mustDecimal(t, "10.00"),
		ValidUntil: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	cart, err := cartUC.CreateCart(ctx, 1)
	assert.NoError(t, err)

	_, err = cartUC.AddOfferToCart(ctx, cart.ID, usecase.AddOfferInput{OfferID: expired.ID, Quantity: 1})
	assertKind(t, err, usecase.KindExpiredOffer)

	//空のままなのでチェックアウトもできない
	checkoutUC := usecase.NewCheckoutUsecase(store, cartUC, clock)
	_, err = checkoutUC.StartCheckout(ctx, cart.ID)
	assertKind(t, err, usecase.KindCartIsEmpty)
}
