package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"b2bcart/internal/domain/model"
	repo "b2bcart/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// カート作成・オファー追加/削除と、その前提チェックをすべて持つ。
type CartUsecase struct {
	tx    repo.TransactionManager
	clock Clock
}

func NewCartUsecase(tx repo.TransactionManager, clock Clock) *CartUsecase {
	return &CartUsecase{
		tx:    tx,
		clock: clock,
	}
}

// CartItemResponse は明細のスナップショットを返す。
// unit_price_snapshot は追加時点の価格。
type CartItemResponse struct {
	ID                int64           `json:"id"`
	CartID            int64           `json:"cart_id"`
	OfferID           int64           `json:"offer_id"`
	Quantity          int64           `json:"quantity"`
	UnitPriceSnapshot decimal.Decimal `json:"unit_price_snapshot"`
}

type CartResponse struct {
	ID        int64              `json:"id"`
	ClientID  int64              `json:"client_id"`
	Status    model.CartStatus   `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []CartItemResponse `json:"items"`
}

type AddOfferInput struct {
	OfferID  int64
	Quantity int64
}

// CreateCart はOPENのカートを新規作成する。
// OPEN/CHECKOUTのカートが既にあればCartAlreadyExists。
func (u *CartUsecase) CreateCart(ctx context.Context, clientID int64) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Carts().FindActiveByClientIDForUpdate(ctx, clientID)
		if err == nil {
			return ErrCartAlreadyExists()
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		cart, err := r.Carts().Create(ctx, model.Cart{
			ClientID:  clientID,
			Status:    model.CartStatusOpen,
			CreatedAt: u.clock.Now(),
		})
		if err != nil {
			// 同時作成の競合はDBの部分ユニーク制約で弾かれる。
			// 制約違反後のトランザクションは再クエリできないのでINSERTのエラーで判定する
			if errors.Is(err, repo.ErrDuplicate) {
				return ErrCartAlreadyExists()
			}
			return err
		}

		out = toCartResponse(cart, nil)
		return nil
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// AddOfferToCart はカートにオファーを追加（同一オファーは数量加算）。
// 数量>0のチェックはハンドラ側で済んでいる前提。
func (u *CartUsecase) AddOfferToCart(ctx context.Context, cartID int64, in AddOfferInput) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := u.ValidateCart(ctx, r, cartID, true)
		if err != nil {
			return err
		}

		offer, err := u.validateOffer(ctx, r, in.OfferID)
		if err != nil {
			return err
		}

		//オファーはカートの取引先のものでなければならない
		if offer.ClientID != cart.ClientID {
			return ErrOfferDoesNotBelongToClient()
		}

		existing, err := r.CartItems().FindByCartAndOfferForUpdate(ctx, cart.ID, offer.ID)
		if err == nil {
			// 既存ありだったら数量を増やす（価格は再スナップショットしない）
			if err := r.CartItems().AddQuantity(ctx, existing.ID, in.Quantity); err != nil {
				return err
			}
			return u.buildCartResponse(ctx, r, cart, &out)
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		//無い場合は追加時点の価格で新規作成
		if _, err := r.CartItems().Create(ctx, model.CartItem{
			CartID:            cart.ID,
			OfferID:           offer.ID,
			Quantity:          in.Quantity,
			UnitPriceSnapshot: offer.UnitPrice,
		}); err != nil {
			return err
		}

		return u.buildCartResponse(ctx, r, cart, &out)
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// RemoveOfferFromCart は明細を丸ごと削除する（数量の部分減算はしない）。
func (u *CartUsecase) RemoveOfferFromCart(ctx context.Context, cartID int64, cartItemID int64) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := u.ValidateCart(ctx, r, cartID, true)
		if err != nil {
			return err
		}

		item, err := r.CartItems().FindByID(ctx, cartItemID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCartItemNotFound(cartItemID)
		}
		if err != nil {
			return err
		}

		//他のカートの明細は消させない
		if item.CartID != cart.ID {
			return ErrCartItemDoesNotBelongToCart()
		}

		if err := r.CartItems().DeleteByID(ctx, item.ID); err != nil {
			return err
		}

		return u.buildCartResponse(ctx, r, cart, &out)
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// ValidateCart は共有ガード。CheckoutUsecaseからも使う。
// requireOpen のときはOPEN以外を弾く。
func (u *CartUsecase) ValidateCart(ctx context.Context, r repo.TxRepos, cartID int64, requireOpen bool) (model.Cart, error) {
	cart, err := r.Carts().FindByID(ctx, cartID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, ErrCartNotFound(cartID)
	}
	if err != nil {
		return model.Cart{}, err
	}

	if requireOpen && cart.Status != model.CartStatusOpen {
		return model.Cart{}, ErrInvalidCartState(cart.Status)
	}

	return cart, nil
}

// オファーの存在と有効期限をチェック
func (u *CartUsecase) validateOffer(ctx context.Context, r repo.TxRepos, offerID int64) (model.Offer, error) {
	offer, err := r.Offers().FindByID(ctx, offerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Offer{}, ErrOfferNotFound(offerID)
	}
	if err != nil {
		return model.Offer{}, err
	}

	if offerExpired(offer.ValidUntil, u.clock.Now()) {
		return model.Offer{}, ErrExpiredOffer()
	}

	return offer, nil
}

// 有効期限は日付単位で比較する。当日はまだ有効。
func offerExpired(validUntil time.Time, now time.Time) bool {
	ny, nm, nd := now.UTC().Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)

	vy, vm, vd := validUntil.UTC().Date()
	limit := time.Date(vy, vm, vd, 0, 0, 0, 0, time.UTC)

	return limit.Before(today)
}

// 明細を取り直してCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, r repo.TxRepos, cart model.Cart, out *CartResponse) error {
	items, err := r.CartItems().ListByCartID(ctx, cart.ID)
	if err != nil {
		return err
	}
	*out = toCartResponse(cart, items)
	return nil
}

func toCartResponse(cart model.Cart, items []model.CartItem) CartResponse {
	respItems := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		respItems = append(respItems, CartItemResponse{
			ID:                it.ID,
			CartID:            it.CartID,
			OfferID:           it.OfferID,
			Quantity:          it.Quantity,
			UnitPriceSnapshot: it.UnitPriceSnapshot,
		})
	}

	return CartResponse{
		ID:        cart.ID,
		ClientID:  cart.ClientID,
		Status:    cart.Status,
		CreatedAt: cart.CreatedAt,
		Items:     respItems,
	}
}
