package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"b2bcart/internal/domain/model"
	repo "b2bcart/internal/repository"
)

// CheckoutUsecase はOPENカートからPAIDまでの一方向フローを進める。
// カートの共有ガードはCartUsecaseに委譲する（継承ではなく合成）。
type CheckoutUsecase struct {
	tx     repo.TransactionManager
	cartUC *CartUsecase
	clock  Clock
}

func NewCheckoutUsecase(tx repo.TransactionManager, cartUC *CartUsecase, clock Clock) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:     tx,
		cartUC: cartUC,
		clock:  clock,
	}
}

type PaymentResponse struct {
	ID        int64               `json:"id"`
	CartID    int64               `json:"cart_id"`
	Status    model.PaymentStatus `json:"status"`
	Amount    decimal.Decimal     `json:"amount"`
	CreatedAt time.Time           `json:"created_at"`
}

// 支払い確定のレスポンスはカートと支払いのペア。
type CheckoutResponse struct {
	Cart    CartResponse    `json:"cart"`
	Payment PaymentResponse `json:"payment"`
}

// StartCheckout はOPENのカートをCHECKOUTへ進める。
// 空のカートはチェックアウトできない。
func (u *CheckoutUsecase) StartCheckout(ctx context.Context, cartID int64) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := u.cartUC.ValidateCart(ctx, r, cartID, true)
		if err != nil {
			return err
		}

		items, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartIsEmpty()
		}

		//OPENのままの行だけを進める。並行リクエストに先を越されたら負け
		if err := r.Carts().UpdateStatus(ctx, cart.ID, model.CartStatusOpen, model.CartStatusCheckout); err != nil {
			return u.transitionConflict(ctx, r, cart.ID, err)
		}

		cart.Status = model.CartStatusCheckout
		out = toCartResponse(cart, items)
		return nil
	})

	if err != nil {
		return CartResponse{}, err
	}
	return out, nil
}

// FinalizePayment はCHECKOUTのカートをPAIDにして支払い記録を1件作る。
// ステータス更新と支払い作成は同一トランザクションでコミットされる。
func (u *CheckoutUsecase) FinalizePayment(ctx context.Context, cartID int64) (CheckoutResponse, error) {
	var out CheckoutResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//OPENは要求しない。CHECKOUTかどうかをここで明示的に見る
		cart, err := u.cartUC.ValidateCart(ctx, r, cartID, false)
		if err != nil {
			return err
		}
		if cart.Status != model.CartStatusCheckout {
			return ErrInvalidCartState(cart.Status)
		}

		items, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return err
		}

		//CHECKOUTのままの行だけをPAIDにする。
		//これで同時確定しても支払いレコードは1件しか作られない
		if err := r.Carts().UpdateStatus(ctx, cart.ID, model.CartStatusCheckout, model.CartStatusPaid); err != nil {
			return u.transitionConflict(ctx, r, cart.ID, err)
		}

		payment, err := r.Payments().Create(ctx, model.Payment{
			CartID:    cart.ID,
			Status:    model.PaymentStatusPaid,
			Amount:    calculateTotal(items),
			CreatedAt: u.clock.Now(),
		})
		if err != nil {
			return err
		}

		cart.Status = model.CartStatusPaid
		out = CheckoutResponse{
			Cart: toCartResponse(cart, items),
			Payment: PaymentResponse{
				ID:        payment.ID,
				CartID:    payment.CartID,
				Status:    payment.Status,
				Amount:    payment.Amount,
				CreatedAt: payment.CreatedAt,
			},
		}
		return nil
	})

	if err != nil {
		return CheckoutResponse{}, err
	}
	return out, nil
}

// 条件付きUPDATEが空振りしたとき、現在のステータスを取り直してエラーにする。
func (u *CheckoutUsecase) transitionConflict(ctx context.Context, r repo.TxRepos, cartID int64, err error) error {
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	current, findErr := r.Carts().FindByID(ctx, cartID)
	if findErr != nil {
		return ErrCartNotFound(cartID)
	}
	return ErrInvalidCartState(current.Status)
}

// 合計 = Σ(単価スナップショット × 数量)。固定小数点のまま計算する。
func calculateTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.New(0, -2)
	for _, it := range items {
		total = total.Add(it.UnitPriceSnapshot.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
