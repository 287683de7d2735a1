package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/eduwallet/internal/domain"
	"github.com/GlebRadaev/eduwallet/internal/events"
	"github.com/GlebRadaev/eduwallet/internal/pg"
	"github.com/GlebRadaev/eduwallet/pkg/gateway/payos"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

const (
	codeAttempts = 3

	PlanMonthly = "MONTHLY"
	PlanYearly  = "YEARLY"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.PaymentTransaction) error
	GetByReference(ctx context.Context, reference string) (*domain.PaymentTransaction, error)
	GetByOrderCodeForUpdate(ctx context.Context, orderCode int64) (*domain.PaymentTransaction, error)
	Update(ctx context.Context, p *domain.PaymentTransaction) error
	FindPending(ctx context.Context, createdBefore time.Time, limit uint32) ([]domain.PaymentTransaction, error)
}

type SubscriptionRepo interface {
	Activate(ctx context.Context, userID int64, planCode string, days int, reference string, now time.Time) (*domain.PremiumSubscription, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.PremiumSubscription, error)
}

type Gateway interface {
	CreatePaymentLink(ctx context.Context, req payos.CheckoutRequest) (*payos.Checkout, error)
	GetPaymentInfo(ctx context.Context, orderCode int64) (*payos.PaymentInfo, error)
	ParseWebhook(body []byte, headerSignature string) (*payos.Webhook, error)
}

type Wallets interface {
	GetOrCreateWallet(ctx context.Context, userID int64) (*domain.Wallet, error)
	DepositCash(ctx context.Context, walletID int64, amount decimal.Decimal, ref domain.LedgerRef) (*domain.Wallet, error)
	DeductCash(ctx context.Context, walletID int64, amount decimal.Decimal, txType domain.TransactionType, ref domain.LedgerRef) (*domain.Wallet, error)
	AddCoins(ctx context.Context, walletID int64, n int64, txType domain.TransactionType, ref domain.LedgerRef) (*domain.Wallet, error)
}

type Config struct {
	CoinRate            decimal.Decimal
	PremiumMonthlyPrice decimal.Decimal
	PremiumYearlyPrice  decimal.Decimal
	VerifyTimeout       time.Duration
	VerifyAttempts      int
	VerifyBackoff       time.Duration
}

type CheckoutResult struct {
	Reference   string          `json:"reference"`
	OrderCode   int64           `json:"order_code"`
	Amount      decimal.Decimal `json:"amount"`
	CheckoutURL string          `json:"checkout_url"`
	QRCode      string          `json:"qr_code,omitempty"`
}

// CallbackResult reports what a reconciliation did. Duplicate is set when the
// payment was already terminal and nothing changed.
type CallbackResult struct {
	Reference string               `json:"reference"`
	OrderCode int64                `json:"order_code"`
	Status    domain.PaymentStatus `json:"status"`
	Duplicate bool                 `json:"duplicate"`
}

type VerifyResult struct {
	Reference string               `json:"reference"`
	Status    domain.PaymentStatus `json:"status"`
	Verified  bool                 `json:"verified"`
	Duplicate bool                 `json:"duplicate"`
}

type plan struct {
	price decimal.Decimal
	days  int
}

type Service struct {
	paymentRepo      PaymentRepo
	subscriptionRepo SubscriptionRepo
	gateway          Gateway
	wallets          Wallets
	txManager        pg.TXManager
	publisher        events.Publisher
	cfg              Config
	plans            map[string]plan
	now              func() time.Time
}

func New(
	paymentRepo PaymentRepo,
	subscriptionRepo SubscriptionRepo,
	gateway Gateway,
	wallets Wallets,
	txManager pg.TXManager,
	publisher events.Publisher,
	cfg Config,
) *Service {
	if cfg.VerifyAttempts < 1 {
		cfg.VerifyAttempts = 1
	}
	return &Service{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		gateway:          gateway,
		wallets:          wallets,
		txManager:        txManager,
		publisher:        publisher,
		cfg:              cfg,
		plans: map[string]plan{
			PlanMonthly: {price: cfg.PremiumMonthlyPrice, days: 30},
			PlanYearly:  {price: cfg.PremiumYearlyPrice, days: 365},
		},
		now: time.Now,
	}
}

// observation is a gateway statement about one order, from a webhook or a poll.
// Without hasAmount the stored order amount is settled as is.
type observation struct {
	orderCode  int64
	amount     decimal.Decimal
	hasAmount  bool
	gatewayRef string
	outcome    payos.Outcome
}

func (s *Service) HandleCallback(ctx context.Context, gateway, signature string, body []byte) (*CallbackResult, error) {
	if gateway != domain.GatewayPayOS {
		return nil, fmt.Errorf("%w: unknown gateway %q", domain.ErrInvalidInput, gateway)
	}

	wh, err := s.gateway.ParseWebhook(body, signature)
	if err != nil {
		switch {
		case errors.Is(err, payos.ErrInvalidSignature):
			zap.L().Warn("rejected payment callback", zap.String("gateway", gateway), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", domain.ErrSignatureInvalid, err)
		case errors.Is(err, payos.ErrMalformedPayload):
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		return nil, err
	}
	if !wh.Signed {
		zap.L().Warn("accepted unsigned payment callback", zap.Int64("order_code", wh.OrderCode))
	}

	return s.apply(ctx, observation{
		orderCode:  wh.OrderCode,
		amount:     wh.Amount,
		hasAmount:  wh.HasAmount,
		gatewayRef: wh.GatewayReference,
		outcome:    wh.Outcome,
	})
}

// apply is the single reconciliation path for webhooks and polls. The row lock
// plus the terminal check make a replayed observation a no-op.
func (s *Service) apply(ctx context.Context, obs observation) (*CallbackResult, error) {
	var (
		result  CallbackResult
		changed *domain.PaymentTransaction
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.paymentRepo.GetByOrderCodeForUpdate(ctx, obs.orderCode)
		if err != nil {
			return err
		}
		result = CallbackResult{Reference: p.Reference, OrderCode: p.OrderCode, Status: p.Status}
		if p.Status.IsTerminal() {
			result.Duplicate = true
			return nil
		}
		if obs.gatewayRef != "" {
			p.GatewayReference = obs.gatewayRef
		}

		switch obs.outcome {
		case payos.OutcomePending:
			return nil
		case payos.OutcomePaid:
			if obs.hasAmount && !obs.amount.Equal(p.Amount) {
				zap.L().Warn("payment amount mismatch",
					zap.String("reference", p.Reference),
					zap.String("expected", p.Amount.String()),
					zap.String("paid", obs.amount.String()),
				)
				p.Status = domain.PaymentFailed
				p.FailureReason = fmt.Sprintf("amount mismatch: paid %s, expected %s", obs.amount, p.Amount)
				break
			}
			if err := s.settle(ctx, p); err != nil {
				return err
			}
			now := s.now()
			p.Status = domain.PaymentCompleted
			p.CompletedAt = &now
		case payos.OutcomeFailed:
			p.Status = domain.PaymentFailed
			p.FailureReason = "gateway reported failure"
		case payos.OutcomeCancelled:
			p.Status = domain.PaymentCancelled
		}

		if err := s.paymentRepo.Update(ctx, p); err != nil {
			return err
		}
		result.Status = p.Status
		changed = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed != nil {
		s.publish(ctx, changed)
	}
	return &result, nil
}

// settle runs the wallet side effect of a paid order inside the caller's transaction.
func (s *Service) settle(ctx context.Context, p *domain.PaymentTransaction) error {
	ref := domain.LedgerRef{
		ReferenceType: domain.RefPayment,
		ReferenceID:   p.Reference,
	}
	switch p.Purpose {
	case domain.PurposeWalletTopUp:
		ref.Description = "Wallet top-up"
		_, err := s.wallets.DepositCash(ctx, p.WalletID, p.Amount, ref)
		return err
	case domain.PurposeCoinPurchase:
		ref.Description = fmt.Sprintf("Purchase %d coins", p.CoinAmount)
		_, err := s.wallets.AddCoins(ctx, p.WalletID, p.CoinAmount, domain.TxPurchaseCoins, ref)
		return err
	case domain.PurposePremium:
		ref.Description = "Premium " + p.PlanCode
		if _, err := s.wallets.DepositCash(ctx, p.WalletID, p.Amount, ref); err != nil {
			return err
		}
		if _, err := s.wallets.DeductCash(ctx, p.WalletID, p.Amount, domain.TxSpendCash, ref); err != nil {
			return err
		}
		_, err := s.subscriptionRepo.Activate(ctx, p.UserID, p.PlanCode, p.PlanDays, p.Reference, s.now())
		return err
	}
	return fmt.Errorf("%w: payment purpose %q", domain.ErrInvalidInput, p.Purpose)
}

// VerifyWithGateway asks the gateway for the order status and reconciles it.
// Gateway errors are reported as not verified and change nothing. userID 0
// skips the ownership check.
func (s *Service) VerifyWithGateway(ctx context.Context, reference string, userID int64) (*VerifyResult, error) {
	p, err := s.paymentRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if userID != 0 && p.UserID != userID {
		return nil, fmt.Errorf("payment %s: %w", reference, domain.ErrNotFound)
	}
	if p.Status.IsTerminal() {
		return &VerifyResult{Reference: p.Reference, Status: p.Status, Verified: true, Duplicate: true}, nil
	}

	info, err := s.fetchInfo(ctx, p.OrderCode)
	if err != nil {
		zap.L().Warn("payment verification failed", zap.String("reference", reference), zap.Error(err))
		return &VerifyResult{Reference: p.Reference, Status: p.Status}, nil
	}
	if info.Outcome() == payos.OutcomePending {
		return &VerifyResult{Reference: p.Reference, Status: p.Status}, nil
	}

	res, err := s.apply(ctx, observation{
		orderCode:  p.OrderCode,
		amount:     info.Amount,
		hasAmount:  true,
		gatewayRef: info.ID,
		outcome:    info.Outcome(),
	})
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Reference: res.Reference, Status: res.Status, Verified: true, Duplicate: res.Duplicate}, nil
}

func (s *Service) fetchInfo(ctx context.Context, orderCode int64) (*payos.PaymentInfo, error) {
	if s.cfg.VerifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.VerifyTimeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.VerifyAttempts; attempt++ {
		info, err := s.gateway.GetPaymentInfo(ctx, orderCode)
		if err == nil {
			return info, nil
		}
		lastErr = err
		if attempt == s.cfg.VerifyAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(lastErr, ctx.Err())
		case <-time.After(time.Duration(attempt) * s.cfg.VerifyBackoff):
		}
	}
	return nil, lastErr
}

func (s *Service) CreateTopUp(ctx context.Context, userID int64, amount decimal.Decimal) (*CheckoutResult, error) {
	if !amount.IsPositive() || !amount.IsInteger() {
		return nil, domain.ErrInvalidAmount
	}
	return s.checkout(ctx, userID, &domain.PaymentTransaction{
		Purpose: domain.PurposeWalletTopUp,
		Amount:  amount,
	}, "Wallet top-up")
}

func (s *Service) PurchaseCoinsWithGateway(ctx context.Context, userID int64, coins int64) (*CheckoutResult, error) {
	if coins <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.checkout(ctx, userID, &domain.PaymentTransaction{
		Purpose:    domain.PurposeCoinPurchase,
		Amount:     s.cfg.CoinRate.Mul(decimal.NewFromInt(coins)),
		CoinAmount: coins,
	}, fmt.Sprintf("Buy %d coins", coins))
}

func (s *Service) CreatePremiumCheckout(ctx context.Context, userID int64, planCode string) (*CheckoutResult, error) {
	pl, ok := s.plans[planCode]
	if !ok {
		return nil, fmt.Errorf("%w: unknown plan %q", domain.ErrInvalidInput, planCode)
	}
	return s.checkout(ctx, userID, &domain.PaymentTransaction{
		Purpose:  domain.PurposePremium,
		Amount:   pl.price,
		PlanCode: planCode,
		PlanDays: pl.days,
	}, "Premium "+planCode)
}

// checkout records a PENDING order and opens a payment link for it. Nothing
// is credited until the order is reconciled.
func (s *Service) checkout(ctx context.Context, userID int64, p *domain.PaymentTransaction, description string) (*CheckoutResult, error) {
	wallet, err := s.wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.UserID = userID
	p.WalletID = wallet.ID
	p.Gateway = domain.GatewayPayOS
	p.Status = domain.PaymentPending
	p.Reference = uuid.NewString()

	for attempt := 1; ; attempt++ {
		p.OrderCode = orderCode(s.now())
		err = s.paymentRepo.Create(ctx, p)
		if err == nil {
			break
		}
		if !pg.IsUniqueViolation(err) || attempt == codeAttempts {
			return nil, err
		}
		zap.L().Warn("order code collision, retrying", zap.Int64("order_code", p.OrderCode), zap.Int("attempt", attempt))
	}

	link, err := s.gateway.CreatePaymentLink(ctx, payos.CheckoutRequest{
		OrderCode:   p.OrderCode,
		Amount:      p.Amount,
		Description: description,
	})
	if err != nil {
		zap.L().Error("failed to create payment link", zap.String("reference", p.Reference), zap.Error(err))
		p.Status = domain.PaymentFailed
		p.FailureReason = err.Error()
		if uerr := s.paymentRepo.Update(ctx, p); uerr != nil {
			zap.L().Error("failed to mark payment failed", zap.String("reference", p.Reference), zap.Error(uerr))
		}
		return nil, err
	}

	p.CheckoutURL = link.CheckoutURL
	p.GatewayReference = link.PaymentLinkID
	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &CheckoutResult{
		Reference:   p.Reference,
		OrderCode:   p.OrderCode,
		Amount:      p.Amount,
		CheckoutURL: p.CheckoutURL,
		QRCode:      link.QRCode,
	}, nil
}

func orderCode(now time.Time) int64 {
	return now.UnixMilli()*1000 + rand.Int64N(1000)
}

func (s *Service) Get(ctx context.Context, reference string, userID int64) (*domain.PaymentTransaction, error) {
	p, err := s.paymentRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if userID != 0 && p.UserID != userID {
		return nil, fmt.Errorf("payment %s: %w", reference, domain.ErrNotFound)
	}
	return p, nil
}

// FindPending lists PENDING payments older than grace for the poller.
func (s *Service) FindPending(ctx context.Context, grace time.Duration, limit uint32) ([]domain.PaymentTransaction, error) {
	return s.paymentRepo.FindPending(ctx, s.now().Add(-grace), limit)
}

func (s *Service) Subscription(ctx context.Context, userID int64) (*domain.PremiumSubscription, error) {
	return s.subscriptionRepo.GetByUserID(ctx, userID)
}

func (s *Service) publish(ctx context.Context, p *domain.PaymentTransaction) {
	var eventType string
	switch p.Status {
	case domain.PaymentCompleted:
		eventType = events.PaymentCompleted
	case domain.PaymentFailed:
		eventType = events.PaymentFailed
	case domain.PaymentCancelled:
		eventType = events.PaymentCancelled
	default:
		return
	}
	payload := map[string]string{
		"reference": p.Reference,
		"purpose":   string(p.Purpose),
		"amount":    p.Amount.String(),
	}
	s.publisher.Publish(ctx, events.Event{
		Type:     eventType,
		UserID:   p.UserID,
		EntityID: p.Reference,
		Payload:  payload,
	})
	if p.Purpose == domain.PurposePremium && p.Status == domain.PaymentCompleted {
		s.publisher.Publish(ctx, events.Event{
			Type:     events.PremiumActivated,
			UserID:   p.UserID,
			EntityID: strconv.FormatInt(p.UserID, 10),
			Payload:  map[string]string{"plan": p.PlanCode},
		})
	}
}
