package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrItemNotFound         = errors.New("catalog item not found")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidCheckout      = errors.New("receiver name, phone and address are required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrOrderNotFound        = errors.New("order not found")
	ErrVoucherNotFound      = errors.New("voucher not found")
	ErrVoucherNotActive     = errors.New("voucher is not active")
	ErrVoucherNotApplicable = errors.New("voucher is not applicable to this order")
	ErrPromoCodeInvalid     = errors.New("promo code is invalid or already used")
	ErrRedeemableNotFound   = errors.New("redeemable not found")
	ErrInsufficientPoints   = errors.New("not enough points")
	ErrInvalidProfile       = errors.New("full name is required")
)

type ICatalogUseCase interface {
	Menu() []entities.CatalogItem
	FindItem(id string) (entities.CatalogItem, error)
}

type ICartUseCase interface {
	AddToCart(item entities.CatalogItem, opts entities.LineOptions, quantity int, lineTotal decimal.Decimal) (entities.CartLine, error)
	RemoveFromCart(key entities.LineKey) bool
	ClearCart()
	Cart() []entities.CartLine
	CartTotal() decimal.Decimal
	CartQuantity() int
}

type IOrderUseCase interface {
	QuoteCheckout(voucherID string) (entities.CheckoutQuote, error)
	Checkout(req CheckoutRequest) (entities.Order, error)
	ConfirmDelivered(orderID string) bool
	Order(id string) (entities.Order, error)
	Orders() []entities.Order
	WaitingPickupOrders() []entities.Order
	OngoingOrders() []entities.Order
	CompletedOrders() []entities.Order
}

type IRewardsUseCase interface {
	LoyaltyStamps() int
	TotalPoints() int
	RewardHistory() []entities.RewardHistoryEntry
	RedeemableItems() []entities.RedeemableItem
	ResetLoyaltyStamps() bool
	RedeemPoints(required int) bool
	RedeemItem(itemID string) error
}

type IVoucherUseCase interface {
	Vouchers() []entities.Voucher
	ActiveVouchers() []entities.Voucher
	RedeemableVouchers() []entities.RedeemableVoucher
	ApplyPromoCode(code string) (entities.Voucher, error)
	RedeemVoucher(id string) (entities.Voucher, error)
	UseVoucher(id string) error
}

type IProfileUseCase interface {
	Profile() entities.UserProfile
	UpdateProfile(p entities.UserProfile) error
	Preferences() entities.Preferences
	ToggleDarkMode() bool
	SetNotificationsEnabled(enabled bool)
	ClearAllData()
}

type IEventSource interface {
	Subscribe() (<-chan Event, func())
}

type IStore interface {
	ICatalogUseCase
	ICartUseCase
	IOrderUseCase
	IRewardsUseCase
	IVoucherUseCase
	IProfileUseCase
	IEventSource

	Init(ctx context.Context)
	Ready() <-chan struct{}
	Snapshot() entities.Snapshot
	Close(ctx context.Context) error
}

var _ IStore = (*Store)(nil)

// CheckoutRequest carries the shipping and payment fields of a checkout.
// VoucherID is optional; PaymentMethod defaults to CASH.
type CheckoutRequest struct {
	ReceiverName    string
	ReceiverPhone   string
	ShippingAddress string
	PaymentMethod   string
	VoucherID       string
}

type StoreConfig struct {
	PickupDelay   time.Duration
	DeliveryDelay time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Store is the single owner of the app state. Every command runs under one
// mutex, updates memory first, then enqueues a snapshot write and emits the
// matching change events.
type Store struct {
	repo      interfaces.ISnapshotRepository
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
	persister *Persister
	scheduler *FulfillmentScheduler
	hub       *Hub

	initOnce sync.Once
	ready    chan struct{}

	mu       sync.Mutex
	cart     *Cart
	orders   *OrderBook
	rewards  *RewardsLedger
	vouchers *VoucherEngine
	profile  entities.UserProfile
	prefs    entities.Preferences

	loaded            bool
	clearedBeforeLoad bool
}

func NewStore(repo interfaces.ISnapshotRepository, cfg StoreConfig, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PickupDelay <= 0 {
		cfg.PickupDelay = DefaultPickupDelay
	}
	if cfg.DeliveryDelay <= 0 {
		cfg.DeliveryDelay = DefaultDeliveryDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := &Store{
		repo:      repo,
		logger:    logger.With(zap.String("component", "store")),
		now:       cfg.Now,
		newID:     uuid.NewString,
		persister: NewPersister(repo, logger),
		hub:       NewHub(logger),
		ready:     make(chan struct{}),
	}
	s.scheduler = NewFulfillmentScheduler(cfg.PickupDelay, cfg.DeliveryDelay, s.advance, logger)
	s.replaceLocked(entities.DefaultSnapshot())
	return s
}

// Init loads the persisted snapshot in the background. Only the first call
// has any effect; Ready is closed once loading has resolved either way.
func (s *Store) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		go s.load(ctx)
	})
}

func (s *Store) Ready() <-chan struct{} { return s.ready }

func (s *Store) load(ctx context.Context) {
	defer close(s.ready)

	snap, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("loading snapshot failed, starting from defaults", zap.Error(err))
		snap = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	// A clear issued while loading wins over the stored snapshot.
	restored := snap != nil && !s.clearedBeforeLoad
	if restored {
		s.replaceLocked(*snap)
	}
	now := s.now()
	swept := s.vouchers.SweepExpired(now)
	seeded := s.vouchers.EnsureDefaults(now)

	resumed := 0
	for _, o := range s.orders.All() {
		if o.Status == entities.OrderStatusWaitingPickup || o.Status == entities.OrderStatusOngoing {
			if s.scheduler.Start(o.ID, o.Status) {
				resumed++
			}
		}
	}

	s.logger.Info("state loaded",
		zap.Bool("restored", restored),
		zap.Int("orders", s.orders.Len()),
		zap.Int("vouchers_expired", swept),
		zap.Bool("vouchers_seeded", seeded),
		zap.Int("simulations_resumed", resumed),
	)
	s.commitLocked(EventStateLoaded)
}

func (s *Store) replaceLocked(snap entities.Snapshot) {
	snap = snap.Clone()
	s.cart = NewCart(snap.Cart)
	s.orders = NewOrderBook(snap.Orders)
	s.rewards = NewRewardsLedger(snap.LoyaltyStamps, snap.TotalPoints, snap.RewardHistory)
	s.vouchers = NewVoucherEngine(snap.Vouchers)
	s.profile = snap.UserProfile
	s.prefs = snap.Preferences()
}

func (s *Store) snapshotLocked() entities.Snapshot {
	snap := entities.Snapshot{
		Cart:                 s.cart.Lines(),
		Orders:               s.orders.All(),
		LoyaltyStamps:        s.rewards.Stamps(),
		TotalPoints:          s.rewards.Points(),
		RewardHistory:        s.rewards.History(),
		Vouchers:             s.vouchers.All(),
		UserProfile:          s.profile,
		IsDarkMode:           s.prefs.DarkMode,
		NotificationsEnabled: s.prefs.NotificationsEnabled,
	}
	return snap.Clone()
}

// commitLocked schedules the snapshot write and announces the change. The
// write is enqueued under the lock so the queue sees mutations in order.
func (s *Store) commitLocked(kinds ...EventKind) {
	s.persister.Enqueue(s.snapshotLocked())
	at := s.now()
	for _, k := range kinds {
		s.hub.Emit(Event{Kind: k, At: at})
	}
}

// advance is the timer callback. It goes through the same lock as user
// commands and ignores timers whose order already left from.
func (s *Store) advance(orderID string, from, to entities.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders.Advance(orderID, from, to); !ok {
		return false
	}
	s.logger.Info("order advanced", zap.String("order_id", orderID), zap.String("status", string(to)))
	s.commitLocked(EventOrdersChanged)
	if to == entities.OrderStatusDelivered {
		s.hub.Emit(Event{Kind: EventOrderDelivered, OrderID: orderID, At: s.now()})
	}
	return true
}

func (s *Store) Snapshot() entities.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) Subscribe() (<-chan Event, func()) {
	return s.hub.Subscribe()
}

// SubscribeQueued is Subscribe without drops, limited to kinds.
func (s *Store) SubscribeQueued(kinds ...EventKind) (<-chan Event, func()) {
	return s.hub.SubscribeQueued(kinds...)
}

// Close stops every simulation, drains pending writes and ends all
// subscriptions. It must not hold the state lock: running timers may be
// waiting for it.
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	if err := s.scheduler.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.persister.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	s.hub.Close()
	return errors.Join(errs...)
}

// flush waits for pending snapshot writes. Used by tests.
func (s *Store) flush() {
	s.persister.Flush()
}

// Catalog

func (s *Store) Menu() []entities.CatalogItem {
	return entities.Menu()
}

func (s *Store) FindItem(id string) (entities.CatalogItem, error) {
	item, ok := entities.FindCatalogItem(strings.TrimSpace(id))
	if !ok {
		return entities.CatalogItem{}, ErrItemNotFound
	}
	return item, nil
}

// Cart

// AddToCart merges the line into the cart. lineTotal is the price of the
// added quantity as computed by the caller.
func (s *Store) AddToCart(item entities.CatalogItem, opts entities.LineOptions, quantity int, lineTotal decimal.Decimal) (entities.CartLine, error) {
	if quantity < 1 {
		return entities.CartLine{}, ErrInvalidQuantity
	}
	opts, err := opts.Normalize()
	if err != nil {
		return entities.CartLine{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	line := s.cart.Add(item, opts, quantity, lineTotal)
	s.commitLocked(EventCartChanged)
	return line, nil
}

func (s *Store) RemoveFromCart(key entities.LineKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.Remove(key) {
		return false
	}
	s.commitLocked(EventCartChanged)
	return true
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.commitLocked(EventCartChanged)
}

func (s *Store) Cart() []entities.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Store) CartQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Quantity()
}

// Orders

func (s *Store) QuoteCheckout(voucherID string) (entities.CheckoutQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers.Quote(s.cart.Total(), s.cart.Quantity(), strings.TrimSpace(voucherID), s.now())
}

// Checkout turns the cart into a WAITING_PICKUP order, consumes the selected
// voucher, clears the cart and starts the fulfillment simulation. On error the
// cart, orders and vouchers are left as they were, except that vouchers past
// their expiry are still marked EXPIRED.
func (s *Store) Checkout(req CheckoutRequest) (entities.Order, error) {
	name := strings.TrimSpace(req.ReceiverName)
	phone := strings.TrimSpace(req.ReceiverPhone)
	address := strings.TrimSpace(req.ShippingAddress)
	if name == "" || phone == "" || address == "" {
		return entities.Order{}, ErrInvalidCheckout
	}
	method, ok := entities.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return entities.Order{}, ErrInvalidPaymentMethod
	}
	voucherID := strings.TrimSpace(req.VoucherID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		return entities.Order{}, ErrEmptyCart
	}

	now := s.now()
	if s.vouchers.SweepExpired(now) > 0 {
		s.commitLocked(EventVouchersChanged)
	}

	quote, err := s.vouchers.Quote(s.cart.Total(), s.cart.Quantity(), voucherID, now)
	if err != nil {
		return entities.Order{}, err
	}
	if !quote.Eligible {
		return entities.Order{}, ErrVoucherNotApplicable
	}
	if voucherID != "" {
		if _, err := s.vouchers.Use(voucherID, now); err != nil {
			return entities.Order{}, err
		}
	}

	order := entities.Order{
		ID:              s.newID(),
		CreatedAt:       now,
		DateTime:        now.Format(entities.OrderDateTimeLayout),
		Lines:           s.cart.Lines(),
		Subtotal:        quote.Subtotal,
		Discount:        quote.Discount,
		TotalPrice:      quote.Total,
		VoucherID:       voucherID,
		Status:          entities.OrderStatusWaitingPickup,
		ReceiverName:    name,
		ReceiverPhone:   phone,
		ShippingAddress: address,
		PaymentMethod:   method,
	}
	s.orders.Add(order)
	s.cart.Clear()

	kinds := []EventKind{EventOrdersChanged, EventCartChanged}
	if voucherID != "" {
		kinds = append(kinds, EventVouchersChanged)
	}
	s.commitLocked(kinds...)
	s.scheduler.Start(order.ID, order.Status)

	s.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("total", order.TotalPrice.StringFixed(2)),
		zap.Int("quantity", order.Quantity()),
	)
	return order.Clone(), nil
}

// ConfirmDelivered completes a DELIVERED order, adds a stamp and the reward
// points. Any other status is rejected without changes.
func (s *Store) ConfirmDelivered(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders.Advance(orderID, entities.OrderStatusDelivered, entities.OrderStatusCompleted)
	if !ok {
		return false
	}
	s.rewards.IncrementStamps()
	earned := s.rewards.AddOrderPoints(order)
	s.scheduler.Cancel(orderID)
	s.commitLocked(EventOrdersChanged, EventRewardsChanged)

	s.logger.Info("order completed", zap.String("order_id", orderID), zap.Int("points", earned))
	return true
}

func (s *Store) Order(id string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders.Get(id)
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (s *Store) Orders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.All()
}

func (s *Store) WaitingPickupOrders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.WaitingPickup()
}

func (s *Store) OngoingOrders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Ongoing()
}

func (s *Store) CompletedOrders() []entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Completed()
}

// Rewards

func (s *Store) LoyaltyStamps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rewards.Stamps()
}

func (s *Store) TotalPoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rewards.Points()
}

func (s *Store) RewardHistory() []entities.RewardHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rewards.History()
}

func (s *Store) RedeemableItems() []entities.RedeemableItem {
	return entities.RedeemableItems()
}

// ResetLoyaltyStamps empties a full loyalty card; false otherwise.
func (s *Store) ResetLoyaltyStamps() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rewards.Stamps() != entities.MaxLoyaltyStamps {
		return false
	}
	s.rewards.ResetStamps()
	s.commitLocked(EventRewardsChanged)
	return true
}

func (s *Store) RedeemPoints(required int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.rewards.Redeem(required) {
		return false
	}
	s.commitLocked(EventRewardsChanged)
	return true
}

func (s *Store) RedeemItem(itemID string) error {
	item, ok := entities.FindRedeemableItem(strings.TrimSpace(itemID))
	if !ok {
		return ErrRedeemableNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.rewards.Redeem(item.PointsRequired) {
		return ErrInsufficientPoints
	}
	s.commitLocked(EventRewardsChanged)
	s.logger.Info("drink redeemed", zap.String("item", item.Name), zap.Int("points", item.PointsRequired))
	return nil
}

// Vouchers

func (s *Store) Vouchers() []entities.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers.All()
}

func (s *Store) ActiveVouchers() []entities.Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers.Active(s.now())
}

func (s *Store) RedeemableVouchers() []entities.RedeemableVoucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vouchers.Redeemables()
}

// ApplyPromoCode issues the voucher behind code. Unknown and already used
// codes fail with the same error.
func (s *Store) ApplyPromoCode(code string) (entities.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vouchers.ApplyPromoCode(code, s.now())
	if !ok {
		return entities.Voucher{}, ErrPromoCodeInvalid
	}
	s.commitLocked(EventVouchersChanged)
	return v, nil
}

// RedeemVoucher buys a points voucher. Points are deducted only when the
// voucher is issued.
func (s *Store) RedeemVoucher(id string) (entities.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rv, ok := s.vouchers.FindRedeemable(strings.TrimSpace(id))
	if !ok {
		return entities.Voucher{}, ErrRedeemableNotFound
	}
	if !s.rewards.Redeem(rv.PointsRequired) {
		return entities.Voucher{}, ErrInsufficientPoints
	}
	v := s.vouchers.IssueRedeemed(rv, s.now())
	s.commitLocked(EventRewardsChanged, EventVouchersChanged)
	return v, nil
}

func (s *Store) UseVoucher(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.vouchers.Use(id, s.now()); err != nil {
		return err
	}
	s.commitLocked(EventVouchersChanged)
	return nil
}

// Profile and preferences

func (s *Store) Profile() entities.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Store) UpdateProfile(p entities.UserProfile) error {
	p.FullName = strings.TrimSpace(p.FullName)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.Email = strings.TrimSpace(p.Email)
	p.Address = strings.TrimSpace(p.Address)
	if p.FullName == "" {
		return ErrInvalidProfile
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.commitLocked(EventProfileChanged)
	return nil
}

func (s *Store) Preferences() entities.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// ToggleDarkMode flips the flag and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.DarkMode = !s.prefs.DarkMode
	s.commitLocked(EventPreferencesChanged)
	return s.prefs.DarkMode
}

func (s *Store) SetNotificationsEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.NotificationsEnabled = enabled
	s.commitLocked(EventPreferencesChanged)
}

// ClearAllData resets memory to defaults right away, cancels every
// simulation and wipes the persisted slot in the background.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.clearedBeforeLoad = true
	}
	s.scheduler.CancelAll()
	s.replaceLocked(entities.DefaultSnapshot())
	s.vouchers.EnsureDefaults(s.now())
	s.persister.EnqueueClear()
	s.hub.Emit(Event{Kind: EventStateCleared, At: s.now()})

	s.logger.Info("all data cleared")
}
