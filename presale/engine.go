package presale

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Engine owns every presale record, user position and the pooled treasury. All
// mutating calls serialize behind one mutex: each observes fully settled state
// and either applies completely or leaves no trace.
type Engine struct {
	engineMutex sync.Mutex

	// Operator is the only identity allowed to run lifecycle and withdrawal
	// operations. Custody is the engine's own account handle, holding pulled
	// stable funds and the sale-token inventory.
	Operator  string
	Custody   string
	PresaleID uint64
	Presales  map[uint64]*Presale
	Treasury  *Treasury
	Schedule  *ScheduleIndex

	Feed      PriceFeed
	Tokens    TokenResolver
	Usdt      StableToken
	Vault     Vault
	Publisher EventPublisher

	// Now supplies the current time and is swapped out in tests.
	Now func() time.Time

	positions map[uint64]map[string]*UserPosition
}

type CreatePresaleParams struct {
	SaleToken       string
	StartAt         time.Time
	EndsAt          time.Time
	Price           decimal.Decimal
	AvailableTokens decimal.Decimal
	LimitPerUser    decimal.Decimal
	Precision       decimal.Decimal
	VestingEndTime  time.Time
}

func NewEngine(operator string, custody string, feed PriceFeed, tokens TokenResolver, usdt StableToken, vault Vault, publisher EventPublisher) *Engine {
	engine := &Engine{
		Operator:  operator,
		Custody:   custody,
		Presales:  make(map[uint64]*Presale),
		Treasury:  NewTreasury(),
		Schedule:  NewScheduleIndex(),
		Feed:      feed,
		Tokens:    tokens,
		Usdt:      usdt,
		Vault:     vault,
		Publisher: publisher,
		Now:       time.Now,
		positions: make(map[uint64]map[string]*UserPosition),
	}

	return engine
}

func (e *Engine) authorize(caller string) error {
	if caller != e.Operator {
		return ErrUnauthorized
	}

	return nil
}

// CreatePresale validates the campaign parameters, assigns the next sequential
// id and stores the record inactive and not started.
func (e *Engine) CreatePresale(caller string, params CreatePresaleParams) (Presale, error) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return Presale{}, err
	}

	now := e.Now()

	if !params.StartAt.After(now) || !params.StartAt.Before(params.EndsAt) {
		return Presale{}, ErrInvalidSchedule
	}

	if params.SaleToken == "" {
		return Presale{}, ErrInvalidToken
	}

	if _, err := e.Tokens.Resolve(params.SaleToken); err != nil {
		return Presale{}, ErrInvalidToken
	}

	if !params.Price.IsPositive() {
		return Presale{}, ErrInvalidPrice
	}

	if !params.AvailableTokens.IsPositive() {
		return Presale{}, ErrInvalidSupply
	}

	if !params.LimitPerUser.IsPositive() {
		return Presale{}, ErrInvalidLimit
	}

	if !params.Precision.IsPositive() {
		return Presale{}, ErrInvalidPrecision
	}

	if params.VestingEndTime.Before(params.EndsAt) {
		return Presale{}, ErrInvalidVesting
	}

	e.PresaleID++

	p := &Presale{
		ID:              e.PresaleID,
		SaleToken:       params.SaleToken,
		StartAt:         params.StartAt,
		EndsAt:          params.EndsAt,
		Price:           params.Price,
		AvailableTokens: params.AvailableTokens,
		SoldTokens:      decimal.Zero,
		WithdrawnTokens: decimal.Zero,
		LimitPerUser:    params.LimitPerUser,
		Precision:       params.Precision,
		VestingEndTime:  params.VestingEndTime,
		SaleStarted:     false,
		SaleActive:      false,
	}

	e.Presales[p.ID] = p
	e.positions[p.ID] = make(map[string]*UserPosition)
	e.Schedule.Insert(p.ID, p.EndsAt)

	e.publish(EventPresaleCreated, &PresaleCreatedEvent{
		PresaleID:       p.ID,
		SaleToken:       p.SaleToken,
		AvailableTokens: p.AvailableTokens,
		StartAt:         p.StartAt.Unix(),
		EndsAt:          p.EndsAt.Unix(),
	})

	return *p, nil
}

// StartSale flips the one-way started flag and activates the sale.
func (e *Engine) StartSale(caller string, id uint64) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	if p.SaleStarted {
		return ErrAlreadyStarted
	}

	p.SaleStarted = true
	p.SaleActive = true

	e.publish(EventSaleStarted, &SaleStateEvent{PresaleID: id, Operator: caller, Timestamp: e.Now().Unix()})

	return nil
}

func (e *Engine) PausePresale(caller string, id uint64) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	if !p.SaleStarted {
		return ErrNotStarted
	}

	if !p.SaleActive {
		return ErrAlreadyPaused
	}

	p.SaleActive = false

	e.publish(EventSalePaused, &SaleStateEvent{PresaleID: id, Operator: caller, Timestamp: e.Now().Unix()})

	return nil
}

func (e *Engine) UnpausePresale(caller string, id uint64) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	if !p.SaleStarted {
		return ErrNotStarted
	}

	if p.SaleActive {
		return ErrNotPaused
	}

	p.SaleActive = true

	e.publish(EventSaleUnpaused, &SaleStateEvent{PresaleID: id, Operator: caller, Timestamp: e.Now().Unix()})

	return nil
}

func (e *Engine) UpdateTokenPrice(caller string, id uint64, price decimal.Decimal) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	if !price.IsPositive() {
		return ErrZeroPrice
	}

	p.Price = price

	return nil
}

func (e *Engine) SetSaleEndTime(caller string, id uint64, endsAt time.Time) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	if !endsAt.After(p.StartAt) {
		return ErrInvalidSchedule
	}

	e.Schedule.Remove(p.ID, p.EndsAt)
	p.EndsAt = endsAt
	e.Schedule.Insert(p.ID, p.EndsAt)

	return nil
}

func (e *Engine) SetVestingEndTime(caller string, id uint64, vestingEnd time.Time) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	if vestingEnd.Before(p.EndsAt) {
		return ErrInvalidVesting
	}

	p.VestingEndTime = vestingEnd

	return nil
}

// GetLatestPrice reads the base asset rate fresh from the feed, rejecting a
// zero or stale observation.
func (e *Engine) GetLatestPrice() (decimal.Decimal, error) {
	rate, err := e.Feed.LatestRate()
	if err != nil {
		return decimal.Zero, ErrOracleUnavailable
	}

	if !rate.Usable(e.Now()) {
		return decimal.Zero, ErrOracleUnavailable
	}

	return rate.Value, nil
}

// UsdtBuyHelper quotes tokenAmount in the accounting asset. The division
// truncates toward zero, so the treasury keeps remainder dust.
func (e *Engine) UsdtBuyHelper(id uint64, tokenAmount decimal.Decimal) (decimal.Decimal, error) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	p, found := e.Presales[id]
	if !found {
		return decimal.Zero, ErrPresaleNotFound
	}

	return p.UsdtQuote(tokenAmount), nil
}

// EthBuyHelper quotes tokenAmount in the base asset at the current oracle
// rate. The rate is never cached, so two consecutive quotes may differ.
func (e *Engine) EthBuyHelper(id uint64, tokenAmount decimal.Decimal) (decimal.Decimal, error) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	p, found := e.Presales[id]
	if !found {
		return decimal.Zero, ErrPresaleNotFound
	}

	rate, err := e.GetLatestPrice()
	if err != nil {
		return decimal.Zero, err
	}

	return p.EthQuote(p.UsdtQuote(tokenAmount), rate), nil
}

// BuyWithEth records a purchase paid in the base asset. The attached payment
// must equal the freshly computed quote exactly; both under- and over-payment
// fail, nothing is refunded or short-filled. Tokens do not move here, the
// position only becomes claimable after vesting.
func (e *Engine) BuyWithEth(id uint64, buyer string, tokenAmount decimal.Decimal, amountPaid decimal.Decimal) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	now := e.Now()

	if !p.InSaleWindow(now) {
		return ErrSaleNotActive
	}

	if !tokenAmount.IsPositive() || !amountPaid.IsPositive() {
		return ErrBelowMinimum
	}

	rate, err := e.GetLatestPrice()
	if err != nil {
		return err
	}

	cost := p.EthQuote(p.UsdtQuote(tokenAmount), rate)
	if !amountPaid.Equal(cost) {
		return ErrPaymentMismatch
	}

	if err := e.checkCaps(p, buyer, tokenAmount); err != nil {
		return err
	}

	position := e.position(id, buyer)
	p.SoldTokens = p.SoldTokens.Add(tokenAmount)
	position.PurchasedTotal = position.PurchasedTotal.Add(tokenAmount)
	position.Claimable = position.Claimable.Add(tokenAmount)
	e.Treasury.CreditEth(amountPaid)

	e.publish(EventTokensBought, &BoughtEvent{
		Buyer:     buyer,
		SaleToken: p.SaleToken,
		Amount:    tokenAmount,
		Paid:      amountPaid,
		Currency:  "eth",
		Timestamp: now.Unix(),
		PresaleID: id,
	})

	return nil
}

// BuyWithUsdt records a purchase paid in the accounting asset, pulling the
// quoted amount through the buyer's allowance. A rejected pull fails the whole
// purchase with no accounting change.
func (e *Engine) BuyWithUsdt(id uint64, buyer string, tokenAmount decimal.Decimal) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	now := e.Now()

	if !p.InSaleWindow(now) {
		return ErrSaleNotActive
	}

	if !tokenAmount.IsPositive() {
		return ErrBelowMinimum
	}

	if err := e.checkCaps(p, buyer, tokenAmount); err != nil {
		return err
	}

	cost := p.UsdtQuote(tokenAmount)

	if err := e.Usdt.TransferFrom(buyer, e.Custody, cost); err != nil {
		return err
	}

	position := e.position(id, buyer)
	p.SoldTokens = p.SoldTokens.Add(tokenAmount)
	position.PurchasedTotal = position.PurchasedTotal.Add(tokenAmount)
	position.Claimable = position.Claimable.Add(tokenAmount)
	e.Treasury.CreditUsdt(cost)

	e.publish(EventTokensBought, &BoughtEvent{
		Buyer:     buyer,
		SaleToken: p.SaleToken,
		Amount:    tokenAmount,
		Paid:      cost,
		Currency:  "usdt",
		Timestamp: now.Unix(),
		PresaleID: id,
	})

	return nil
}

// ClaimToken settles a user's vested position. Anyone may claim on behalf of
// any user; the tokens always go to the position owner. If the sale token
// rejects the transfer the claim fails atomically and the position keeps its
// balance.
func (e *Engine) ClaimToken(id uint64, user string) (decimal.Decimal, error) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	p, found := e.Presales[id]
	if !found {
		return decimal.Zero, ErrPresaleNotFound
	}

	now := e.Now()

	if !p.VestingEnded(now) {
		return decimal.Zero, ErrVestingNotEnded
	}

	position := e.position(id, user)
	if !position.Claimable.IsPositive() {
		return decimal.Zero, ErrNothingToClaim
	}

	token, err := e.Tokens.Resolve(p.SaleToken)
	if err != nil {
		return decimal.Zero, ErrInvalidToken
	}

	amount := position.Claimable
	if err := token.Transfer(user, amount); err != nil {
		return decimal.Zero, err
	}

	position.Claimable = decimal.Zero

	e.publish(EventTokensClaimed, &ClaimedEvent{
		User:      user,
		SaleToken: p.SaleToken,
		Amount:    amount,
		Timestamp: now.Unix(),
		PresaleID: id,
	})

	return amount, nil
}

func (e *Engine) WithdrawEth(caller string, to string, amount decimal.Decimal) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	if err := e.Treasury.SubEth(amount); err != nil {
		return err
	}

	if err := e.Vault.Transfer(to, amount); err != nil {
		e.Treasury.CreditEth(amount)
		return err
	}

	e.publish(EventFundsWithdrawn, &WithdrawnEvent{
		Operator:  caller,
		To:        to,
		Amount:    amount,
		Currency:  "eth",
		Timestamp: e.Now().Unix(),
	})

	return nil
}

func (e *Engine) WithdrawUsdt(caller string, to string, amount decimal.Decimal) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	if err := e.Treasury.SubUsdt(amount); err != nil {
		return err
	}

	if err := e.Usdt.Transfer(to, amount); err != nil {
		e.Treasury.CreditUsdt(amount)
		return err
	}

	e.publish(EventFundsWithdrawn, &WithdrawnEvent{
		Operator:  caller,
		To:        to,
		Amount:    amount,
		Currency:  "usdt",
		Timestamp: e.Now().Unix(),
	})

	return nil
}

// WithdrawPresaleToken moves unsold inventory out of a presale's custody.
func (e *Engine) WithdrawPresaleToken(caller string, id uint64, amount decimal.Decimal, to string) error {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if err := e.authorize(caller); err != nil {
		return err
	}

	p, found := e.Presales[id]
	if !found {
		return ErrPresaleNotFound
	}

	if !amount.IsPositive() || amount.GreaterThan(p.TokenBalance()) {
		return ErrInsufficientTokenBalance
	}

	token, err := e.Tokens.Resolve(p.SaleToken)
	if err != nil {
		return ErrInvalidToken
	}

	if err := token.Transfer(to, amount); err != nil {
		return err
	}

	p.WithdrawnTokens = p.WithdrawnTokens.Add(amount)

	e.publish(EventTokensWithdrawn, &WithdrawnEvent{
		Operator:  caller,
		To:        to,
		Amount:    amount,
		Currency:  p.SaleToken,
		Timestamp: e.Now().Unix(),
		PresaleID: id,
	})

	return nil
}

// CheckUserBalance returns the claimable amount of user inside presale id.
func (e *Engine) CheckUserBalance(id uint64, user string) decimal.Decimal {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	presalePositions, found := e.positions[id]
	if !found {
		return decimal.Zero
	}

	position, found := presalePositions[user]
	if !found {
		return decimal.Zero
	}

	return position.Claimable
}

func (e *Engine) PresaleTokenBalance(id uint64) (decimal.Decimal, error) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	p, found := e.Presales[id]
	if !found {
		return decimal.Zero, ErrPresaleNotFound
	}

	return p.TokenBalance(), nil
}

// GetPresale returns a copy of the presale record.
func (e *Engine) GetPresale(id uint64) (Presale, error) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	p, found := e.Presales[id]
	if !found {
		return Presale{}, ErrPresaleNotFound
	}

	return *p, nil
}

// SweepEnded emits a sale-ended event for every presale whose window has
// closed and drops it from the schedule index so each ends exactly once.
func (e *Engine) SweepEnded() []uint64 {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	now := e.Now()
	ids := e.Schedule.EndedBefore(now)

	for _, id := range ids {
		p := e.Presales[id]
		e.Schedule.Remove(p.ID, p.EndsAt)

		e.publish(EventSaleEnded, &SaleStateEvent{PresaleID: id, Timestamp: now.Unix()})
	}

	return ids
}

// LoadPresale hydrates one record from durable storage, replacing any copy the
// engine already holds. Used by the worker's reload path.
func (e *Engine) LoadPresale(p *Presale) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if old, found := e.Presales[p.ID]; found {
		e.Schedule.Remove(old.ID, old.EndsAt)
	}

	e.Presales[p.ID] = p
	if _, found := e.positions[p.ID]; !found {
		e.positions[p.ID] = make(map[string]*UserPosition)
	}

	// A presale whose window already closed had its ended event emitted
	// before, rescheduling it would emit the event again on the next sweep.
	if p.EndsAt.After(e.Now()) {
		e.Schedule.Insert(p.ID, p.EndsAt)
	}

	if p.ID > e.PresaleID {
		e.PresaleID = p.ID
	}
}

// LoadPosition hydrates one user position from durable storage.
func (e *Engine) LoadPosition(id uint64, user string, position *UserPosition) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	if _, found := e.positions[id]; !found {
		e.positions[id] = make(map[string]*UserPosition)
	}

	e.positions[id][user] = position
}

// LoadTreasury hydrates the pooled balances from durable storage.
func (e *Engine) LoadTreasury(eth decimal.Decimal, usdt decimal.Decimal) {
	e.engineMutex.Lock()
	defer e.engineMutex.Unlock()

	e.Treasury.EthBalance = eth
	e.Treasury.UsdtBalance = usdt
}

func (e *Engine) checkCaps(p *Presale, buyer string, tokenAmount decimal.Decimal) error {
	position := e.position(p.ID, buyer)

	if position.PurchasedTotal.Add(tokenAmount).GreaterThan(p.LimitPerUser) {
		return ErrLimitExceeded
	}

	if p.SoldTokens.Add(tokenAmount).GreaterThan(p.AvailableTokens) {
		return ErrSupplyExhausted
	}

	return nil
}

func (e *Engine) position(id uint64, user string) *UserPosition {
	presalePositions, found := e.positions[id]
	if !found {
		presalePositions = make(map[string]*UserPosition)
		e.positions[id] = presalePositions
	}

	position, found := presalePositions[user]
	if !found {
		position = &UserPosition{
			PurchasedTotal: decimal.Zero,
			Claimable:      decimal.Zero,
		}
		presalePositions[user] = position
	}

	return position
}
