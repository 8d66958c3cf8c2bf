package presale

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	testPrice     = dec("70000000000000000")           // 0.07$ at 18 decimals
	testPrecision = dec("1000000000000000000")         // 1e18
	testSupply    = dec("50000000000000000000000000")  // 50_000_000e18
	testLimit     = dec("50000000000000000000000")     // 50_000e18
	testRate      = dec("360000000000")                // 3600$ at 8 decimals
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

type feedStub struct {
	rate Rate
	err  error
}

func (f *feedStub) LatestRate() (Rate, error) {
	return f.rate, f.err
}

type tokenStub struct {
	balances map[string]decimal.Decimal
	blocked  map[string]bool
}

func newTokenStub() *tokenStub {
	return &tokenStub{
		balances: make(map[string]decimal.Decimal),
		blocked:  make(map[string]bool),
	}
}

func (t *tokenStub) Mint(to string, amount decimal.Decimal) error {
	if t.blocked[to] {
		return errors.New("recipient is blacklisted")
	}

	t.balances[to] = t.balances[to].Add(amount)

	return nil
}

func (t *tokenStub) Transfer(to string, amount decimal.Decimal) error {
	if t.blocked[to] {
		return errors.New("recipient is blacklisted")
	}

	t.balances[to] = t.balances[to].Add(amount)

	return nil
}

func (t *tokenStub) BalanceOf(holder string) (decimal.Decimal, error) {
	return t.balances[holder], nil
}

type resolverStub struct {
	tokens map[string]*tokenStub
}

func (r *resolverStub) Resolve(address string) (Token, error) {
	token, found := r.tokens[address]
	if !found {
		return nil, errors.New("token must be contract address")
	}

	return token, nil
}

type stableStub struct {
	tokenStub
	allowances map[string]decimal.Decimal
	pulls      int
}

func newStableStub() *stableStub {
	return &stableStub{
		tokenStub:  *newTokenStub(),
		allowances: make(map[string]decimal.Decimal),
	}
}

func (s *stableStub) TransferFrom(from string, to string, amount decimal.Decimal) error {
	if s.allowances[from].LessThan(amount) {
		return errors.New("insufficient allowance")
	}

	s.allowances[from] = s.allowances[from].Sub(amount)
	s.balances[to] = s.balances[to].Add(amount)
	s.pulls++

	return nil
}

type vaultStub struct {
	paid map[string]decimal.Decimal
	err  error
}

func (v *vaultStub) Transfer(to string, amount decimal.Decimal) error {
	if v.err != nil {
		return v.err
	}

	if v.paid == nil {
		v.paid = make(map[string]decimal.Decimal)
	}

	v.paid[to] = v.paid[to].Add(amount)

	return nil
}

type publisherRecorder struct {
	events []EventType
}

func (p *publisherRecorder) PublishPresaleEvent(event EventType, payload interface{}) {
	p.events = append(p.events, event)
}

type suiteEngineTester struct {
	suite.Suite

	engine    *Engine
	feed      *feedStub
	saleToken *tokenStub
	usdt      *stableStub
	vault     *vaultStub
	publisher *publisherRecorder
	now       time.Time
}

const (
	operator  = "ID000001"
	custody   = "presale-custody"
	buyer     = "ID734512"
	tokenAddr = "0x5fa2358a14b1f48e187b2d7ac0ae12a86b63bb26"
)

func (s *suiteEngineTester) SetupTest() {
	s.now = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	s.feed = &feedStub{rate: Rate{Value: testRate, Decimals: 8, Timestamp: s.now}}
	s.saleToken = newTokenStub()
	s.usdt = newStableStub()
	s.vault = &vaultStub{}
	s.publisher = &publisherRecorder{}

	resolver := &resolverStub{tokens: map[string]*tokenStub{tokenAddr: s.saleToken}}

	s.engine = NewEngine(operator, custody, s.feed, resolver, s.usdt, s.vault, s.publisher)
	s.engine.Now = func() time.Time { return s.now }
}

func (s *suiteEngineTester) params() CreatePresaleParams {
	return CreatePresaleParams{
		SaleToken:       tokenAddr,
		StartAt:         s.now.Add(time.Hour),
		EndsAt:          s.now.Add(35 * 24 * time.Hour),
		Price:           testPrice,
		AvailableTokens: testSupply,
		LimitPerUser:    testLimit,
		Precision:       testPrecision,
		VestingEndTime:  s.now.Add(90 * 24 * time.Hour),
	}
}

// createAndStart creates a presale, starts it and moves the clock past StartAt.
func (s *suiteEngineTester) createAndStart() Presale {
	p, err := s.engine.CreatePresale(operator, s.params())
	s.NoError(err)

	s.NoError(s.engine.StartSale(operator, p.ID))
	s.now = p.StartAt.Add(time.Minute)
	s.feed.rate.Timestamp = s.now

	return p
}

func (s *suiteEngineTester) TestCreatePresale() {
	p, err := s.engine.CreatePresale(operator, s.params())
	s.NoError(err)

	s.Equal(uint64(1), p.ID)
	s.Equal(tokenAddr, p.SaleToken)
	s.False(p.SaleStarted)
	s.False(p.SaleActive)
	s.True(p.SoldTokens.IsZero())
	s.Equal([]EventType{EventPresaleCreated}, s.publisher.events)

	p2, err := s.engine.CreatePresale(operator, s.params())
	s.NoError(err)
	s.Equal(uint64(2), p2.ID)
}

func (s *suiteEngineTester) TestCreatePresaleValidation() {
	entries := []struct {
		name   string
		mutate func(*CreatePresaleParams)
		err    error
	}{
		{"start in the past", func(p *CreatePresaleParams) { p.StartAt = s.now.Add(-time.Hour) }, ErrInvalidSchedule},
		{"start after end", func(p *CreatePresaleParams) { p.EndsAt = p.StartAt.Add(-time.Minute) }, ErrInvalidSchedule},
		{"empty token", func(p *CreatePresaleParams) { p.SaleToken = "" }, ErrInvalidToken},
		{"unknown token", func(p *CreatePresaleParams) { p.SaleToken = "0xdead" }, ErrInvalidToken},
		{"zero price", func(p *CreatePresaleParams) { p.Price = decimal.Zero }, ErrInvalidPrice},
		{"zero supply", func(p *CreatePresaleParams) { p.AvailableTokens = decimal.Zero }, ErrInvalidSupply},
		{"zero limit", func(p *CreatePresaleParams) { p.LimitPerUser = decimal.Zero }, ErrInvalidLimit},
		{"zero precision", func(p *CreatePresaleParams) { p.Precision = decimal.Zero }, ErrInvalidPrecision},
		{"vesting before end", func(p *CreatePresaleParams) { p.VestingEndTime = p.EndsAt.Add(-time.Second) }, ErrInvalidVesting},
	}

	for _, entry := range entries {
		s.T().Run(entry.name, func(t *testing.T) {
			params := s.params()
			entry.mutate(&params)

			_, err := s.engine.CreatePresale(operator, params)
			s.ErrorIs(err, entry.err)
		})
	}

	s.Empty(s.publisher.events)
	s.Equal(uint64(0), s.engine.PresaleID)
}

func (s *suiteEngineTester) TestCreatePresaleUnauthorized() {
	_, err := s.engine.CreatePresale(buyer, s.params())
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *suiteEngineTester) TestStartSaleOneWay() {
	p, err := s.engine.CreatePresale(operator, s.params())
	s.NoError(err)

	s.NoError(s.engine.StartSale(operator, p.ID))

	stored, err := s.engine.GetPresale(p.ID)
	s.NoError(err)
	s.True(stored.SaleStarted)
	s.True(stored.SaleActive)

	s.ErrorIs(s.engine.StartSale(operator, p.ID), ErrAlreadyStarted)
}

func (s *suiteEngineTester) TestPauseUnpauseGuards() {
	p, err := s.engine.CreatePresale(operator, s.params())
	s.NoError(err)

	s.ErrorIs(s.engine.PausePresale(operator, p.ID), ErrNotStarted)
	s.ErrorIs(s.engine.UnpausePresale(operator, p.ID), ErrNotStarted)

	s.NoError(s.engine.StartSale(operator, p.ID))

	s.ErrorIs(s.engine.UnpausePresale(operator, p.ID), ErrNotPaused)
	s.NoError(s.engine.PausePresale(operator, p.ID))
	s.ErrorIs(s.engine.PausePresale(operator, p.ID), ErrAlreadyPaused)
	s.NoError(s.engine.UnpausePresale(operator, p.ID))
}

func (s *suiteEngineTester) TestRetime() {
	p, err := s.engine.CreatePresale(operator, s.params())
	s.NoError(err)

	s.ErrorIs(s.engine.UpdateTokenPrice(operator, p.ID, decimal.Zero), ErrZeroPrice)
	s.NoError(s.engine.UpdateTokenPrice(operator, p.ID, dec("1000000000000000000")))

	s.ErrorIs(s.engine.SetSaleEndTime(operator, p.ID, p.StartAt.Add(-time.Hour)), ErrInvalidSchedule)
	newEnd := p.StartAt.Add(24 * time.Hour)
	s.NoError(s.engine.SetSaleEndTime(operator, p.ID, newEnd))

	s.ErrorIs(s.engine.SetVestingEndTime(operator, p.ID, newEnd.Add(-time.Hour)), ErrInvalidVesting)
	s.NoError(s.engine.SetVestingEndTime(operator, p.ID, newEnd.Add(time.Hour)))

	stored, err := s.engine.GetPresale(p.ID)
	s.NoError(err)
	s.True(stored.Price.Equal(dec("1000000000000000000")))
	s.True(stored.EndsAt.Equal(newEnd))
	s.True(stored.VestingEndTime.Equal(newEnd.Add(time.Hour)))
}

func (s *suiteEngineTester) TestQuoteHelpers() {
	p := s.createAndStart()

	amount := dec("100000000000000000000") // 100e18

	usdtQuote, err := s.engine.UsdtBuyHelper(p.ID, amount)
	s.NoError(err)
	s.True(usdtQuote.Equal(dec("7000000000000000000"))) // 100 * 0.07 = 7e18

	ethQuote, err := s.engine.EthBuyHelper(p.ID, amount)
	s.NoError(err)
	// 7e18 * 1e18 / 3.6e11 truncated toward zero, remainder stays with the treasury
	s.True(ethQuote.Equal(dec("19444444444444444444444444")))
}

func (s *suiteEngineTester) TestQuoteOracleUnavailable() {
	p := s.createAndStart()

	s.feed.rate.Value = decimal.Zero
	_, err := s.engine.EthBuyHelper(p.ID, dec("1000000000000000000"))
	s.ErrorIs(err, ErrOracleUnavailable)

	s.feed.rate.Value = testRate
	s.feed.rate.Timestamp = s.now.Add(-2 * time.Hour)
	_, err = s.engine.EthBuyHelper(p.ID, dec("1000000000000000000"))
	s.ErrorIs(err, ErrOracleUnavailable)
}

func (s *suiteEngineTester) TestBuyWithUsdt() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	cost := dec("7000000000000000000")

	s.usdt.allowances[buyer] = cost

	s.NoError(s.engine.BuyWithUsdt(p.ID, buyer, amount))

	s.True(s.engine.CheckUserBalance(p.ID, buyer).Equal(amount))
	s.True(s.engine.Treasury.UsdtBalance.Equal(cost))

	balance, err := s.usdt.BalanceOf(custody)
	s.NoError(err)
	s.True(balance.Equal(cost))

	stored, err := s.engine.GetPresale(p.ID)
	s.NoError(err)
	s.True(stored.SoldTokens.Equal(amount))
}

func (s *suiteEngineTester) TestBuyWithUsdtAllowanceRejected() {
	p := s.createAndStart()

	s.Error(s.engine.BuyWithUsdt(p.ID, buyer, dec("100000000000000000000")))

	s.True(s.engine.CheckUserBalance(p.ID, buyer).IsZero())
	s.True(s.engine.Treasury.UsdtBalance.IsZero())

	stored, err := s.engine.GetPresale(p.ID)
	s.NoError(err)
	s.True(stored.SoldTokens.IsZero())
}

func (s *suiteEngineTester) TestBuyWithEth() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	cost, err := s.engine.EthBuyHelper(p.ID, amount)
	s.NoError(err)

	s.NoError(s.engine.BuyWithEth(p.ID, buyer, amount, cost))

	s.True(s.engine.CheckUserBalance(p.ID, buyer).Equal(amount))
	s.True(s.engine.Treasury.EthBalance.Equal(cost))

	// no sale tokens move at purchase time
	balance, err := s.saleToken.BalanceOf(buyer)
	s.NoError(err)
	s.True(balance.IsZero())
}

func (s *suiteEngineTester) TestBuyWithEthPaymentMismatch() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	cost, err := s.engine.EthBuyHelper(p.ID, amount)
	s.NoError(err)

	s.ErrorIs(s.engine.BuyWithEth(p.ID, buyer, amount, cost.Sub(decimal.New(1, 0))), ErrPaymentMismatch)
	s.ErrorIs(s.engine.BuyWithEth(p.ID, buyer, amount, cost.Add(decimal.New(1, 0))), ErrPaymentMismatch)

	s.True(s.engine.Treasury.EthBalance.IsZero())
	s.True(s.engine.CheckUserBalance(p.ID, buyer).IsZero())
}

func (s *suiteEngineTester) TestBuyZeroAmount() {
	p := s.createAndStart()

	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, buyer, decimal.Zero), ErrBelowMinimum)
	s.ErrorIs(s.engine.BuyWithEth(p.ID, buyer, decimal.Zero, dec("1")), ErrBelowMinimum)
	s.ErrorIs(s.engine.BuyWithEth(p.ID, buyer, dec("1000000000000000000"), decimal.Zero), ErrBelowMinimum)
}

func (s *suiteEngineTester) TestBuyOutsideWindow() {
	p, err := s.engine.CreatePresale(operator, s.params())
	s.NoError(err)

	amount := dec("1000000000000000000")
	s.usdt.allowances[buyer] = testSupply

	// not started yet
	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, buyer, amount), ErrSaleNotActive)

	s.NoError(s.engine.StartSale(operator, p.ID))

	// started but before StartAt
	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, buyer, amount), ErrSaleNotActive)

	// paused
	s.now = p.StartAt.Add(time.Minute)
	s.NoError(s.engine.PausePresale(operator, p.ID))
	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, buyer, amount), ErrSaleNotActive)
	s.NoError(s.engine.UnpausePresale(operator, p.ID))

	// after EndsAt
	s.now = p.EndsAt.Add(time.Second)
	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, buyer, amount), ErrSaleNotActive)

	s.Zero(s.usdt.pulls)
}

func (s *suiteEngineTester) TestBuyLimitExceeded() {
	p := s.createAndStart()

	s.usdt.allowances[buyer] = testSupply

	over := testLimit.Add(decimal.New(1, 0))
	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, buyer, over), ErrLimitExceeded)

	// the cap counts cumulative purchases
	s.NoError(s.engine.BuyWithUsdt(p.ID, buyer, testLimit))
	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, buyer, decimal.New(1, 0)), ErrLimitExceeded)
}

func (s *suiteEngineTester) TestBuySupplyExhausted() {
	params := s.params()
	params.AvailableTokens = dec("2000000000000000000")
	params.LimitPerUser = testSupply

	p, err := s.engine.CreatePresale(operator, params)
	s.NoError(err)
	s.NoError(s.engine.StartSale(operator, p.ID))
	s.now = p.StartAt.Add(time.Minute)
	s.feed.rate.Timestamp = s.now

	s.usdt.allowances[buyer] = testSupply
	s.usdt.allowances["ID900001"] = testSupply

	s.NoError(s.engine.BuyWithUsdt(p.ID, buyer, dec("2000000000000000000")))
	s.ErrorIs(s.engine.BuyWithUsdt(p.ID, "ID900001", decimal.New(1, 0)), ErrSupplyExhausted)
}

func (s *suiteEngineTester) TestClaimAfterVesting() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	cost := dec("7000000000000000000")
	s.usdt.allowances[buyer] = cost
	s.NoError(s.engine.BuyWithUsdt(p.ID, buyer, amount))

	// vesting still running
	_, err := s.engine.ClaimToken(p.ID, buyer)
	s.ErrorIs(err, ErrVestingNotEnded)

	s.now = p.VestingEndTime.Add(time.Second)

	claimed, err := s.engine.ClaimToken(p.ID, buyer)
	s.NoError(err)
	s.True(claimed.Equal(amount))

	balance, err := s.saleToken.BalanceOf(buyer)
	s.NoError(err)
	s.True(balance.Equal(amount))
	s.True(s.engine.CheckUserBalance(p.ID, buyer).IsZero())

	// second claim moves nothing
	_, err = s.engine.ClaimToken(p.ID, buyer)
	s.ErrorIs(err, ErrNothingToClaim)
	balance, _ = s.saleToken.BalanceOf(buyer)
	s.True(balance.Equal(amount))
}

func (s *suiteEngineTester) TestClaimBlockedRecipientUnwinds() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	s.usdt.allowances[buyer] = testSupply
	s.NoError(s.engine.BuyWithUsdt(p.ID, buyer, amount))

	s.saleToken.blocked[buyer] = true
	s.now = p.VestingEndTime.Add(time.Second)

	_, err := s.engine.ClaimToken(p.ID, buyer)
	s.Error(err)

	// claimable untouched, claim succeeds once the token unblocks the user
	s.True(s.engine.CheckUserBalance(p.ID, buyer).Equal(amount))

	s.saleToken.blocked[buyer] = false
	claimed, err := s.engine.ClaimToken(p.ID, buyer)
	s.NoError(err)
	s.True(claimed.Equal(amount))
}

func (s *suiteEngineTester) TestWithdrawEth() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	cost, err := s.engine.EthBuyHelper(p.ID, amount)
	s.NoError(err)
	s.NoError(s.engine.BuyWithEth(p.ID, buyer, amount, cost))

	s.ErrorIs(s.engine.WithdrawEth(buyer, operator, cost), ErrUnauthorized)
	s.ErrorIs(s.engine.WithdrawEth(operator, operator, cost.Add(decimal.New(1, 0))), ErrInsufficientBalance)
	s.True(s.engine.Treasury.EthBalance.Equal(cost))

	s.NoError(s.engine.WithdrawEth(operator, operator, cost))
	s.True(s.engine.Treasury.EthBalance.IsZero())
	s.True(s.vault.paid[operator].Equal(cost))

	s.ErrorIs(s.engine.WithdrawEth(operator, operator, decimal.New(1, 0)), ErrInsufficientBalance)
}

func (s *suiteEngineTester) TestWithdrawEthVaultFailureUnwinds() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	cost, err := s.engine.EthBuyHelper(p.ID, amount)
	s.NoError(err)
	s.NoError(s.engine.BuyWithEth(p.ID, buyer, amount, cost))

	s.vault.err = errors.New("payout rail down")
	s.Error(s.engine.WithdrawEth(operator, operator, cost))
	s.True(s.engine.Treasury.EthBalance.Equal(cost))
}

func (s *suiteEngineTester) TestWithdrawUsdt() {
	p := s.createAndStart()

	amount := dec("100000000000000000000")
	cost := dec("7000000000000000000")
	s.usdt.allowances[buyer] = cost
	s.NoError(s.engine.BuyWithUsdt(p.ID, buyer, amount))

	s.ErrorIs(s.engine.WithdrawUsdt(buyer, operator, cost), ErrUnauthorized)
	s.NoError(s.engine.WithdrawUsdt(operator, operator, cost))
	s.True(s.engine.Treasury.UsdtBalance.IsZero())

	balance, err := s.usdt.BalanceOf(operator)
	s.NoError(err)
	s.True(balance.Equal(cost))
}

func (s *suiteEngineTester) TestWithdrawPresaleToken() {
	p := s.createAndStart()

	balance, err := s.engine.PresaleTokenBalance(p.ID)
	s.NoError(err)
	s.True(balance.Equal(testSupply))

	amount := dec("100000000000000000000")
	s.NoError(s.engine.WithdrawPresaleToken(operator, p.ID, amount, operator))

	balance, err = s.engine.PresaleTokenBalance(p.ID)
	s.NoError(err)
	s.True(balance.Equal(testSupply.Sub(amount)))

	ownerBalance, err := s.saleToken.BalanceOf(operator)
	s.NoError(err)
	s.True(ownerBalance.Equal(amount))

	s.ErrorIs(s.engine.WithdrawPresaleToken(operator, p.ID, testSupply, operator), ErrInsufficientTokenBalance)
	s.ErrorIs(s.engine.WithdrawPresaleToken(buyer, p.ID, amount, buyer), ErrUnauthorized)
}

func (s *suiteEngineTester) TestSweepEnded() {
	p := s.createAndStart()

	s.Empty(s.engine.SweepEnded())

	s.now = p.EndsAt.Add(time.Second)

	s.Equal([]uint64{p.ID}, s.engine.SweepEnded())
	s.Contains(s.publisher.events, EventSaleEnded)

	// a presale ends exactly once
	s.Empty(s.engine.SweepEnded())
}

// Hydrating a presale whose window already closed must not put it back on the
// schedule, its ended event was emitted before the restart.
func (s *suiteEngineTester) TestLoadEndedPresaleNotRescheduled() {
	ended := &Presale{
		ID:              3,
		SaleToken:       tokenAddr,
		StartAt:         s.now.Add(-48 * time.Hour),
		EndsAt:          s.now.Add(-time.Hour),
		Price:           testPrice,
		AvailableTokens: testSupply,
		LimitPerUser:    testLimit,
		Precision:       testPrecision,
		VestingEndTime:  s.now.Add(-time.Hour),
		SaleStarted:     true,
		SaleActive:      true,
	}

	s.engine.LoadPresale(ended)

	s.Empty(s.engine.SweepEnded())
	s.NotContains(s.publisher.events, EventSaleEnded)

	live := &Presale{
		ID:              4,
		SaleToken:       tokenAddr,
		StartAt:         s.now.Add(-time.Hour),
		EndsAt:          s.now.Add(time.Hour),
		Price:           testPrice,
		AvailableTokens: testSupply,
		LimitPerUser:    testLimit,
		Precision:       testPrecision,
		VestingEndTime:  s.now.Add(time.Hour),
		SaleStarted:     true,
		SaleActive:      true,
	}

	s.engine.LoadPresale(live)
	s.now = s.now.Add(2 * time.Hour)

	s.Equal([]uint64{live.ID}, s.engine.SweepEnded())
}

func (s *suiteEngineTester) TestLoadHydration() {
	p := &Presale{
		ID:              7,
		SaleToken:       tokenAddr,
		StartAt:         s.now.Add(-time.Hour),
		EndsAt:          s.now.Add(time.Hour),
		Price:           testPrice,
		AvailableTokens: testSupply,
		SoldTokens:      dec("1000000000000000000"),
		LimitPerUser:    testLimit,
		Precision:       testPrecision,
		VestingEndTime:  s.now.Add(2 * time.Hour),
		SaleStarted:     true,
		SaleActive:      true,
	}

	s.engine.LoadPresale(p)
	s.engine.LoadPosition(7, buyer, &UserPosition{
		PurchasedTotal: dec("1000000000000000000"),
		Claimable:      dec("1000000000000000000"),
	})
	s.engine.LoadTreasury(dec("5"), dec("9"))

	s.Equal(uint64(7), s.engine.PresaleID)
	s.True(s.engine.CheckUserBalance(7, buyer).Equal(dec("1000000000000000000")))
	s.True(s.engine.Treasury.EthBalance.Equal(dec("5")))
	s.True(s.engine.Treasury.UsdtBalance.Equal(dec("9")))

	s.usdt.allowances[buyer] = testSupply
	s.NoError(s.engine.BuyWithUsdt(7, buyer, dec("1000000000000000000")))
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(suiteEngineTester))
}
