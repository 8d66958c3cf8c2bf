package presale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type suitePresaleTester struct {
	suite.Suite
}

func (s *suitePresaleTester) presale() *Presale {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	return &Presale{
		ID:              1,
		SaleToken:       tokenAddr,
		StartAt:         now,
		EndsAt:          now.Add(35 * 24 * time.Hour),
		Price:           testPrice,
		AvailableTokens: testSupply,
		SoldTokens:      decimal.Zero,
		WithdrawnTokens: decimal.Zero,
		LimitPerUser:    testLimit,
		Precision:       testPrecision,
		VestingEndTime:  now.Add(90 * 24 * time.Hour),
		SaleStarted:     true,
		SaleActive:      true,
	}
}

func (s *suitePresaleTester) TestUsdtQuoteTruncates() {
	p := s.presale()

	// 100 tokens at 0.07$ per token
	s.True(p.UsdtQuote(dec("100000000000000000000")).Equal(dec("7000000000000000000")))

	// sub-precision amounts truncate toward zero, never round up
	s.True(p.UsdtQuote(dec("1")).IsZero())
	s.True(p.UsdtQuote(dec("14")).IsZero())
	s.True(p.UsdtQuote(dec("15")).Equal(dec("1")))
}

func (s *suitePresaleTester) TestEthQuoteTruncates() {
	p := s.presale()

	usdt := p.UsdtQuote(dec("100000000000000000000"))
	s.True(p.EthQuote(usdt, testRate).Equal(dec("19444444444444444444444444")))

	// remainder is dropped, not rounded
	s.True(p.EthQuote(dec("1"), dec("2000000000000000000")).IsZero())
	s.True(p.EthQuote(dec("7"), dec("2000000000000000000")).Equal(dec("3")))
}

func (s *suitePresaleTester) TestSaleWindow() {
	p := s.presale()

	s.False(p.InSaleWindow(p.StartAt.Add(-time.Second)))
	s.True(p.InSaleWindow(p.StartAt))
	s.True(p.InSaleWindow(p.EndsAt))
	s.False(p.InSaleWindow(p.EndsAt.Add(time.Second)))

	p.SaleActive = false
	s.False(p.InSaleWindow(p.StartAt.Add(time.Hour)))

	p.SaleActive = true
	p.SaleStarted = false
	s.False(p.InSaleWindow(p.StartAt.Add(time.Hour)))
}

func (s *suitePresaleTester) TestTokenBalance() {
	p := s.presale()

	s.True(p.TokenBalance().Equal(testSupply))

	p.SoldTokens = dec("1000000000000000000")
	p.WithdrawnTokens = dec("2000000000000000000")
	s.True(p.TokenBalance().Equal(testSupply.Sub(dec("3000000000000000000"))))
}

func (s *suitePresaleTester) TestIsCompleted() {
	p := s.presale()

	s.False(p.IsCompleted())
	p.SoldTokens = p.AvailableTokens
	s.True(p.IsCompleted())
}

func TestPresaleSuite(t *testing.T) {
	suite.Run(t, new(suitePresaleTester))
}
