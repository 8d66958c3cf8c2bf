package presale

import "github.com/shopspring/decimal"

// Treasury pools collected proceeds across every presale. The only mutation
// paths are the purchase credit and the operator withdrawal; the balance at any
// time equals the sum of charges minus the sum of withdrawals.
type Treasury struct {
	EthBalance  decimal.Decimal
	UsdtBalance decimal.Decimal
}

func NewTreasury() *Treasury {
	return &Treasury{
		EthBalance:  decimal.Zero,
		UsdtBalance: decimal.Zero,
	}
}

func (t *Treasury) CreditEth(amount decimal.Decimal) {
	t.EthBalance = t.EthBalance.Add(amount)
}

func (t *Treasury) CreditUsdt(amount decimal.Decimal) {
	t.UsdtBalance = t.UsdtBalance.Add(amount)
}

func (t *Treasury) SubEth(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(t.EthBalance) {
		return ErrInsufficientBalance
	}

	t.EthBalance = t.EthBalance.Sub(amount)

	return nil
}

func (t *Treasury) SubUsdt(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(t.UsdtBalance) {
		return ErrInsufficientBalance
	}

	t.UsdtBalance = t.UsdtBalance.Sub(amount)

	return nil
}
