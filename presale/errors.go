package presale

import "errors"

// Engine errors are sentinel values so that callers can map them to API error
// codes without parsing messages.
var (
	ErrPresaleNotFound = errors.New("presale not found")
	ErrUnauthorized    = errors.New("caller is not the operator")

	ErrInvalidSchedule  = errors.New("time isnt correct")
	ErrInvalidToken     = errors.New("invalid sale token")
	ErrInvalidPrice     = errors.New("token price cant be zero")
	ErrInvalidSupply    = errors.New("zero tokens to sell")
	ErrInvalidLimit     = errors.New("zero tokens limit for user")
	ErrInvalidPrecision = errors.New("precision cant be zero")
	ErrInvalidVesting   = errors.New("vesting time end isnt correct")

	ErrAlreadyStarted = errors.New("sale already started")
	ErrNotStarted     = errors.New("sale hasnt started yet")
	ErrAlreadyPaused  = errors.New("already paused")
	ErrNotPaused      = errors.New("not paused")
	ErrZeroPrice      = errors.New("zero price")

	ErrSaleNotActive   = errors.New("sale is not active")
	ErrBelowMinimum    = errors.New("not enough funds")
	ErrPaymentMismatch = errors.New("payment doesnt match the quote")
	ErrLimitExceeded   = errors.New("cant buy more than limit per user")
	ErrSupplyExhausted = errors.New("not enough tokens left for sale")

	ErrVestingNotEnded = errors.New("token claim will be allowed after vesting end")
	ErrNothingToClaim  = errors.New("zero claim amount")

	ErrInsufficientBalance      = errors.New("insufficient treasury balance")
	ErrInsufficientTokenBalance = errors.New("insufficient token balance")

	ErrOracleUnavailable = errors.New("oracle rate unavailable")
)
