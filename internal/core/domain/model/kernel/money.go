package kernel

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// CurrencyLength is the required length of an ISO 4217 currency code.
const CurrencyLength = 3

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is an immutable value object representing an amount of money in the
// smallest currency unit (cents). Amounts are never negative: the escrow
// ledger only ever holds zero or positive balances, and product prices cannot
// be negative.
//
// Example:
//
//	price, err := kernel.NewMoney(99999, "USD")
//	if err != nil {
//	    // handle validation error
//	}
//	total, err := price.Multiply(2) // 199998 USD cents
type Money struct { //nolint:recvcheck //using for validation
	amountCents int64
	currency    string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in cents and a currency code.
// The amount must be non-negative and the currency must be a three-letter
// uppercase code.
func NewMoney(amountCents int64, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmountCents(amountCents); err != nil {
		return Money{}, err
	}
	if err := m.setCurrency(currency); err != nil {
		return Money{}, err
	}

	return m, nil
}

// AmountCents returns the amount in the smallest currency unit.
func (m Money) AmountCents() int64 {
	return m.amountCents
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amountCents == 0
}

// Multiply returns a new Money with the amount multiplied by quantity.
// Quantity must be at least 1, and the result must not overflow int64.
func (m Money) Multiply(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if quantity < 1 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt64)
	}

	if m.amountCents != 0 && int64(quantity) > math.MaxInt64/m.amountCents {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d * %d overflows", m.amountCents, quantity))
	}

	return NewMoney(m.amountCents*int64(quantity), m.currency)
}

// IsEqual reports whether two Money values have the same amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amountCents == other.amountCents && m.currency == other.currency
}

// String formats the value as "<cents> <currency>".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amountCents, m.currency)
}

// Validate ensures the Money value was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m *Money) setAmountCents(amountCents int64) error {
	if amountCents < 0 {
		return errs.NewValueIsOutOfRangeError("amountCents", amountCents, 0, int64(math.MaxInt64))
	}
	m.amountCents = amountCents
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != CurrencyLength {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not an uppercase currency code", currency))
		}
	}
	m.currency = currency
	return nil
}
