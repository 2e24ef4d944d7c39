package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var ErrAmountOverflow = errors.New("amount overflows 256 bits")

// Amount is an unsigned 256-bit integer. It is stored and transported as a
// decimal string so that no runtime on the other side loses precision.
type Amount struct {
	v uint256.Int
}

func NewAmount(value uint64) Amount {
	var a Amount
	a.v.SetUint64(value)
	return a
}

func AmountFromString(value string) (Amount, error) {
	var a Amount
	value = strings.TrimSpace(value)
	if value == "" {
		return a, fmt.Errorf("empty amount")
	}
	if err := a.v.SetFromDecimal(value); err != nil {
		return a, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return a, nil
}

func AmountFromBig(value *big.Int) (Amount, error) {
	var a Amount
	if value == nil || value.Sign() < 0 {
		return a, fmt.Errorf("invalid amount %v", value)
	}
	if overflow := a.v.SetFromBig(value); overflow {
		return a, ErrAmountOverflow
	}
	return a, nil
}

// MaxAmount is 2^256-1.
func MaxAmount() Amount {
	var a Amount
	a.v.SetAllOne()
	return a
}

// MustAmount panics on invalid input; for constants and tests.
func MustAmount(value string) Amount {
	a, err := AmountFromString(value)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) String() string {
	return a.v.Dec()
}

func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

func (a Amount) Add(b Amount) (Amount, error) {
	var z Amount
	if _, overflow := z.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return z, nil
}

// Sub returns a - b and panics if b > a. Callers bound b by a first.
func (a Amount) Sub(b Amount) Amount {
	if a.v.Lt(&b.v) {
		panic(fmt.Sprintf("amount underflow: %s - %s", a.String(), b.String()))
	}
	var z Amount
	z.v.Sub(&a.v, &b.v)
	return z
}

func MinAmount(first Amount, rest ...Amount) Amount {
	m := first
	for _, a := range rest {
		if a.Cmp(m) < 0 {
			m = a
		}
	}
	return m
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.String())
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&s); err != nil {
		return fmt.Errorf("decoding amount: %w", err)
	}
	parsed, err := AmountFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// bare numbers are accepted as long as they are integers
		s = string(data)
	}
	parsed, err := AmountFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
