package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionIntents = "intents"
)

type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "PENDING"
	IntentStatusMatched   IntentStatus = "MATCHED"
	IntentStatusExecuted  IntentStatus = "EXECUTED"
	IntentStatusCancelled IntentStatus = "CANCELLED"
)

var (
	ErrSameChain      = errors.New("source and destination chains must be different")
	ErrZeroAmount     = errors.New("amount must be greater than zero")
	ErrIntentExpired  = errors.New("intent has expired")
	ErrInvalidAddress = errors.New("invalid address")
)

type Intent struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserAddress  string              `bson:"user_address" json:"user"`
	SrcChainID   uint64              `bson:"src_chain_id" json:"src_chain_id"`
	DstChainID   uint64              `bson:"dst_chain_id" json:"dst_chain_id"`
	TokenAddress string              `bson:"token_address" json:"token"`
	Amount       Amount              `bson:"amount" json:"amount"`
	MinAmountOut Amount              `bson:"min_amount_out" json:"min_amount_out"`
	Expiry       int64               `bson:"expiry" json:"expiry"`
	Nonce        Amount              `bson:"nonce" json:"nonce"`
	Signature    string              `bson:"signature" json:"signature"`
	Status       IntentStatus        `bson:"status" json:"status"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// IsExpired reports whether the intent can no longer be matched or executed at now.
func (i *Intent) IsExpired(now time.Time) bool {
	return i.Expiry <= now.Unix()
}

// Validate checks the invariants an intent must hold whenever it is accepted,
// matched or executed. minAmountOut is unsigned so it cannot be negative.
func (i *Intent) Validate(now time.Time) error {
	if !common.IsHexAddress(i.UserAddress) {
		return fmt.Errorf("%w: user %q", ErrInvalidAddress, i.UserAddress)
	}
	if i.TokenAddress != "" && !common.IsHexAddress(i.TokenAddress) {
		return fmt.Errorf("%w: token %q", ErrInvalidAddress, i.TokenAddress)
	}
	if i.SrcChainID == i.DstChainID {
		return fmt.Errorf("%w: %d", ErrSameChain, i.SrcChainID)
	}
	if i.Amount.IsZero() {
		return ErrZeroAmount
	}
	if i.IsExpired(now) {
		return fmt.Errorf("%w: expiry %d", ErrIntentExpired, i.Expiry)
	}
	return nil
}

func (i *Intent) HexId() string {
	if i.Id == nil {
		return ""
	}
	return i.Id.Hex()
}
