package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Métodos de pagamento aceitos no retiro
const (
	PaymentMethodCard  = "credit_debit_card"
	PaymentMethodBizum = "bizum"
	PaymentMethodCash  = "cash"
)

// Status de pagamento de uma inscrição
const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusRejected  = "rejected"
)

type RetreatRegistration struct {
	ID              string    `json:"id"`
	MemberID        string    `json:"member_id"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentType     string    `json:"payment_type"` // full, installments
	PaymentProofURL string    `json:"payment_proof_url"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewRetreatRegistration(memberID, paymentMethod, paymentType string) (*RetreatRegistration, error) {
	if memberID == "" {
		return nil, errors.New("member_id is required")
	}
	switch paymentMethod {
	case PaymentMethodCard, PaymentMethodBizum, PaymentMethodCash:
	default:
		return nil, errors.New("payment_method must be credit_debit_card, bizum or cash")
	}

	return &RetreatRegistration{
		ID:            uuid.New().String(),
		MemberID:      memberID,
		PaymentMethod: paymentMethod,
		PaymentType:   paymentType,
		Status:        PaymentStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

func ValidPaymentStatus(status string) bool {
	return status == PaymentStatusPending || status == PaymentStatusConfirmed || status == PaymentStatusRejected
}
