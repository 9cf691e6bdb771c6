package model

import (
	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// RejectionReason records one risk finding against an application. Created by
// a rule check and never mutated afterwards; collection order is preserved
// because the explanation renders reasons in order.
type RejectionReason struct {
	Factor      string               `json:"factor"`
	Severity    valueobject.Severity `json:"severity"`
	Description string               `json:"description"`
	Impact      string               `json:"impact"`
}

// Recommendation is an improvement action suggested alongside a finding.
type Recommendation struct {
	Action      string               `json:"action"`
	Priority    valueobject.Priority `json:"priority"`
	Description string               `json:"description"`
	Timeline    string               `json:"timeline"`
}

// AlternativeOffer is a substitute loan product. Offers vary by type; fields
// that do not apply to a given type stay empty and are omitted from JSON.
type AlternativeOffer struct {
	Type         string           `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	Tenure       string           `json:"tenure,omitempty"`
	EMI          *decimal.Decimal `json:"emi,omitempty"`
	InterestRate string           `json:"interest_rate,omitempty"`
	Reason       string           `json:"reason,omitempty"`
	Purpose      string           `json:"purpose,omitempty"`
	Features     []string         `json:"features,omitempty"`
	MaxLTV       string           `json:"max_ltv,omitempty"`
	Improvement  string           `json:"improvement,omitempty"`
}

// Findings is one rule check's contribution to an analysis. A check builds
// its findings and returns them; the analyzer merges contributions in check
// order and never hands a check the accumulator.
type Findings struct {
	Reasons         []RejectionReason
	Recommendations []Recommendation
	Offers          []AlternativeOffer
}

// IsEmpty reports whether the check raised nothing at all.
func (f Findings) IsEmpty() bool {
	return len(f.Reasons) == 0 && len(f.Recommendations) == 0 && len(f.Offers) == 0
}
