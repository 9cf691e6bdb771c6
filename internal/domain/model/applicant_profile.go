package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ApplicantProfile is the read-only snapshot of the fields the rule engine
// evaluates. Absent numeric fields are zero; a nil CibilScore means the
// bureau score could not be obtained.
type ApplicantProfile struct {
	FirstName   string
	LastName    string
	CompanyName string

	MonthlySalary     decimal.Decimal
	ExistingEMI       decimal.Decimal
	LoanAmount        decimal.Decimal
	PropertyValuation decimal.Decimal

	CibilScore *int

	IsNonAgricultural bool
	IsRented          bool
}

// FullName joins the applicant's first and last name.
func (p ApplicantProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// CibilUnverifiable reports whether the credit history cannot be assessed:
// no score at all, or one too low to be a real bureau score.
func (p ApplicantProfile) CibilUnverifiable() bool {
	return p.CibilScore == nil || *p.CibilScore < 10
}

// CibilOrZero returns the CIBIL score, treating a missing score as zero.
// Scoring and offer thresholds use this; the credit profile check does not.
func (p ApplicantProfile) CibilOrZero() int {
	if p.CibilScore == nil {
		return 0
	}
	return *p.CibilScore
}
