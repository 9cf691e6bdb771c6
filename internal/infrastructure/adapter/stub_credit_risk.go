package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// Compile-time interface check.
var _ port.CreditRiskClient = (*StubCreditRiskClient)(nil)

// StubCreditRiskClient is a development/test adapter that returns a
// deterministic assessment derived from the application ID.
// It implements port.CreditRiskClient.
type StubCreditRiskClient struct{}

// NewStubCreditRiskClient creates a new stub adapter.
func NewStubCreditRiskClient() *StubCreditRiskClient {
	return &StubCreditRiskClient{}
}

// Assess returns a deterministic risk score between 30 and 95 based on a
// hash of the application ID, with level and category derived from the score
// bands the decision pipeline uses. This allows repeatable test scenarios.
func (c *StubCreditRiskClient) Assess(_ context.Context, app model.Application) (model.CreditRiskResult, error) {
	h := sha256.Sum256([]byte(app.ID().String()))
	num := binary.BigEndian.Uint32(h[:4])
	score := 30 + int(num%66) // range [30, 95]

	level := valueobject.RiskLevelHigh
	switch {
	case score >= 70:
		level = valueobject.RiskLevelLow
	case score >= 50:
		level = valueobject.RiskLevelMedium
	}

	category := model.RiskCategoryPoor
	switch {
	case score >= 80:
		category = model.RiskCategoryExcellent
	case score >= 65:
		category = model.RiskCategoryGood
	case score >= 45:
		category = model.RiskCategoryFair
	}

	return model.CreditRiskResult{
		Success:      true,
		RiskScore:    score,
		RiskLevel:    level,
		RiskCategory: category,
	}, nil
}
