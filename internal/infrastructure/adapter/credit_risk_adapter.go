package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/casaflow/underwriting-service/internal/domain/model"
	"github.com/casaflow/underwriting-service/internal/domain/port"
	"github.com/casaflow/underwriting-service/internal/domain/valueobject"
)

// Compile-time interface check.
var _ port.CreditRiskClient = (*CreditRiskAdapter)(nil)

// CreditRiskConfig holds configuration for the credit-risk API adapter.
type CreditRiskConfig struct {
	// BaseURL is the base URL of the credit-risk API.
	BaseURL string
	// APIKey is the bearer credential for the API; empty sends no auth header.
	APIKey string
	// TimeoutSeconds is the HTTP client timeout.
	TimeoutSeconds int
	// MaxRetries is the maximum number of retry attempts on failures.
	MaxRetries int
	// RetryBackoffMs is the base backoff duration in milliseconds between retries.
	RetryBackoffMs int
}

// DefaultCreditRiskConfig returns sensible defaults for development.
func DefaultCreditRiskConfig() CreditRiskConfig {
	return CreditRiskConfig{
		BaseURL:        "https://risk.casaflow.example.com",
		TimeoutSeconds: 10,
		MaxRetries:     3,
		RetryBackoffMs: 200,
	}
}

// HTTPClient is the transport used to reach the credit-risk API.
// *http.Client satisfies it; tests substitute their own.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CreditRiskAdapter calls the external credit-risk API over HTTP with retry
// logic. It implements port.CreditRiskClient. Callers treat any returned
// error as a failed assessment rather than a fatal condition.
type CreditRiskAdapter struct {
	config CreditRiskConfig
	client HTTPClient
}

// NewCreditRiskAdapter creates a new adapter with the given configuration.
// A nil client falls back to a default http.Client with the configured timeout.
func NewCreditRiskAdapter(config CreditRiskConfig, client HTTPClient) *CreditRiskAdapter {
	if client == nil {
		client = &http.Client{Timeout: time.Duration(config.TimeoutSeconds) * time.Second}
	}
	return &CreditRiskAdapter{
		config: config,
		client: client,
	}
}

// riskAssessmentRequest is the JSON payload sent to the credit-risk API.
type riskAssessmentRequest struct {
	ApplicationID     string          `json:"application_id"`
	ApplicantName     string          `json:"applicant_name"`
	CompanyName       string          `json:"company_name"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	ExistingEMI       decimal.Decimal `json:"existing_emi"`
	LoanAmount        decimal.Decimal `json:"loan_amount"`
	PropertyValuation decimal.Decimal `json:"property_valuation"`
	CibilScore        *int            `json:"cibil_score,omitempty"`
	IsNonAgricultural bool            `json:"is_non_agricultural"`
	IsRented          bool            `json:"is_rented"`
}

// riskAssessmentResponse is the JSON payload returned by the credit-risk API.
type riskAssessmentResponse struct {
	RiskScore    int    `json:"risk_score"`
	RiskLevel    string `json:"risk_level"`
	RiskCategory string `json:"risk_category"`
}

// Assess requests a credit-risk assessment for the application, retrying
// with exponential backoff on failures. It implements port.CreditRiskClient.
func (a *CreditRiskAdapter) Assess(ctx context.Context, app model.Application) (model.CreditRiskResult, error) {
	profile := app.Profile()
	payload, err := json.Marshal(riskAssessmentRequest{
		ApplicationID:     app.ID().String(),
		ApplicantName:     profile.FullName(),
		CompanyName:       profile.CompanyName,
		MonthlySalary:     profile.MonthlySalary,
		ExistingEMI:       profile.ExistingEMI,
		LoanAmount:        profile.LoanAmount,
		PropertyValuation: profile.PropertyValuation,
		CibilScore:        profile.CibilScore,
		IsNonAgricultural: profile.IsNonAgricultural,
		IsRented:          profile.IsRented,
	})
	if err != nil {
		return model.CreditRiskResult{}, fmt.Errorf("encode assessment request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= a.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter.
			backoff := time.Duration(a.config.RetryBackoffMs) * time.Millisecond * (1 << uint(attempt-1))
			jitter := time.Duration(rand.Int63n(int64(backoff)/2 + 1))
			select {
			case <-ctx.Done():
				return model.CreditRiskResult{}, ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}

		result, err := a.assessOnce(ctx, payload)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	return model.CreditRiskResult{}, fmt.Errorf("exhausted %d retries: %w", a.config.MaxRetries, lastErr)
}

func (a *CreditRiskAdapter) assessOnce(ctx context.Context, payload []byte) (model.CreditRiskResult, error) {
	url := strings.TrimRight(a.config.BaseURL, "/") + "/v1/assessments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return model.CreditRiskResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return model.CreditRiskResult{}, fmt.Errorf("credit risk request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.CreditRiskResult{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.CreditRiskResult{}, fmt.Errorf("credit risk API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed riskAssessmentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.CreditRiskResult{}, fmt.Errorf("parse response: %w", err)
	}

	level, err := valueobject.RiskLevelFromString(parsed.RiskLevel)
	if err != nil {
		return model.CreditRiskResult{}, fmt.Errorf("parse response: %w", err)
	}

	return model.CreditRiskResult{
		Success:      true,
		RiskScore:    parsed.RiskScore,
		RiskLevel:    level,
		RiskCategory: parsed.RiskCategory,
	}, nil
}
