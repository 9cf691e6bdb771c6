//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaflow/underwriting-service/internal/domain/event"
	"github.com/casaflow/underwriting-service/internal/infrastructure/messaging"
	pkgkafka "github.com/casaflow/underwriting-service/pkg/kafka"
	"github.com/casaflow/underwriting-service/pkg/testutil"
)

func readOneMessage(t *testing.T, brokers []string, topic string) kafkago.Message {
	t.Helper()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	t.Cleanup(func() { _ = reader.Close() })
	require.NoError(t, reader.SetOffset(kafkago.FirstOffset))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err, "expected a message on topic %s", topic)
	return msg
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestPublisher_RoutesEventsToTheirTopics(t *testing.T) {
	ctx := context.Background()

	kc := testutil.NewKafkaContainer(ctx, t)
	t.Cleanup(func() { kc.Cleanup(t) })

	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: kc.Brokers})
	t.Cleanup(func() { _ = producer.Close() })
	publisher := messaging.NewPublisher(producer)

	applicationID := uuid.NewString()
	score := 85
	submitted := event.NewApplicationSubmitted(applicationID, "Asha Verma", decimal.NewFromInt(1200000))
	assessed := event.NewApplicationAssessed(applicationID, true, &score, "LOW", "EXCELLENT")
	decided := event.NewApplicationDecided(applicationID, "APPROVED", &score, uuid.NewString())

	pubCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	require.NoError(t, publisher.Publish(pubCtx, submitted, assessed, decided))

	// Each lifecycle stage lands on its own topic, keyed by application ID.
	submittedMsg := readOneMessage(t, kc.Brokers, "underwriting.application.submitted")
	assert.Equal(t, applicationID, string(submittedMsg.Key))
	assert.Equal(t, "underwriting.application.submitted", headerValue(submittedMsg, "event_type"))
	assert.Equal(t, "Application", headerValue(submittedMsg, "aggregate_type"))
	_, err := uuid.Parse(headerValue(submittedMsg, "event_id"))
	assert.NoError(t, err, "event_id header should carry the event UUID")

	var submittedPayload struct {
		ApplicantName string          `json:"applicant_name"`
		LoanAmount    decimal.Decimal `json:"loan_amount"`
	}
	require.NoError(t, json.Unmarshal(submittedMsg.Value, &submittedPayload))
	assert.Equal(t, "Asha Verma", submittedPayload.ApplicantName)
	assert.True(t, decimal.NewFromInt(1200000).Equal(submittedPayload.LoanAmount))

	assessedMsg := readOneMessage(t, kc.Brokers, "underwriting.application.assessed")
	assert.Equal(t, applicationID, string(assessedMsg.Key))
	var assessedPayload struct {
		Success   bool `json:"success"`
		RiskScore *int `json:"risk_score"`
	}
	require.NoError(t, json.Unmarshal(assessedMsg.Value, &assessedPayload))
	assert.True(t, assessedPayload.Success)
	require.NotNil(t, assessedPayload.RiskScore)
	assert.Equal(t, 85, *assessedPayload.RiskScore)

	decidedMsg := readOneMessage(t, kc.Brokers, "underwriting.application.decided")
	assert.Equal(t, applicationID, string(decidedMsg.Key))
	var decidedPayload struct {
		Decision string `json:"decision"`
	}
	require.NoError(t, json.Unmarshal(decidedMsg.Value, &decidedPayload))
	assert.Equal(t, "APPROVED", decidedPayload.Decision)
}
