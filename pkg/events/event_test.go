package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := NewBaseEvent("underwriting.application.decided", "app-123", "Application")
	after := time.Now().UTC()

	assert.NotEqual(t, uuid.Nil, evt.EventID())
	assert.Equal(t, "underwriting.application.decided", evt.EventType())
	assert.Equal(t, "app-123", evt.AggregateID())
	assert.Equal(t, "Application", evt.AggregateType())
	assert.False(t, evt.OccurredAt().Before(before))
	assert.False(t, evt.OccurredAt().After(after))
}

func TestCollector(t *testing.T) {
	var c Collector

	require.Empty(t, c.Events())

	first := NewBaseEvent("underwriting.application.assessed", "app-1", "Application")
	second := NewBaseEvent("underwriting.application.decided", "app-1", "Application")
	c.Record(first)
	c.Record(second)

	events := c.Events()
	require.Len(t, events, 2)
	assert.Equal(t, first.EventID(), events[0].EventID())

	cleared := c.ClearEvents()
	assert.Len(t, cleared, 2)
	assert.Empty(t, c.Events())
}
