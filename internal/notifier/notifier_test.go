package notifier

import (
	"context"
	"errors"
	"testing"

	"breachwatch/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records deliveries and fails on the configured subjects.
type fakeTransport struct {
	delivered []models.EmailMessage
	failOn    map[string]error
}

func (f *fakeTransport) Deliver(_ context.Context, msg models.EmailMessage) error {
	if err, ok := f.failOn[msg.Subject]; ok {
		return err
	}
	f.delivered = append(f.delivered, msg)
	return nil
}

func TestEmailNotifier_SendAll_AllSucceed(t *testing.T) {
	transport := &fakeTransport{}
	n := NewEmailNotifierWithTransport(transport, zerolog.Nop())

	msgs := []models.EmailMessage{
		{Subject: "part 1", Body: "a"},
		{Subject: "part 2", Body: "b"},
	}

	result := n.SendAll(context.Background(), msgs)

	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 2, result.Sent)
	assert.NoError(t, result.Err())
	assert.Len(t, transport.delivered, 2)
}

func TestEmailNotifier_SendAll_ContinuesAfterFailure(t *testing.T) {
	transport := &fakeTransport{
		failOn: map[string]error{"part 2": errors.New("smtp rejected")},
	}
	n := NewEmailNotifierWithTransport(transport, zerolog.Nop())

	msgs := []models.EmailMessage{
		{Subject: "part 1"},
		{Subject: "part 2"},
		{Subject: "part 3"},
	}

	result := n.SendAll(context.Background(), msgs)

	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Sent)
	require.Len(t, result.Errors, 1)

	// Chunks after the failed one were still attempted and delivered.
	require.Len(t, transport.delivered, 2)
	assert.Equal(t, "part 1", transport.delivered[0].Subject)
	assert.Equal(t, "part 3", transport.delivered[1].Subject)

	err := result.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 emails failed")
	assert.Contains(t, err.Error(), "smtp rejected")
}

func TestEmailNotifier_SendAll_Empty(t *testing.T) {
	n := NewEmailNotifierWithTransport(&fakeTransport{}, zerolog.Nop())

	result := n.SendAll(context.Background(), nil)

	assert.Equal(t, 0, result.Attempted)
	assert.Equal(t, 0, result.Sent)
	assert.NoError(t, result.Err())
}

func TestDeliveryResult_ErrAggregates(t *testing.T) {
	result := DeliveryResult{
		Attempted: 3,
		Sent:      1,
		Errors: []error{
			errors.New("first failure"),
			errors.New("second failure"),
		},
	}

	err := result.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 emails failed")
	assert.Contains(t, err.Error(), "first failure")
	assert.Contains(t, err.Error(), "second failure")
}
