package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validComplaint() *Complaint {
	topic2 := "heating"
	return &Complaint{
		Date:           "2026-09-01",
		Text:           "The heater in block 4 has been broken for a week",
		Topic1:         "maintenance",
		Topic2:         &topic2,
		ReceiveUpdates: NotifyYes,
		Status:         ComplaintStatusPending,
	}
}

func TestComplaintValidate(t *testing.T) {
	require.NoError(t, validComplaint().Validate())
}

func TestComplaintValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Complaint)
		want   error
	}{
		{"missing date", func(c *Complaint) { c.Date = "" }, ErrMissingRequiredFields},
		{"bad date format", func(c *Complaint) { c.Date = "01-09-2026" }, ErrInvalidDate},
		{"missing text", func(c *Complaint) { c.Text = "" }, ErrMissingRequiredFields},
		{"missing topic", func(c *Complaint) { c.Topic1 = "" }, ErrMissingRequiredFields},
		{"bad preference", func(c *Complaint) { c.ReceiveUpdates = "maybe" }, ErrInvalidPreference},
		{"bad status", func(c *Complaint) { c.Status = "open" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validComplaint()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestComplaintTopics(t *testing.T) {
	c := validComplaint()
	assert.Equal(t, []string{"maintenance", "heating"}, c.Topics())
	assert.Equal(t, "maintenance", c.PrimaryTopic())

	c.Topic2 = nil
	assert.Equal(t, []string{"maintenance"}, c.Topics())
}

func TestParseNotifyPreference(t *testing.T) {
	pref, err := ParseNotifyPreference("yes")
	require.NoError(t, err)
	assert.Equal(t, NotifyYes, pref)

	pref, err = ParseNotifyPreference("no")
	require.NoError(t, err)
	assert.Equal(t, NotifyNo, pref)

	_, err = ParseNotifyPreference("nope")
	assert.ErrorIs(t, err, ErrInvalidPreference)
}
