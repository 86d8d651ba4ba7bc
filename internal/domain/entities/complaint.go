package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ComplaintStatus is the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "pending"
	ComplaintStatusResolved ComplaintStatus = "resolved"
)

// NotifyPreference indicates whether the reporter wants progress updates
type NotifyPreference string

const (
	NotifyYes NotifyPreference = "yes"
	NotifyNo  NotifyPreference = "no"
)

// ParseNotifyPreference normalizes a yes/no preference value
func ParseNotifyPreference(s string) (NotifyPreference, error) {
	switch NotifyPreference(s) {
	case NotifyYes, NotifyNo:
		return NotifyPreference(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPreference, s)
	}
}

// Complaint represents a lodged user complaint
type Complaint struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date           string           `json:"date" gorm:"type:varchar(10);not null;index:idx_complaints_date"`
	Text           string           `json:"complaint_text" gorm:"column:text;type:text;not null"`
	Topic1         string           `json:"complaint_topic_1" gorm:"column:topic_1;type:varchar(100);not null"`
	Topic2         *string          `json:"complaint_topic_2,omitempty" gorm:"column:topic_2;type:varchar(100)"`
	ReceiveUpdates NotifyPreference `json:"receive_updates" gorm:"type:varchar(3);not null;default:'yes'"`
	Status         ComplaintStatus  `json:"status" gorm:"type:varchar(10);not null;default:'pending'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name used by GORM
func (Complaint) TableName() string {
	return "complaints"
}

// Validate checks the insert precondition: all required fields present and legal.
// A complaint violating this is never persisted.
func (c *Complaint) Validate() error {
	if c.Date == "" {
		return fmt.Errorf("%w: date", ErrMissingRequiredFields)
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, c.Date)
	}
	if c.Text == "" {
		return fmt.Errorf("%w: complaint_text", ErrMissingRequiredFields)
	}
	if c.Topic1 == "" {
		return fmt.Errorf("%w: complaint_topic_1", ErrMissingRequiredFields)
	}
	if c.ReceiveUpdates != NotifyYes && c.ReceiveUpdates != NotifyNo {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, c.ReceiveUpdates)
	}
	if c.Status != ComplaintStatusPending && c.Status != ComplaintStatusResolved {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}
	return nil
}

// PrimaryTopic returns the first topic label
func (c *Complaint) PrimaryTopic() string {
	return c.Topic1
}

// Topics returns the one or two topic labels in order
func (c *Complaint) Topics() []string {
	topics := []string{c.Topic1}
	if c.Topic2 != nil && *c.Topic2 != "" {
		topics = append(topics, *c.Topic2)
	}
	return topics
}
