package entities

import "strings"

// Intent is the closed-set classification of an inbound chat message. It is
// transient: produced per message and consumed immediately by the router.
type Intent string

const (
	IntentComplaint           Intent = "complaint"
	IntentGetComplaintStatus  Intent = "get_complaint_status"
	IntentChangeNotifyPref    Intent = "change_notification_preference"
	IntentRegularConversation Intent = "regular_conversation"
)

// String returns the wire label of the intent
func (i Intent) String() string {
	return string(i)
}

// ParseIntent maps completion-service output onto the closed intent set.
// Labels are normalized before matching because models occasionally add
// quotes, fences or trailing punctuation. Anything that still does not match
// falls back to IntentRegularConversation rather than failing the message.
func ParseIntent(s string) Intent {
	label := strings.ToLower(strings.TrimSpace(s))
	label = strings.Trim(label, "`'\".")
	label = strings.TrimSpace(label)

	switch Intent(label) {
	case IntentComplaint, IntentGetComplaintStatus, IntentChangeNotifyPref, IntentRegularConversation:
		return Intent(label)
	default:
		return IntentRegularConversation
	}
}
