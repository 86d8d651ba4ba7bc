package chat

import (
	"fmt"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
)

// apologyReply is sent whenever handling fails for any reason. Callers never
// see raw errors; they are logged server-side.
const apologyReply = "Oh ohh... I can't respond right now. Please try again later 🤧😷"

func composeComplaintLodged(c *entities.Complaint) string {
	return fmt.Sprintf(
		"Thanks for letting me know — I've logged your complaint about %s. "+
			"Your complaint ID is %s. Keep it handy to check on progress anytime.",
		c.PrimaryTopic(), c.ID,
	)
}

func composeStatusReply(c *entities.Complaint) string {
	switch c.Status {
	case entities.ComplaintStatusResolved:
		return fmt.Sprintf(
			"Good news! Your complaint about %s (ID %s) has been resolved. "+
				"Let me know if anything still isn't right.",
			c.PrimaryTopic(), c.ID,
		)
	default:
		return fmt.Sprintf(
			"Your complaint about %s (ID %s) is still pending. "+
				"The team is on it — I'll keep you posted if you've opted in to updates.",
			c.PrimaryTopic(), c.ID,
		)
	}
}

func composePreferenceReply(c *entities.Complaint) string {
	if c.ReceiveUpdates == entities.NotifyYes {
		return fmt.Sprintf(
			"Done — you'll now receive updates about your complaint regarding %s (ID %s).",
			c.PrimaryTopic(), c.ID,
		)
	}
	return fmt.Sprintf(
		"Done — you won't receive further updates about your complaint regarding %s (ID %s). "+
			"You can turn them back on anytime.",
		c.PrimaryTopic(), c.ID,
	)
}

func composeInvalidIDReply() string {
	return "Hmm, that doesn't look like a valid complaint ID. " +
		"It should look like the ID you received when you lodged the complaint — could you double-check it?"
}

func composeNotFoundReply() string {
	return "I couldn't find a complaint with that ID. " +
		"Could you double-check it? It should match the ID you received when you lodged the complaint."
}

func composeMissingIDReply() string {
	return "Sure — I just need your complaint ID to look that up. " +
		"It's the ID you received when you lodged the complaint."
}

func composeNotAComplaintReply() string {
	return "I couldn't quite pick out a complaint from that. " +
		"Could you describe the problem you'd like me to log? A sentence or two is plenty."
}
