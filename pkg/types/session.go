package types

import "time"

// Message sender values.
const (
	SenderUser      = "user"
	SenderTherapist = "therapist"
)

// ValidSender reports whether sender is a recognized message sender.
func ValidSender(sender string) bool {
	return sender == SenderUser || sender == SenderTherapist
}

// TherapySession is a chat-like session log. Messages live in their own
// collection keyed by SessionID; deleting a session cascade-deletes its
// messages.
type TherapySession struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Exercises []string  `json:"exercises,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Mood      int       `json:"mood,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TherapyMessage is a single message within a TherapySession.
type TherapyMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Type      string    `json:"type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
