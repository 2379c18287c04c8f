package entity

type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

func (d Decision) Valid() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

// NotificationMessage lives at Notifications/{To}/messages/{ID}.
// Timestamp is epoch milliseconds at dispatch time.
type NotificationMessage struct {
	ID        string   `json:"id" firestore:"-"`
	From      string   `json:"from" firestore:"from"`
	To        string   `json:"to" firestore:"to"`
	Type      Decision `json:"type" firestore:"type"`
	Timestamp int64    `json:"timestamp" firestore:"timestamp"`
}
