package service

// Messenger builds deep links into the external chat channel orders are
// handed off to. The handoff is a pure UI side effect: opening the link is
// the customer's browser's job, and a failed handoff never rolls back an
// already-persisted order.
type Messenger interface {
	// OrderLink returns a deep link that opens the chat with the given
	// message pre-filled.
	OrderLink(message string) string

	// ContactLink returns a deep link that opens a plain chat with the
	// pharmacy.
	ContactLink() string
}
