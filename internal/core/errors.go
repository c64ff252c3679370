package core

// Diagnostic codes attached to dropped-event and failed-send log entries.
// None of these conditions is fatal: the hub logs, drops the event, and
// stays serviceable for every other connection.
const (
	// ErrCodeProtocolViolation marks an event for a connection with no
	// recorded open, e.g. a message racing in after a close.
	ErrCodeProtocolViolation = "protocol_violation"
	// ErrCodeMalformedPayload marks a command missing its required field
	// or carrying an unknown kind.
	ErrCodeMalformedPayload = "malformed_payload"
	// ErrCodeDeliveryFailure marks a single recipient's failed send during
	// a broadcast. The recipient stays in the room; only its own close
	// event removes it.
	ErrCodeDeliveryFailure = "delivery_failure"
)
