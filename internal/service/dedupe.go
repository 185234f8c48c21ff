package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"supportpulse.app/pulse/internal/classifier"
)

// dedupeKey derives an idempotency key from delivery content, so a redelivered
// body always maps to the same key. Replies use the upstream message id when known.
func dedupeKey(ev classifier.Event, body []byte) string {
	switch ev.Kind {
	case classifier.KindReply:
		if ev.Message != nil && ev.Message.ID != "" {
			return "msg-" + ev.Message.ID
		}
		return "msg-" + bodyHash(body)
	case classifier.KindClosure:
		return fmt.Sprintf("close-%d-%s", ev.Ticket.ID, bodyHash(body))
	case classifier.KindAssignment:
		return fmt.Sprintf("assign-%d-%s", ev.Ticket.ID, bodyHash(body))
	case classifier.KindSatisfaction:
		return fmt.Sprintf("csat-%d-%s", ev.Ticket.ID, bodyHash(body))
	default:
		return ""
	}
}

func bodyHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])[:16]
}
