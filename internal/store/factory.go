package store

import (
	"supportpulse.app/pulse/core/db"
)

type Stores struct {
	q db.DBTX
}

func NewStores(q db.DBTX) *Stores {
	return &Stores{q: q}
}

func (s *Stores) BehaviorLogs() BehaviorLogStore {
	return newBehaviorLogStore(s.q)
}

func (s *Stores) WebhookDeliveries() WebhookDeliveryStore {
	return newWebhookDeliveryStore(s.q)
}

func (s *Stores) ReplyCounters() ReplyCounterStore {
	return newReplyCounterStore(s.q)
}

func (s *Stores) PulseChecks() PulseCheckStore {
	return newPulseCheckStore(s.q)
}
