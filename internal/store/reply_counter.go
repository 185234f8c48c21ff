package store

import (
	"context"

	"supportpulse.app/pulse/core/db"
)

type replyCounterStore struct {
	q db.DBTX
}

func newReplyCounterStore(q db.DBTX) ReplyCounterStore {
	return &replyCounterStore{q: q}
}

func (s *replyCounterStore) Increment(ctx context.Context, ticketID int64) (int, error) {
	var count int
	err := s.q.QueryRow(ctx,
		`INSERT INTO ticket_reply_counters (ticket_id, reply_count, updated_at)
		 VALUES ($1, 1, NOW())
		 ON CONFLICT (ticket_id) DO UPDATE
		 SET reply_count = ticket_reply_counters.reply_count + 1, updated_at = NOW()
		 RETURNING reply_count`,
		ticketID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
