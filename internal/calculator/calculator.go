// Package calculator derives reply latency and resolution metrics from
// already-persisted reply counts.
package calculator

import (
	"time"

	"supportpulse.app/pulse/internal/classifier"
)

type ReplyMetrics struct {
	IsFirstReply    bool
	MessagePosition int
	// FirstResponseMinutes is set only on the first reply of a ticket and only
	// when both timestamps are known.
	FirstResponseMinutes *float64
}

// ComputeReply derives metrics for a reply given how many replies were persisted
// for the ticket before it.
func ComputeReply(priorReplies int, ticketCreated, messageCreated *time.Time) ReplyMetrics {
	if priorReplies < 0 {
		priorReplies = 0
	}
	m := ReplyMetrics{
		IsFirstReply:    priorReplies == 0,
		MessagePosition: priorReplies + 1,
	}
	if m.IsFirstReply && ticketCreated != nil && messageCreated != nil {
		minutes := classifier.Round1(classifier.ElapsedMinutes(*ticketCreated, *messageCreated))
		m.FirstResponseMinutes = &minutes
	}
	return m
}

// TouchesToResolution is the reply count snapshot taken at closure.
func TouchesToResolution(replyCount int) int {
	if replyCount < 0 {
		return 0
	}
	return replyCount
}
