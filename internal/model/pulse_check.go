package model

import (
	"time"

	"github.com/google/uuid"
)

// PulseCheck is a weekly snapshot of helpdesk health shown on the dashboard.
type PulseCheck struct {
	CreatedAt        time.Time      `json:"created_at"`
	DateRangeStart   time.Time      `json:"date_range_start"`
	DateRangeEnd     time.Time      `json:"date_range_end"`
	Workload         map[string]int `json:"workload"`
	Tags             map[string]int `json:"tags"`
	TopQuestions     []TopQuestion  `json:"top_questions"`
	OpsNotes         []string       `json:"ops_notes"`
	ResolutionAvgMin float64        `json:"resolution_avg_min"`
	ResolutionP50Min float64        `json:"resolution_p50_min"`
	ResolutionP90Min float64        `json:"resolution_p90_min"`
	SpamPct          float64        `json:"spam_pct"`
	UnassignedPct    float64        `json:"unassigned_pct"`
	TicketCount      int            `json:"ticket_count"`
	OpenCount        int            `json:"open_count"`
	ClosedCount      int            `json:"closed_count"`
	TicketsAnalyzed  int            `json:"tickets_analyzed"`
	ChannelEmail     int            `json:"channel_email"`
	ChannelChat      int            `json:"channel_chat"`
	ID               uuid.UUID      `json:"id"`
}

type TopQuestion struct {
	Question  string  `json:"question"`
	Count     int     `json:"count"`
	TicketIDs []int64 `json:"ticket_ids"`
}
