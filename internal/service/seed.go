package service

import (
	"time"

	"supportpulse.app/pulse/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedPulseChecks returns three consecutive weekly snapshots for a fresh dashboard.
func seedPulseChecks() []model.PulseCheck {
	return []model.PulseCheck{
		{
			CreatedAt:        time.Date(2026, time.February, 10, 10, 0, 0, 0, time.UTC),
			DateRangeStart:   day(2026, time.February, 3),
			DateRangeEnd:     day(2026, time.February, 9),
			TicketCount:      142,
			OpenCount:        38,
			ClosedCount:      104,
			ResolutionAvgMin: 287,
			ResolutionP50Min: 145,
			ResolutionP90Min: 890,
			TicketsAnalyzed:  104,
			SpamPct:          18.3,
			UnassignedPct:    35.2,
			ChannelEmail:     89,
			ChannelChat:      53,
			Workload:         map[string]int{"Danni-Jean": 42, "Spencer": 28, "Gabe": 15, "Tyler": 7, "Unassigned": 50},
			TopQuestions: []model.TopQuestion{
				{Question: "Order status inquiry", Count: 23, TicketIDs: []int64{1001, 1002, 1003}},
				{Question: "Shipping delay", Count: 18, TicketIDs: []int64{1004, 1005}},
				{Question: "Return/refund request", Count: 15, TicketIDs: []int64{1006, 1007}},
				{Question: "PC build configuration", Count: 12, TicketIDs: []int64{1008, 1009}},
				{Question: "Warranty claim", Count: 9, TicketIDs: []int64{1010}},
				{Question: "Payment issue", Count: 7, TicketIDs: []int64{1011}},
			},
			Tags: map[string]int{"order-status": 23, "shipping": 18, "returns": 15, "custom-build": 12, "warranty": 9, "billing": 7},
			OpsNotes: []string{
				"WARNING: Unassigned ticket rate at 35.2% - approaching danger zone of 40%",
				"Shipping delay tickets spiked due to carrier issues in Northeast region",
				"Danni-Jean handling 40% of all assigned tickets - potential burnout risk",
			},
		},
		{
			CreatedAt:        time.Date(2026, time.February, 17, 10, 0, 0, 0, time.UTC),
			DateRangeStart:   day(2026, time.February, 10),
			DateRangeEnd:     day(2026, time.February, 16),
			TicketCount:      156,
			OpenCount:        42,
			ClosedCount:      114,
			ResolutionAvgMin: 312,
			ResolutionP50Min: 168,
			ResolutionP90Min: 945,
			TicketsAnalyzed:  114,
			SpamPct:          22.4,
			UnassignedPct:    41.8,
			ChannelEmail:     95,
			ChannelChat:      61,
			Workload:         map[string]int{"Danni-Jean": 38, "Spencer": 31, "Gabe": 18, "Tyler": 4, "Alex": 3, "Unassigned": 62},
			TopQuestions: []model.TopQuestion{
				{Question: "Order status inquiry", Count: 28, TicketIDs: []int64{2001, 2002, 2003, 2004}},
				{Question: "Shipping delay", Count: 22, TicketIDs: []int64{2005, 2006}},
				{Question: "Return/refund request", Count: 17, TicketIDs: []int64{2007, 2008}},
				{Question: "PC build configuration", Count: 14, TicketIDs: []int64{2009}},
				{Question: "Warranty claim", Count: 11, TicketIDs: []int64{2010}},
				{Question: "Component compatibility", Count: 8, TicketIDs: []int64{2011}},
			},
			Tags: map[string]int{"order-status": 28, "shipping": 22, "returns": 17, "custom-build": 14, "warranty": 11, "compatibility": 8},
			OpsNotes: []string{
				"CRITICAL: Unassigned rate crossed 40% threshold at 41.8% - immediate action needed",
				"WARNING: Spam rate increased to 22.4% - review auto-filter rules",
				"Spencer picked up extra load this week (+3 tickets) but Tyler dropped to 4",
				"New agent Alex onboarding - assigned 3 tickets as ramp-up",
			},
		},
		{
			CreatedAt:        time.Date(2026, time.February, 24, 10, 0, 0, 0, time.UTC),
			DateRangeStart:   day(2026, time.February, 17),
			DateRangeEnd:     day(2026, time.February, 23),
			TicketCount:      138,
			OpenCount:        31,
			ClosedCount:      107,
			ResolutionAvgMin: 245,
			ResolutionP50Min: 122,
			ResolutionP90Min: 780,
			TicketsAnalyzed:  107,
			SpamPct:          19.6,
			UnassignedPct:    28.4,
			ChannelEmail:     82,
			ChannelChat:      56,
			Workload:         map[string]int{"Danni-Jean": 35, "Spencer": 30, "Gabe": 20, "Tyler": 10, "Alex": 8, "Unassigned": 35},
			TopQuestions: []model.TopQuestion{
				{Question: "Order status inquiry", Count: 21, TicketIDs: []int64{3001, 3002}},
				{Question: "Return/refund request", Count: 19, TicketIDs: []int64{3003, 3004}},
				{Question: "Shipping delay", Count: 14, TicketIDs: []int64{3005}},
				{Question: "PC build configuration", Count: 16, TicketIDs: []int64{3006, 3007}},
				{Question: "Warranty claim", Count: 8, TicketIDs: []int64{3008}},
				{Question: "Component compatibility", Count: 10, TicketIDs: []int64{3009}},
			},
			Tags: map[string]int{"order-status": 21, "returns": 19, "custom-build": 16, "shipping": 14, "compatibility": 10, "warranty": 8},
			OpsNotes: []string{
				"Unassigned rate improved from 41.8% to 28.4% after redistributing workload",
				"Spam rate decreased to 19.6% - new filter rules working",
				"Alex ramping up well - doubled ticket count from last week",
				"Tyler back to normal capacity with 10 tickets handled",
			},
		},
	}
}
