package model

// AgentStats summarizes one agent's replies.
type AgentStats struct {
	Name                string   `json:"name"`
	Replies             int      `json:"replies"`
	FirstResponses      int      `json:"first_responses"`
	AvgFirstResponseMin *float64 `json:"avg_first_response_min"`
	MacroUses           int      `json:"macro_uses"`
	MacroRate           int      `json:"macro_rate"`
	AvgCSAT             *float64 `json:"avg_csat"`
	Tickets             int      `json:"tickets"`
	AvgTouches          *float64 `json:"avg_touches"`
}

type BehaviorSummary struct {
	Agents              []AgentStats `json:"agents"`
	TotalReplies        int          `json:"total_replies"`
	ActiveAgents        int          `json:"active_agents"`
	MacroReplies        int          `json:"macro_replies"`
	MacroRate           int          `json:"macro_rate"`
	AvgFirstResponseMin *float64     `json:"avg_first_response_min"`
}
