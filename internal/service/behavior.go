package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"supportpulse.app/pulse/internal/model"
	"supportpulse.app/pulse/internal/store"
)

const (
	DefaultBehaviorLimit = 500
	MaxBehaviorLimit     = 5000
)

type BehaviorService interface {
	ListRecent(ctx context.Context, limit int32) ([]model.BehaviorEvent, error)
	// Summary computes per-agent statistics over the newest limit records.
	Summary(ctx context.Context, limit int32) (*model.BehaviorSummary, error)
}

type behaviorService struct {
	behaviorLogs store.BehaviorLogStore
}

func NewBehaviorService(behaviorLogs store.BehaviorLogStore) BehaviorService {
	return &behaviorService{behaviorLogs: behaviorLogs}
}

func (s *behaviorService) ListRecent(ctx context.Context, limit int32) ([]model.BehaviorEvent, error) {
	events, err := s.behaviorLogs.ListRecent(ctx, clampLimit(limit, DefaultBehaviorLimit, MaxBehaviorLimit))
	if err != nil {
		return nil, fmt.Errorf("listing behavior events: %w", err)
	}
	return events, nil
}

func (s *behaviorService) Summary(ctx context.Context, limit int32) (*model.BehaviorSummary, error) {
	events, err := s.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	summary := SummarizeBehavior(events)
	return &summary, nil
}

type agentAccumulator struct {
	stats          model.AgentStats
	firstRespSum   float64
	csatScores     []int
	touchSamples   []int
	distinctTicket map[int64]struct{}
}

// SummarizeBehavior aggregates reply records by agent name. Records without an
// agent name count toward the totals but not toward any agent. Agents are sorted
// by reply count, ties keeping first-seen order.
func SummarizeBehavior(events []model.BehaviorEvent) model.BehaviorSummary {
	var (
		order          []string
		byName         = map[string]*agentAccumulator{}
		summary        model.BehaviorSummary
		firstRespTotal float64
		firstRespCount int
	)

	for i := range events {
		e := &events[i]
		if !e.IsReply() {
			continue
		}

		summary.TotalReplies++
		if e.IsMacro != nil && *e.IsMacro {
			summary.MacroReplies++
		}
		if e.TimeToFirstResponseMin != nil {
			firstRespTotal += *e.TimeToFirstResponseMin
			firstRespCount++
		}

		if e.AgentName == nil || *e.AgentName == "" {
			continue
		}
		acc, ok := byName[*e.AgentName]
		if !ok {
			acc = &agentAccumulator{
				stats:          model.AgentStats{Name: *e.AgentName},
				distinctTicket: map[int64]struct{}{},
			}
			byName[*e.AgentName] = acc
			order = append(order, *e.AgentName)
		}

		acc.stats.Replies++
		acc.distinctTicket[e.TicketID] = struct{}{}
		if e.TimeToFirstResponseMin != nil {
			acc.stats.FirstResponses++
			acc.firstRespSum += *e.TimeToFirstResponseMin
		}
		if e.IsMacro != nil && *e.IsMacro {
			acc.stats.MacroUses++
		}
		if e.CSATScore != nil {
			acc.csatScores = append(acc.csatScores, *e.CSATScore)
		}
		if e.TouchesToResolution != nil {
			acc.touchSamples = append(acc.touchSamples, *e.TouchesToResolution)
		}
	}

	summary.Agents = make([]model.AgentStats, 0, len(order))
	for _, name := range order {
		acc := byName[name]
		st := acc.stats
		if st.FirstResponses > 0 {
			avg := acc.firstRespSum / float64(st.FirstResponses)
			st.AvgFirstResponseMin = &avg
		}
		st.MacroRate = percent(st.MacroUses, st.Replies)
		st.AvgCSAT = mean(acc.csatScores)
		st.AvgTouches = mean(acc.touchSamples)
		st.Tickets = len(acc.distinctTicket)
		summary.Agents = append(summary.Agents, st)
	}
	sort.SliceStable(summary.Agents, func(i, j int) bool {
		return summary.Agents[i].Replies > summary.Agents[j].Replies
	})

	summary.ActiveAgents = len(summary.Agents)
	summary.MacroRate = percent(summary.MacroReplies, summary.TotalReplies)
	if firstRespCount > 0 {
		avg := firstRespTotal / float64(firstRespCount)
		summary.AvgFirstResponseMin = &avg
	}
	return summary
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func mean(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	avg := float64(sum) / float64(len(values))
	return &avg
}
