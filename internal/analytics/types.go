package analytics

import (
	"fmt"
	"strings"
)

// Entity is a named role or user.
type Entity struct {
	Name string `json:"name"`
}

// EvolutionMetric summarizes organizational activity over one phase.
type EvolutionMetric struct {
	Phase             string   `json:"phase"`
	ActiveUsers       int      `json:"active_users"`
	ActiveRoles       int      `json:"active_roles"`
	TotalInteractions int      `json:"total_interactions"`
	TopRoles          []string `json:"top_roles"`
}

// RoleInteraction is the weighted interaction count between two roles.
type RoleInteraction struct {
	RoleA  string  `json:"role_a"`
	RoleB  string  `json:"role_b"`
	Weight float64 `json:"weight"`
}

// UserCollaboration is the weighted collaboration between two users in a month.
type UserCollaboration struct {
	UserA  string  `json:"user_a"`
	RoleA  string  `json:"role_a"`
	UserB  string  `json:"user_b"`
	RoleB  string  `json:"role_b"`
	Weight float64 `json:"weight"`
	Month  string  `json:"month"`
}

// BPMNNode is one activity or gateway of the mined process.
type BPMNNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// BPMNEdge is a directed sequence flow between two nodes.
type BPMNEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// BPMNData is the mined process graph.
type BPMNData struct {
	Nodes []BPMNNode `json:"nodes"`
	Edges []BPMNEdge `json:"edges"`
}

// MonthlyInteraction is the interaction total for one month.
type MonthlyInteraction struct {
	Month             string `json:"month"`
	TotalInteractions int    `json:"total_interactions"`
}

// OvertimeRisk counts how often a person worked outside office hours.
type OvertimeRisk struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	OvertimeCount int    `json:"overtime_count"`
}

// ProjectDuration is how long one case took from start to end.
type ProjectDuration struct {
	CaseID       string  `json:"case_id"`
	DurationDays float64 `json:"duration_days"`
}

// HandoverFlow is the average time work waits between two roles.
type HandoverFlow struct {
	SourceRole  string  `json:"source_role"`
	TargetRole  string  `json:"target_role"`
	AvgDuration float64 `json:"avg_duration"`
}

// UtilizationMetric counts events in one weekday and hour slot.
type UtilizationMetric struct {
	Day   int `json:"day"`  // 1-7, Monday first
	Hour  int `json:"hour"` // 0-23
	Count int `json:"count"`
}

// APIError is the error body returned by the analytics API.
type APIError struct {
	StatusCode int                 `json:"-"`
	Path       string              `json:"-"`
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Code       string              `json:"code,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "request failed"
	}
	if e.Code != "" {
		return fmt.Sprintf("api %s returned status %d (%s): %s", e.Path, e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.StatusCode, msg)
}
