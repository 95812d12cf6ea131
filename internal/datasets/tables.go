package datasets

import (
	"strconv"

	"github.com/five82/orgmine/internal/analytics"
	"github.com/five82/orgmine/internal/tableview"
)

func formatFloat(prec int) func(float64) string {
	return func(f float64) string { return strconv.FormatFloat(f, 'f', prec, 64) }
}

// RoleInteractionTable lists weighted role pairs.
var RoleInteractionTable = tableview.Table[analytics.RoleInteraction]{
	Key: func(r analytics.RoleInteraction) string { return r.RoleA + "\x00" + r.RoleB },
	Columns: []tableview.Column[analytics.RoleInteraction]{
		{Key: "role_a", Title: "col.roleA", Text: func(r analytics.RoleInteraction) string { return r.RoleA }, Searchable: true},
		{Key: "role_b", Title: "col.roleB", Text: func(r analytics.RoleInteraction) string { return r.RoleB }, Searchable: true},
		{
			Key: "weight", Title: "col.weight",
			Number: func(r analytics.RoleInteraction) float64 { return r.Weight },
			Format: func(r analytics.RoleInteraction) string { return formatFloat(0)(r.Weight) },
		},
	},
}

// CollaborationTable lists weighted user pairs.
var CollaborationTable = tableview.Table[analytics.UserCollaboration]{
	Key: func(c analytics.UserCollaboration) string { return c.UserA + "\x00" + c.UserB + "\x00" + c.Month },
	Columns: []tableview.Column[analytics.UserCollaboration]{
		{Key: "user_a", Title: "col.userA", Text: func(c analytics.UserCollaboration) string { return c.UserA }, Searchable: true},
		{Key: "role_a", Title: "col.roleA", Text: func(c analytics.UserCollaboration) string { return c.RoleA }, Searchable: true},
		{Key: "user_b", Title: "col.userB", Text: func(c analytics.UserCollaboration) string { return c.UserB }, Searchable: true},
		{Key: "role_b", Title: "col.roleB", Text: func(c analytics.UserCollaboration) string { return c.RoleB }, Searchable: true},
		{
			Key: "weight", Title: "col.weight",
			Number: func(c analytics.UserCollaboration) float64 { return c.Weight },
			Format: func(c analytics.UserCollaboration) string { return formatFloat(0)(c.Weight) },
		},
		{Key: "month", Title: "col.month", Text: func(c analytics.UserCollaboration) string { return c.Month }},
	},
}

// OvertimeTable lists overtime counts per person.
var OvertimeTable = tableview.Table[analytics.OvertimeRisk]{
	Key: func(o analytics.OvertimeRisk) string { return o.Name + "\x00" + o.Role },
	Columns: []tableview.Column[analytics.OvertimeRisk]{
		{Key: "name", Title: "col.name", Text: func(o analytics.OvertimeRisk) string { return o.Name }, Searchable: true},
		{Key: "role", Title: "col.role", Text: func(o analytics.OvertimeRisk) string { return o.Role }, Searchable: true},
		{Key: "overtime_count", Title: "col.overtime", Number: func(o analytics.OvertimeRisk) float64 { return float64(o.OvertimeCount) }},
	},
}

// DurationTable lists case durations.
var DurationTable = tableview.Table[analytics.ProjectDuration]{
	Key: func(d analytics.ProjectDuration) string { return d.CaseID },
	Columns: []tableview.Column[analytics.ProjectDuration]{
		{Key: "case_id", Title: "col.caseId", Text: func(d analytics.ProjectDuration) string { return d.CaseID }, Searchable: true},
		{
			Key: "duration_days", Title: "col.duration",
			Number: func(d analytics.ProjectDuration) float64 { return d.DurationDays },
			Format: func(d analytics.ProjectDuration) string { return formatFloat(1)(d.DurationDays) },
		},
	},
}

// HandoverTable lists average handover times between roles.
var HandoverTable = tableview.Table[analytics.HandoverFlow]{
	Key: func(h analytics.HandoverFlow) string { return h.SourceRole + "\x00" + h.TargetRole },
	Columns: []tableview.Column[analytics.HandoverFlow]{
		{Key: "source_role", Title: "col.source", Text: func(h analytics.HandoverFlow) string { return h.SourceRole }, Searchable: true},
		{Key: "target_role", Title: "col.target", Text: func(h analytics.HandoverFlow) string { return h.TargetRole }, Searchable: true},
		{
			Key: "avg_duration", Title: "col.avgDuration",
			Number: func(h analytics.HandoverFlow) float64 { return h.AvgDuration },
			Format: func(h analytics.HandoverFlow) string { return formatFloat(1)(h.AvgDuration) },
		},
	},
}

// EntityTable lists role or user names.
var EntityTable = tableview.Table[analytics.Entity]{
	Key: func(e analytics.Entity) string { return e.Name },
	Columns: []tableview.Column[analytics.Entity]{
		{Key: "name", Title: "col.name", Text: func(e analytics.Entity) string { return e.Name }, Searchable: true},
	},
}
