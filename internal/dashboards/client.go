package dashboards

import (
	"fmt"

	"siteworks_backend/internal/status"
)

// ClientSnapshot is the metrics snapshot behind a client contractor's
// project dashboard.
type ClientSnapshot struct {
	ProgressPercent  float64
	BudgetPlanned    float64
	BudgetSpent      float64
	PendingApprovals int
	UnresolvedIssues int
}

// ClientTable builds the client dashboard's ordered status table.
// Progress: >=90% good, >=60% warning. Budget utilization is inverted:
// <=80% good, <=95% warning. Approvals: <=2 good, <=4 warning.
// Issues: 0 good, <=1 warning.
func ClientTable(s ClientSnapshot) []status.Metric {
	var utilization float64
	if s.BudgetPlanned > 0 {
		utilization = s.BudgetSpent / s.BudgetPlanned * 100
	}
	progressMsg := fmt.Sprintf("Progress: %.0f%%", s.ProgressPercent)
	budgetMsg := fmt.Sprintf("Used: %.0f of %.0f planned", s.BudgetSpent, s.BudgetPlanned)
	approvalsMsg := fmt.Sprintf("%d approvals pending", s.PendingApprovals)
	issuesMsg := fmt.Sprintf("%d unresolved issues", s.UnresolvedIssues)

	return []status.Metric{
		{
			Section:        "Project Progress",
			Value:          s.ProgressPercent,
			GoodAt:         90,
			WarnAt:         60,
			Good:           progressMsg,
			Warn:           progressMsg,
			Critical:       progressMsg,
			CriticalAction: "Escalate schedule slippage",
		},
		{
			Section:        "Budget Status",
			Value:          utilization,
			GoodAt:         80,
			WarnAt:         95,
			LowerIsBetter:  true,
			Good:           budgetMsg,
			Warn:           budgetMsg,
			Critical:       budgetMsg,
			CriticalAction: "Review cost overruns",
		},
		{
			Section:        "Pending Approvals",
			Value:          float64(s.PendingApprovals),
			GoodAt:         2,
			WarnAt:         4,
			LowerIsBetter:  true,
			Good:           approvalsMsg,
			Warn:           approvalsMsg,
			Critical:       approvalsMsg,
			CriticalAction: "Clear approval backlog",
		},
		{
			Section:        "Unresolved Issues",
			Value:          float64(s.UnresolvedIssues),
			GoodAt:         0,
			WarnAt:         1,
			LowerIsBetter:  true,
			Good:           issuesMsg,
			Warn:           issuesMsg,
			Critical:       issuesMsg,
			CriticalAction: "Resolve open issues",
		},
	}
}

func DemoClientSnapshot() ClientSnapshot {
	return ClientSnapshot{
		ProgressPercent:  65,
		BudgetPlanned:    2500000,
		BudgetSpent:      1875000,
		PendingApprovals: 3,
		UnresolvedIssues: 1,
	}
}
