package dashboards

import (
	"fmt"

	"siteworks_backend/internal/status"
)

// SiteManagerSnapshot is the metrics snapshot behind a site manager's
// site dashboard.
type SiteManagerSnapshot struct {
	SiteProgressPercent float64
	WorkersOnSite       int
	WorkersExpected     int
	SafetyIncidents     int
	PendingApprovals    int
}

// SiteManagerTable builds the site manager dashboard's ordered status table.
// Progress: >=90% good, >=70% warning. Attendance: >=90% good, >=75% warning.
// Incidents: 0 good, <=1 warning. Approvals: <=2 good, <=4 warning.
func SiteManagerTable(s SiteManagerSnapshot) []status.Metric {
	var attendance float64
	if s.WorkersExpected > 0 {
		attendance = float64(s.WorkersOnSite) / float64(s.WorkersExpected) * 100
	}
	progressMsg := fmt.Sprintf("Progress: %.0f%%", s.SiteProgressPercent)
	attendanceMsg := fmt.Sprintf("Attendance: %.1f%%", attendance)
	approvalsMsg := fmt.Sprintf("%d approvals pending", s.PendingApprovals)

	return []status.Metric{
		{
			Section:        "Site Progress",
			Value:          s.SiteProgressPercent,
			GoodAt:         90,
			WarnAt:         70,
			Good:           progressMsg,
			Warn:           progressMsg,
			Critical:       progressMsg,
			CriticalAction: "Escalate schedule slippage",
		},
		{
			Section:        "Workforce Attendance",
			Value:          attendance,
			GoodAt:         90,
			WarnAt:         75,
			Good:           attendanceMsg,
			Warn:           attendanceMsg,
			Critical:       attendanceMsg,
			CriticalAction: "Review absentee reports",
		},
		siteManagerSafetyRow(s),
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
	}
}

func siteManagerSafetyRow(s SiteManagerSnapshot) status.Metric {
	switch {
	case s.SafetyIncidents == 0:
		return status.Static("Safety Incidents", status.Good, "No safety incidents reported", "")
	case s.SafetyIncidents == 1:
		return status.Static("Safety Incidents", status.Warning, "1 safety incident logged", "")
	default:
		return status.Static("Safety Incidents", status.Critical,
			fmt.Sprintf("%d safety incidents logged", s.SafetyIncidents),
			"Escalate to safety officer")
	}
}

func DemoSiteManagerSnapshot() SiteManagerSnapshot {
	return SiteManagerSnapshot{
		SiteProgressPercent: 72,
		WorkersOnSite:       38,
		WorkersExpected:     45,
		SafetyIncidents:     0,
		PendingApprovals:    2,
	}
}
