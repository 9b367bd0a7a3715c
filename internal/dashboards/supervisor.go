package dashboards

import (
	"fmt"

	"siteworks_backend/internal/status"
)

// SupervisorSnapshot is the metrics snapshot behind a supervisor's team
// dashboard.
type SupervisorSnapshot struct {
	TeamSize      int
	PresentToday  int
	AverageRating float64
}

// SupervisorTable builds the supervisor dashboard's ordered status table.
// Attendance: >=90% good, >=75% warning. Rating: >=4.5 good, >=3.5 warning.
func SupervisorTable(s SupervisorSnapshot) []status.Metric {
	var attendance float64
	if s.TeamSize > 0 {
		attendance = float64(s.PresentToday) / float64(s.TeamSize) * 100
	}
	attendanceMsg := fmt.Sprintf("Attendance: %.1f%%", attendance)
	ratingMsg := fmt.Sprintf("Avg Rating: %.1f/5", s.AverageRating)

	return []status.Metric{
		{
			Section:        "Team Attendance",
			Value:          attendance,
			GoodAt:         90,
			WarnAt:         75,
			Good:           attendanceMsg,
			Warn:           attendanceMsg,
			Critical:       attendanceMsg,
			CriticalAction: "Review absentee reports",
		},
		{
			Section:        "Team Performance",
			Value:          s.AverageRating,
			GoodAt:         4.5,
			WarnAt:         3.5,
			Good:           ratingMsg,
			Warn:           ratingMsg,
			Critical:       ratingMsg,
			CriticalAction: "Schedule team review",
		},
	}
}

func DemoSupervisorSnapshot() SupervisorSnapshot {
	return SupervisorSnapshot{
		TeamSize:      12,
		PresentToday:  10,
		AverageRating: 4.2,
	}
}
