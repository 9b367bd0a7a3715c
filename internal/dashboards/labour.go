// Package dashboards holds the per-domain metric tables fed to the status
// engine. Each dashboard supplies only its own ordered table; the evaluator
// is shared. Threshold constants are domain facts, not engine behavior.
package dashboards

import (
	"fmt"

	"siteworks_backend/internal/status"
)

// LabourSnapshot is the metrics snapshot behind a labour worker's profile
// dashboard.
type LabourSnapshot struct {
	TotalBudget       float64
	AmountPaid        float64
	PendingDocuments  int
	RequiredDocuments int
	Rating            float64
	ActiveOnSite      bool
}

// LabourTable builds the labour dashboard's ordered status table.
// Payment: >=90% good, >=70% warning. Rating: >=4.5 good, >=3.5 warning.
func LabourTable(s LabourSnapshot) []status.Metric {
	var paymentPercent float64
	if s.TotalBudget > 0 {
		paymentPercent = s.AmountPaid / s.TotalBudget * 100
	}

	return []status.Metric{
		{
			Section:        "Payment Status",
			Value:          paymentPercent,
			GoodAt:         90,
			WarnAt:         70,
			Good:           "Payments up to date",
			Warn:           "Payment partially pending",
			Critical:       "Significant payment pending",
			CriticalAction: "Contact admin for payment",
		},
		labourDocumentationRow(s),
		{
			Section:        "Performance Rating",
			Value:          s.Rating,
			GoodAt:         4.5,
			WarnAt:         3.5,
			Good:           fmt.Sprintf("Excellent performance (%.1f/5)", s.Rating),
			Warn:           fmt.Sprintf("Good performance (%.1f/5)", s.Rating),
			Critical:       fmt.Sprintf("Performance needs improvement (%.1f/5)", s.Rating),
			CriticalAction: "Skill development recommended",
		},
		labourWorkStatusRow(s),
	}
}

// Documentation depends on two counts: any required document is critical,
// otherwise any pending document is a warning.
func labourDocumentationRow(s LabourSnapshot) status.Metric {
	if s.RequiredDocuments > 0 {
		return status.Static("Documentation", status.Critical,
			fmt.Sprintf("%d documents required", s.RequiredDocuments),
			"Submit missing documents")
	}
	if s.PendingDocuments > 0 {
		return status.Static("Documentation", status.Warning,
			fmt.Sprintf("%d documents under review", s.PendingDocuments), "")
	}
	return status.Static("Documentation", status.Good, "All documents verified", "")
}

func labourWorkStatusRow(s LabourSnapshot) status.Metric {
	if s.ActiveOnSite {
		return status.Static("Work Status", status.Good, "Currently active on site", "")
	}
	return status.Static("Work Status", status.Warning, "No active site assignment", "")
}

// DemoLabourSnapshot mirrors the demo profile shown while live metrics
// collaborators are not wired.
func DemoLabourSnapshot() LabourSnapshot {
	return LabourSnapshot{
		TotalBudget:       500000,
		AmountPaid:        350000,
		PendingDocuments:  1,
		RequiredDocuments: 1,
		Rating:            4.7,
		ActiveOnSite:      true,
	}
}
