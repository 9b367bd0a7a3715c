package dashboards

import (
	"siteworks_backend/internal/models"
	"siteworks_backend/internal/status"
)

// DemoReport evaluates the demo snapshot for the given dashboard variant.
// Callers resolve the variant through the access gate first, so an unknown
// value cannot reach this switch.
func DemoReport(variant models.DashboardVariant) status.Report {
	switch variant {
	case models.DashboardSupervisor:
		return status.Summarize(SupervisorTable(DemoSupervisorSnapshot()))
	case models.DashboardSiteManager:
		return status.Summarize(SiteManagerTable(DemoSiteManagerSnapshot()))
	case models.DashboardClient:
		return status.Summarize(ClientTable(DemoClientSnapshot()))
	default:
		return status.Summarize(LabourTable(DemoLabourSnapshot()))
	}
}
