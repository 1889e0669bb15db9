package applicationstatus

import (
	roundstatus "hr-pipeline-backend/lib/pipeline/round-status"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Badge итоговый статус отклика для списков
func Badge(app dbmodels.Application) models.Badge {
	if app.Status == models.ApplicationStatusPending && app.IsSelectedForProcess {
		return models.Badge{Label: "Shortlisted", Severity: models.SeverityInfo}
	}
	if app.Status == models.ApplicationStatusHired {
		return models.Badge{Label: "Hired", Severity: models.SeveritySuccess}
	}
	if !app.Status.IsValid() {
		return models.Badge{Label: "Pending", Severity: models.SeverityNeutral}
	}
	return models.Badge{
		Label:    cases.Title(language.English).String(strings.ReplaceAll(string(app.Status), "_", " ")),
		Severity: roundstatus.SeverityOf(app.Status, app.IsSelectedForProcess),
	}
}
