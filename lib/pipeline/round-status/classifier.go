package roundstatus

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
)

var assessmentStatuses = map[models.AssessmentStatus]models.RoundStatus{
	models.AssessmentStatusCompleted:  {Label: "Completed", Severity: models.SeveritySuccess},
	models.AssessmentStatusInProgress: {Label: "In Progress", Severity: models.SeverityWarning},
	models.AssessmentStatusAvailable:  {Label: "Available", Severity: models.SeverityInfo},
	models.AssessmentStatusExpired:    {Label: "Expired", Severity: models.SeverityDanger},
}

// Classify статус этапа для отображения. Определен для любой комбинации входных данных
func Classify(round models.Round, app dbmodels.Application) models.RoundStatus {
	if round.DisplayName == models.AssessmentRoundName && app.AssessmentStatus != "" {
		return FromAssessmentStatus(app.AssessmentStatus)
	}
	if record, ok := findInterviewRound(app.InterviewRounds, round.SourceOrder+1); ok {
		return FromInterviewRound(record)
	}
	return FromApplicationStatus(app.Status, app.IsSelectedForProcess)
}

func FromAssessmentStatus(status models.AssessmentStatus) models.RoundStatus {
	if result, ok := assessmentStatuses[status]; ok {
		return result
	}
	return models.RoundStatus{Label: "Pending", Severity: models.SeverityNeutral}
}

func FromInterviewRound(record dbmodels.InterviewRoundRecord) models.RoundStatus {
	result := models.RoundStatus{Label: "Scheduled", Severity: models.SeverityInfo, Feedback: record.Feedback}
	switch record.Status {
	case models.InterviewRoundStatusPassed:
		result.Label = "Passed"
		result.Severity = models.SeveritySuccess
	case models.InterviewRoundStatusFailed:
		result.Label = "Failed"
		result.Severity = models.SeverityDanger
	}
	return result
}

// FromApplicationStatus статус этапа по общему статусу отклика
func FromApplicationStatus(status models.ApplicationStatus, isSelectedForProcess bool) models.RoundStatus {
	switch status {
	case models.ApplicationStatusPending:
		if isSelectedForProcess {
			return models.RoundStatus{Label: "Scheduled", Severity: models.SeverityInfo}
		}
		return models.RoundStatus{Label: "Under Review", Severity: models.SeverityWarning}
	case models.ApplicationStatusShortlisted:
		return models.RoundStatus{Label: "Scheduled", Severity: models.SeverityInfo}
	case models.ApplicationStatusInterviewed, models.ApplicationStatusHired:
		return models.RoundStatus{Label: "Completed", Severity: models.SeveritySuccess}
	case models.ApplicationStatusRejected:
		return models.RoundStatus{Label: "Rejected", Severity: models.SeverityDanger}
	default:
		return models.RoundStatus{Label: "Submitted", Severity: models.SeverityNeutral}
	}
}

// SeverityOf уровень важности общего статуса отклика
func SeverityOf(status models.ApplicationStatus, isSelectedForProcess bool) models.Severity {
	return FromApplicationStatus(status, isSelectedForProcess).Severity
}

func findInterviewRound(list []dbmodels.InterviewRoundRecord, roundNumber int) (dbmodels.InterviewRoundRecord, bool) {
	for _, item := range list {
		if item.Round == roundNumber {
			return item, true
		}
	}
	return dbmodels.InterviewRoundRecord{}, false
}
