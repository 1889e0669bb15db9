package rounddetail

import (
	"fmt"
	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"sort"
	"strings"
	"time"
)

// альтернативные ключи деталей для этапа оценки
var assessmentKeys = []string{"assessment", "Assessment", "technical_assessment", "online_assessment"}

const DatesTBD = "Dates TBD"

// lookup один шаг поиска деталей этапа в вакансии
type lookup func(round models.Round, job dbmodels.JobPosting) (dbmodels.RoundDetailRecord, bool)

var lookups = []lookup{
	byUniqueKey,
	byRoundType,
	byAssessmentKey,
	fromAssessmentSettings,
}

// Merge детали этапа из вакансии с замечаниями работодателя из отклика.
// found = false, если по этапу нет никаких данных
func Merge(round models.Round, job dbmodels.JobPosting, app dbmodels.Application) (detail models.RoundDetail, found bool) {
	for _, find := range lookups {
		if rec, ok := find(round, job); ok {
			detail = convert(rec)
			found = true
			break
		}
	}
	if remarks := processRemarks(round, app); remarks != "" {
		detail.EmployerRemarks = remarks
		found = true
	}
	return detail, found
}

func byUniqueKey(round models.Round, job dbmodels.JobPosting) (dbmodels.RoundDetailRecord, bool) {
	rec, ok := job.RoundDetails[round.UniqueKey]
	return rec, ok
}

func byRoundType(round models.Round, job dbmodels.JobPosting) (dbmodels.RoundDetailRecord, bool) {
	if round.RoundType == "" {
		return dbmodels.RoundDetailRecord{}, false
	}
	for _, key := range detailKeys(job) {
		rec := job.RoundDetails[key]
		if strings.Contains(key, string(round.RoundType)) && rec.HasSchedule() {
			return rec, true
		}
	}
	return dbmodels.RoundDetailRecord{}, false
}

func byAssessmentKey(round models.Round, job dbmodels.JobPosting) (dbmodels.RoundDetailRecord, bool) {
	if !round.IsAssessment() {
		return dbmodels.RoundDetailRecord{}, false
	}
	for _, key := range assessmentKeys {
		if rec, ok := job.RoundDetails[key]; ok {
			return rec, true
		}
	}
	return dbmodels.RoundDetailRecord{}, false
}

func fromAssessmentSettings(round models.Round, job dbmodels.JobPosting) (dbmodels.RoundDetailRecord, bool) {
	if !round.IsAssessment() || !job.HasAssessment() {
		return dbmodels.RoundDetailRecord{}, false
	}
	rec := dbmodels.RoundDetailRecord{
		Description: job.AssessmentInstructions,
		FromDate:    job.AssessmentStartDate,
		ToDate:      job.AssessmentEndDate,
	}
	switch {
	case job.AssessmentStartTime != "" && job.AssessmentEndTime != "":
		rec.Time = fmt.Sprintf("%s - %s", job.AssessmentStartTime, job.AssessmentEndTime)
	case job.AssessmentStartTime != "":
		rec.Time = job.AssessmentStartTime
	case job.AssessmentEndTime != "":
		rec.Time = job.AssessmentEndTime
	}
	return rec, true
}

// detailKeys ключи деталей: сначала в порядке этапов вакансии, затем остальные по алфавиту
func detailKeys(job dbmodels.JobPosting) []string {
	result := make([]string, 0, len(job.RoundDetails))
	seen := map[string]bool{}
	for _, key := range job.RoundOrder {
		if _, ok := job.RoundDetails[key]; ok && !seen[key] {
			seen[key] = true
			result = append(result, key)
		}
	}
	rest := []string{}
	for key := range job.RoundDetails {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(result, rest...)
}

// processRemarks замечания работодателя из первого устаревшего процесса того же типа
func processRemarks(round models.Round, app dbmodels.Application) string {
	if round.RoundType == "" {
		return ""
	}
	for _, process := range app.InterviewProcesses {
		if strings.EqualFold(process.Type, string(round.RoundType)) {
			return app.ProcessRemarks[process.ID]
		}
	}
	return ""
}

func convert(rec dbmodels.RoundDetailRecord) models.RoundDetail {
	return models.RoundDetail{
		Description:     rec.Description,
		DateFrom:        rec.FromDate,
		DateTo:          rec.ToDate,
		DailyTime:       rec.Time,
		Location:        rec.Location,
		InterviewerName: rec.InterviewerName,
		EmployerRemarks: rec.EmployerRemarks,
	}
}

// FormatDateRange период проведения этапа для отображения
func FormatDateRange(detail models.RoundDetail, loc *time.Location) string {
	from := helpers.FormatDisplayDate(detail.DateFrom, loc)
	to := helpers.FormatDisplayDate(detail.DateTo, loc)
	switch {
	case from != "" && to != "":
		return fmt.Sprintf("%s - %s", from, to)
	case from != "":
		return fmt.Sprintf("From: %s", from)
	case to != "":
		return fmt.Sprintf("Until: %s", to)
	default:
		return DatesTBD
	}
}
