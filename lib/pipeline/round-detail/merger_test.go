package rounddetail

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	assessmentRound := models.Round{DisplayName: "Assessment", UniqueKey: "assessment-7", RoundType: models.RoundTypeAssessment}

	t.Run(`exact key check`, func(t *testing.T) {
		job := dbmodels.JobPosting{RoundDetails: map[string]dbmodels.RoundDetailRecord{
			"r1":         {Description: "exact", Location: "Room 4"},
			"technical2": {Description: "by type"},
		}}
		detail, found := Merge(models.Round{UniqueKey: "r1", RoundType: models.RoundTypeTechnical}, job, dbmodels.Application{})
		require.True(t, found)
		require.Equal(t, "exact", detail.Description)
		require.Equal(t, "Room 4", detail.Location)
	})

	t.Run(`substring on round type check`, func(t *testing.T) {
		job := dbmodels.JobPosting{RoundDetails: map[string]dbmodels.RoundDetailRecord{
			"coding_round_1": {Location: "no schedule"},
			"coding_round_2": {Description: "Live coding", InterviewerName: "A. Smith"},
		}}
		detail, found := Merge(models.Round{UniqueKey: "coding", RoundType: models.RoundTypeCoding}, job, dbmodels.Application{})
		require.True(t, found)
		require.Equal(t, "Live coding", detail.Description)
		require.Equal(t, "A. Smith", detail.InterviewerName)
	})

	t.Run(`substring prefers round order check`, func(t *testing.T) {
		job := dbmodels.JobPosting{
			RoundOrder: []string{"hr_b", "hr_a"},
			RoundDetails: map[string]dbmodels.RoundDetailRecord{
				"hr_a": {Description: "a"},
				"hr_b": {Description: "b"},
			},
		}
		detail, _ := Merge(models.Round{UniqueKey: "hr", RoundType: models.RoundTypeHR}, job, dbmodels.Application{})
		require.Equal(t, "b", detail.Description)
	})

	t.Run(`assessment alternate keys check`, func(t *testing.T) {
		job := dbmodels.JobPosting{RoundDetails: map[string]dbmodels.RoundDetailRecord{
			"online_assessment": {Location: "Online"},
		}}
		detail, found := Merge(assessmentRound, job, dbmodels.Application{})
		require.True(t, found)
		require.Equal(t, "Online", detail.Location)
	})

	t.Run(`assessment synthesized from job check`, func(t *testing.T) {
		assessmentID := "a-1"
		job := dbmodels.JobPosting{
			AssessmentID:           &assessmentID,
			AssessmentInstructions: "Solve 3 tasks",
			AssessmentStartDate:    "2024-01-10",
			AssessmentEndDate:      "2024-01-12",
			AssessmentStartTime:    "09:00",
			AssessmentEndTime:      "18:00",
		}
		detail, found := Merge(assessmentRound, job, dbmodels.Application{})
		require.True(t, found)
		require.Equal(t, models.RoundDetail{
			Description: "Solve 3 tasks",
			DateFrom:    "2024-01-10",
			DateTo:      "2024-01-12",
			DailyTime:   "09:00 - 18:00",
		}, detail)
	})

	t.Run(`no detail check`, func(t *testing.T) {
		detail, found := Merge(assessmentRound, dbmodels.JobPosting{}, dbmodels.Application{})
		require.False(t, found)
		require.Equal(t, models.RoundDetail{}, detail)
	})

	t.Run(`process remarks override check`, func(t *testing.T) {
		job := dbmodels.JobPosting{RoundDetails: map[string]dbmodels.RoundDetailRecord{
			"r2": {Description: "HR talk", EmployerRemarks: "job level"},
		}}
		app := dbmodels.Application{
			InterviewProcesses: []dbmodels.LegacyProcess{{ID: "p1", Type: "technical"}, {ID: "p2", Type: "hr"}},
			ProcessRemarks:     map[string]string{"p1": "other round", "p2": "Great communication"},
		}
		detail, found := Merge(models.Round{UniqueKey: "r2", RoundType: models.RoundTypeHR}, job, app)
		require.True(t, found)
		require.Equal(t, "HR talk", detail.Description)
		require.Equal(t, "Great communication", detail.EmployerRemarks)
	})

	t.Run(`process remarks without job detail check`, func(t *testing.T) {
		app := dbmodels.Application{
			InterviewProcesses: []dbmodels.LegacyProcess{{ID: "p1", Type: "final"}},
			ProcessRemarks:     map[string]string{"p1": "Offer discussed"},
		}
		detail, found := Merge(models.Round{UniqueKey: "final", RoundType: models.RoundTypeFinal}, dbmodels.JobPosting{}, app)
		require.True(t, found)
		require.Equal(t, models.RoundDetail{EmployerRemarks: "Offer discussed"}, detail)
	})

	t.Run(`empty process remarks keep job remarks check`, func(t *testing.T) {
		job := dbmodels.JobPosting{RoundDetails: map[string]dbmodels.RoundDetailRecord{"r1": {EmployerRemarks: "job level"}}}
		app := dbmodels.Application{
			InterviewProcesses: []dbmodels.LegacyProcess{{ID: "p1", Type: "technical"}},
			ProcessRemarks:     map[string]string{"p1": ""},
		}
		detail, _ := Merge(models.Round{UniqueKey: "r1", RoundType: models.RoundTypeTechnical}, job, app)
		require.Equal(t, "job level", detail.EmployerRemarks)
	})
}

func TestProcessRemarks(t *testing.T) {
	t.Run(`first matching process check`, func(t *testing.T) {
		app := dbmodels.Application{
			InterviewProcesses: []dbmodels.LegacyProcess{{ID: "p1", Type: "Technical"}, {ID: "p2", Type: "technical"}},
			ProcessRemarks:     map[string]string{"p2": "second round notes"},
		}
		require.Equal(t, "", processRemarks(models.Round{RoundType: models.RoundTypeTechnical}, app))

		app.ProcessRemarks["p1"] = "first round notes"
		require.Equal(t, "first round notes", processRemarks(models.Round{RoundType: models.RoundTypeTechnical}, app))
	})

	t.Run(`later process ignored in merge check`, func(t *testing.T) {
		job := dbmodels.JobPosting{RoundDetails: map[string]dbmodels.RoundDetailRecord{"r1": {EmployerRemarks: "job level"}}}
		app := dbmodels.Application{
			InterviewProcesses: []dbmodels.LegacyProcess{{ID: "p1", Type: "technical"}, {ID: "p2", Type: "technical"}},
			ProcessRemarks:     map[string]string{"p2": "second round notes"},
		}
		detail, found := Merge(models.Round{UniqueKey: "r1", RoundType: models.RoundTypeTechnical}, job, app)
		require.True(t, found)
		require.Equal(t, "job level", detail.EmployerRemarks)
	})
}

func TestFormatDateRange(t *testing.T) {
	t.Run(`date range check`, func(t *testing.T) {
		require.Equal(t, "Jan 10, 2024 - Jan 12, 2024", FormatDateRange(models.RoundDetail{DateFrom: "2024-01-10", DateTo: "2024-01-12"}, time.UTC))
		require.Equal(t, "From: Jan 10, 2024", FormatDateRange(models.RoundDetail{DateFrom: "2024-01-10T09:00"}, time.UTC))
		require.Equal(t, "Until: Jan 12, 2024", FormatDateRange(models.RoundDetail{DateFrom: "soon", DateTo: "12.01.2024"}, time.UTC))
		require.Equal(t, DatesTBD, FormatDateRange(models.RoundDetail{}, time.UTC))
	})
}
