package assessmentwindow

import (
	"hr-pipeline-backend/lib/utils/helpers"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"time"
)

// Input настройки окна прохождения оценки
type Input struct {
	StartDate string
	EndDate   string
	StartTime string // HH:MM, необязательно
	EndTime   string // HH:MM, необязательно
}

func InputFromJob(job dbmodels.JobPosting) Input {
	return Input{
		StartDate: job.AssessmentStartDate,
		EndDate:   job.AssessmentEndDate,
		StartTime: job.AssessmentStartTime,
		EndTime:   job.AssessmentEndTime,
	}
}

// Bounds границы окна. Нераспознанная дата считается отсутствующей
func Bounds(input Input, loc *time.Location) (start, end *time.Time) {
	if loc == nil {
		loc = time.Local
	}
	if t, ok := helpers.ParseDate(input.StartDate, loc); ok {
		if hour, minute, ok := helpers.ParseClock(input.StartTime); ok {
			t = time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, loc)
		}
		start = &t
	}
	if t, ok := helpers.ParseDate(input.EndDate, loc); ok {
		if hour, minute, ok := helpers.ParseClock(input.EndTime); ok {
			// конец окна включает всю последнюю минуту
			t = time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 59, int(999*time.Millisecond), loc)
		}
		end = &t
	}
	return start, end
}

// Calculate положение момента now относительно окна
func Calculate(input Input, now time.Time, loc *time.Location) models.AssessmentWindow {
	start, end := Bounds(input, loc)
	return Evaluate(start, end, now)
}

func Evaluate(start, end *time.Time, now time.Time) models.AssessmentWindow {
	result := models.AssessmentWindow{
		Start: start,
		End:   end,
	}
	result.IsBeforeStart = start != nil && now.Before(*start)
	result.IsAfterEnd = end != nil && now.After(*end)
	result.IsWithinWindow = !(result.IsBeforeStart || result.IsAfterEnd)
	return result
}
