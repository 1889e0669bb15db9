package pipelineapimodels

import (
	"hr-pipeline-backend/models"
	"time"
)

type StatusView struct {
	Label    string          `json:"label"`              // Текст статуса
	Severity models.Severity `json:"severity"`           // Уровень важности neutral/info/warning/success/danger
	Feedback string          `json:"feedback,omitempty"` // Отзыв по этапу
}

type BadgeView struct {
	Label    string          `json:"label"`
	Severity models.Severity `json:"severity"`
}

type DetailView struct {
	Description     string `json:"description,omitempty"`
	DateFrom        string `json:"date_from,omitempty"`
	DateTo          string `json:"date_to,omitempty"`
	DailyTime       string `json:"daily_time,omitempty"`
	Location        string `json:"location,omitempty"`
	InterviewerName string `json:"interviewer_name,omitempty"`
	EmployerRemarks string `json:"employer_remarks,omitempty"`
}

type AssessmentWindowView struct {
	IsBeforeStart  bool                  `json:"is_before_start"`
	IsAfterEnd     bool                  `json:"is_after_end"`
	IsWithinWindow bool                  `json:"is_within_window"`
	Start          *time.Time            `json:"start,omitempty"`
	End            *time.Time            `json:"end,omitempty"`
	Phase          models.CountdownPhase `json:"phase,omitempty"`     // До чего идет отсчет to_start/to_end
	Countdown      string                `json:"countdown,omitempty"` // Оставшееся время текстом
	RemainingSec   int64                 `json:"remaining_sec"`
}

type RoundView struct {
	Key              string                `json:"key"`        // Уникальный ключ этапа
	Name             string                `json:"name"`       // Название этапа
	RoundType        models.RoundType      `json:"round_type"` // Тип этапа
	Order            int                   `json:"order"`      // Порядковый номер, с 0
	Source           models.RoundSource    `json:"source"`     // Источник данных об этапе
	Status           StatusView            `json:"status"`
	HasDetail        bool                  `json:"has_detail"` // false - ожидаются данные от работодателя
	Detail           *DetailView           `json:"detail,omitempty"`
	DateRange        string                `json:"date_range,omitempty"`
	AssessmentWindow *AssessmentWindowView `json:"assessment_window,omitempty"`
}

type PipelineView struct {
	ApplicationID   string      `json:"application_id"`
	JobID           string      `json:"job_id"`
	JobTitle        string      `json:"job_title"`
	Badge           BadgeView   `json:"badge"`
	PipelineDefined bool        `json:"pipeline_defined"` // false - этапы по умолчанию, реальных данных нет
	EmployerRemarks string      `json:"employer_remarks,omitempty"`
	Rounds          []RoundView `json:"rounds"`
}

type ApplicationListItem struct {
	ID          string                   `json:"id"`
	CandidateID string                   `json:"candidate_id"`
	JobID       string                   `json:"job_id"`
	JobTitle    string                   `json:"job_title"`
	Status      models.ApplicationStatus `json:"status"`
	Badge       BadgeView                `json:"badge"`
	Rounds      []RoundView              `json:"rounds,omitempty"`
}

func StatusConvert(status models.RoundStatus) StatusView {
	return StatusView{
		Label:    status.Label,
		Severity: status.Severity,
		Feedback: status.Feedback,
	}
}

func BadgeConvert(badge models.Badge) BadgeView {
	return BadgeView{
		Label:    badge.Label,
		Severity: badge.Severity,
	}
}

func DetailConvert(detail models.RoundDetail) *DetailView {
	return &DetailView{
		Description:     detail.Description,
		DateFrom:        detail.DateFrom,
		DateTo:          detail.DateTo,
		DailyTime:       detail.DailyTime,
		Location:        detail.Location,
		InterviewerName: detail.InterviewerName,
		EmployerRemarks: detail.EmployerRemarks,
	}
}

func AssessmentWindowConvert(window models.AssessmentWindow) AssessmentWindowView {
	return AssessmentWindowView{
		IsBeforeStart:  window.IsBeforeStart,
		IsAfterEnd:     window.IsAfterEnd,
		IsWithinWindow: window.IsWithinWindow,
		Start:          window.Start,
		End:            window.End,
	}
}
