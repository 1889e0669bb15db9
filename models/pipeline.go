package models

import "time"

// Round этап подбора в едином виде, независимо от формата исходных данных
type Round struct {
	DisplayName string
	UniqueKey   string
	RoundType   RoundType
	SourceOrder int
	Source      RoundSource
}

func (r Round) IsAssessment() bool {
	return r.RoundType == RoundTypeAssessment || r.DisplayName == AssessmentRoundName
}

type RoundStatus struct {
	Label    string
	Severity Severity
	Feedback string
}

type RoundDetail struct {
	Description     string
	DateFrom        string
	DateTo          string
	DailyTime       string
	Location        string
	InterviewerName string
	EmployerRemarks string
}

type AssessmentWindow struct {
	IsBeforeStart  bool
	IsAfterEnd     bool
	IsWithinWindow bool
	Start          *time.Time
	End            *time.Time
}

// Upcoming время до начала окна, 0 если начало не задано или уже наступило
func (w AssessmentWindow) Upcoming(now time.Time) time.Duration {
	if w.Start == nil || !now.Before(*w.Start) {
		return 0
	}
	return w.Start.Sub(now)
}

// Remaining время до конца окна, 0 если конец не задан или уже прошел
func (w AssessmentWindow) Remaining(now time.Time) time.Duration {
	if w.End == nil || now.After(*w.End) {
		return 0
	}
	return w.End.Sub(now)
}

type Badge struct {
	Label    string
	Severity Severity
}
