package dbmodels

import "hr-pipeline-backend/models"

type Application struct {
	BaseModel
	CandidateID          string                   `gorm:"type:varchar(36);index" json:"candidateId"`
	JobID                string                   `gorm:"type:varchar(36);index" json:"jobId"`
	Status               models.ApplicationStatus `gorm:"type:varchar(50)" json:"status"`
	IsSelectedForProcess bool                     `json:"isSelectedForProcess"`
	AssessmentStatus     models.AssessmentStatus  `gorm:"type:varchar(50)" json:"assessmentStatus"`
	AssessmentResult     models.AssessmentResult  `gorm:"type:varchar(50)" json:"assessmentResult"`
	InterviewProcess     *InterviewProcess        `gorm:"serializer:json" json:"interviewProcess"`
	InterviewProcesses   []LegacyProcess          `gorm:"serializer:json" json:"interviewProcesses"` // устаревший формат
	ProcessRemarks       map[string]string        `gorm:"serializer:json" json:"processRemarks"`     // ид процесса -> замечания
	InterviewRounds      []InterviewRoundRecord   `gorm:"serializer:json" json:"interviewRounds"`    // устаревший формат оценки
	EmployerRemarks      string                   `json:"employerRemarks"`
}

type InterviewProcess struct {
	Stages []ProcessStage `json:"stages"`
}

type ProcessStage struct {
	ID              string `json:"id"`
	StageName       string `json:"stageName"`
	StageType       string `json:"stageType"`
	StageOrder      int    `json:"stageOrder"`
	Status          string `json:"status"`
	ScheduledDate   string `json:"scheduledDate"`
	ScheduledTime   string `json:"scheduledTime"`
	Location        string `json:"location"`
	InterviewerName string `json:"interviewerName"`
}

type LegacyProcess struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type InterviewRoundRecord struct {
	Round    int                         `json:"round"`
	Status   models.InterviewRoundStatus `json:"status"`
	Feedback string                      `json:"feedback"`
}

type ApplicationFilter struct {
	CandidateID string
	JobID       string
	Statuses    []models.ApplicationStatus
}

func (a Application) Stages() []ProcessStage {
	if a.InterviewProcess == nil {
		return nil
	}
	return a.InterviewProcess.Stages
}
