package dbmodels

// JobPosting вакансия с настройками этапов подбора.
// Этапы хранятся в нескольких исторических форматах, приводятся к единому виду в roundresolver
type JobPosting struct {
	BaseModel
	Title                  string                       `gorm:"type:varchar(255)" json:"title"`
	RoundOrder             []string                     `gorm:"serializer:json" json:"roundOrder"`          // порядок ключей этапов
	RoundTypes             map[string]string            `gorm:"serializer:json" json:"roundTypes"`          // ключ этапа -> тип
	RoundDetails           map[string]RoundDetailRecord `gorm:"serializer:json" json:"roundDetails"`        // ключ этапа -> детали
	InterviewRoundTypes    map[string]bool              `gorm:"serializer:json" json:"interviewRoundTypes"` // самый старый формат
	AssessmentID           *string                      `gorm:"type:varchar(36)" json:"assessmentId"`
	AssessmentInstructions string                       `json:"assessmentInstructions"`
	AssessmentStartDate    string                       `gorm:"type:varchar(50)" json:"assessmentStartDate"`
	AssessmentEndDate      string                       `gorm:"type:varchar(50)" json:"assessmentEndDate"`
	AssessmentStartTime    string                       `gorm:"type:varchar(5)" json:"assessmentStartTime"` // HH:MM
	AssessmentEndTime      string                       `gorm:"type:varchar(5)" json:"assessmentEndTime"`   // HH:MM
}

func (j JobPosting) HasAssessment() bool {
	return j.AssessmentID != nil && *j.AssessmentID != ""
}

type RoundDetailRecord struct {
	Description     string `json:"description"`
	FromDate        string `json:"fromDate"`
	ToDate          string `json:"toDate"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	InterviewerName string `json:"interviewerName"`
	EmployerRemarks string `json:"employerRemarks"`
}

// HasSchedule заполнено ли описание или даты этапа
func (r RoundDetailRecord) HasSchedule() bool {
	return r.Description != "" || r.FromDate != "" || r.ToDate != ""
}
