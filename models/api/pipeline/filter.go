package pipelineapimodels

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
)

type ApplicationFilter struct {
	CandidateID string                     `json:"candidate_id"` // Идентификатор кандидата
	JobID       string                     `json:"job_id"`       // Идентификатор вакансии
	Statuses    []models.ApplicationStatus `json:"statuses"`     // Статусы отклика
	WithRounds  bool                       `json:"with_rounds"`  // Добавить в ответ этапы со статусами
}

func (f ApplicationFilter) Validate() error {
	if f.CandidateID == "" && f.JobID == "" {
		return errors.New("не указан кандидат или вакансия")
	}
	for _, status := range f.Statuses {
		if !status.IsValid() {
			return errors.Errorf("неизвестный статус отклика: %s", status)
		}
	}
	return nil
}

func (f ApplicationFilter) ToDB() dbmodels.ApplicationFilter {
	return dbmodels.ApplicationFilter{
		CandidateID: f.CandidateID,
		JobID:       f.JobID,
		Statuses:    f.Statuses,
	}
}
