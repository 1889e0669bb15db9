package wsmodels

import "hr-pipeline-backend/models"

// CountdownMessage сообщение обратного отсчета до начала/окончания окна оценки
type CountdownMessage struct {
	Time         string                `json:"time"`          // время события
	JobID        string                `json:"job_id"`        // вакансия
	Phase        models.CountdownPhase `json:"phase"`         // to_start/to_end, пусто если отсчитывать нечего
	RemainingSec int64                 `json:"remaining_sec"` // осталось секунд
	Text         string                `json:"text"`          // осталось времени текстом
	Completed    bool                  `json:"completed"`     // отсчет завершен
}
