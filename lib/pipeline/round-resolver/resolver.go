package roundresolver

import (
	"fmt"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
)

// Strategy источник списка этапов. Пустой результат означает, что источник не применим
type Strategy struct {
	Source  models.RoundSource
	Resolve func(job dbmodels.JobPosting, app dbmodels.Application) []models.Round
}

// DefaultChain источники в порядке приоритета, используется первый непустой
var DefaultChain = []Strategy{
	{Source: models.RoundSourceStages, Resolve: FromStages},
	{Source: models.RoundSourceLegacyProcesses, Resolve: FromLegacyProcesses},
	{Source: models.RoundSourceRoundOrder, Resolve: FromRoundOrder},
	{Source: models.RoundSourceRoundTypeFlags, Resolve: FromRoundTypeFlags},
	{Source: models.RoundSourcePlaceholder, Resolve: Placeholder},
}

// порядок этапов для плоской карты типов
var flagOrder = []models.RoundType{
	models.RoundTypeTechnical,
	models.RoundTypeAptitude,
	models.RoundTypeCoding,
	models.RoundTypeHR,
	models.RoundTypeManagerial,
	models.RoundTypeNonTechnical,
	models.RoundTypeFinal,
}

var placeholderTypes = []models.RoundType{
	models.RoundTypeTechnical,
	models.RoundTypeHR,
	models.RoundTypeFinal,
}

// Resolve список этапов отклика. Результат никогда не пустой, ключи этапов уникальны
func Resolve(job dbmodels.JobPosting, app dbmodels.Application) []models.Round {
	return ResolveWith(DefaultChain, job, app)
}

func ResolveWith(chain []Strategy, job dbmodels.JobPosting, app dbmodels.Application) []models.Round {
	for _, strategy := range chain {
		rounds := strategy.Resolve(job, app)
		if len(rounds) != 0 {
			return finalize(rounds, strategy.Source)
		}
	}
	return finalize(Placeholder(job, app), models.RoundSourcePlaceholder)
}

func FromStages(_ dbmodels.JobPosting, app dbmodels.Application) []models.Round {
	stages := app.Stages()
	result := make([]models.Round, 0, len(stages))
	for _, stage := range stages {
		result = append(result, models.Round{
			DisplayName: firstNotEmpty(stage.StageName, models.RoundType(stage.StageType).DisplayName()),
			UniqueKey:   firstNotEmpty(stage.ID, stage.StageType),
			RoundType:   models.RoundType(stage.StageType),
		})
	}
	return result
}

func FromLegacyProcesses(_ dbmodels.JobPosting, app dbmodels.Application) []models.Round {
	result := make([]models.Round, 0, len(app.InterviewProcesses))
	for _, process := range app.InterviewProcesses {
		result = append(result, models.Round{
			DisplayName: firstNotEmpty(process.Name, models.RoundType(process.Type).DisplayName()),
			UniqueKey:   firstNotEmpty(process.ID, process.Type),
			RoundType:   models.RoundType(process.Type),
		})
	}
	return result
}

func FromRoundOrder(job dbmodels.JobPosting, _ dbmodels.Application) []models.Round {
	result := make([]models.Round, 0, len(job.RoundOrder))
	seen := map[string]bool{}
	for _, key := range job.RoundOrder {
		if seen[key] {
			continue
		}
		roundType, ok := job.RoundTypes[key]
		if !ok || roundType == "" {
			continue
		}
		seen[key] = true
		rt := models.RoundType(roundType)
		result = append(result, models.Round{
			DisplayName: rt.DisplayName(),
			UniqueKey:   key,
			RoundType:   rt,
		})
	}
	return result
}

func FromRoundTypeFlags(job dbmodels.JobPosting, _ dbmodels.Application) []models.Round {
	if job.InterviewRoundTypes == nil {
		return nil
	}
	result := []models.Round{}
	if job.HasAssessment() {
		result = append(result, roundOfType(models.RoundTypeAssessment))
	}
	for _, rt := range flagOrder {
		if job.InterviewRoundTypes[string(rt)] {
			result = append(result, roundOfType(rt))
		}
	}
	return result
}

// Placeholder этапы по умолчанию, когда ни вакансия, ни отклик не содержат данных об этапах
func Placeholder(_ dbmodels.JobPosting, _ dbmodels.Application) []models.Round {
	result := make([]models.Round, 0, len(placeholderTypes))
	for _, rt := range placeholderTypes {
		result = append(result, roundOfType(rt))
	}
	return result
}

func IsPlaceholder(rounds []models.Round) bool {
	return len(rounds) != 0 && rounds[0].Source == models.RoundSourcePlaceholder
}

func roundOfType(rt models.RoundType) models.Round {
	return models.Round{
		DisplayName: rt.DisplayName(),
		UniqueKey:   string(rt),
		RoundType:   rt,
	}
}

// finalize проставляет порядковый номер, источник и делает ключи уникальными
func finalize(rounds []models.Round, source models.RoundSource) []models.Round {
	used := make(map[string]bool, len(rounds))
	for idx := range rounds {
		rounds[idx].SourceOrder = idx
		rounds[idx].Source = source
		key := rounds[idx].UniqueKey
		if key == "" {
			key = fmt.Sprintf("round-%d", idx+1)
		}
		if used[key] {
			base := key
			for n := 2; used[key]; n++ {
				key = fmt.Sprintf("%s-%d", base, n)
			}
		}
		used[key] = true
		rounds[idx].UniqueKey = key
	}
	return rounds
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
