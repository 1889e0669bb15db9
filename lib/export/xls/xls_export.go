package xlsexport

import (
	"bytes"
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(list []pipelineapimodels.ApplicationListItem) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	applicationSheet = "Отклики"
	roundSheet       = "Этапы"
)

var applicationHeaders = []string{"Отклик", "Кандидат", "Вакансия", "Статус", "Итог"}

var roundHeaders = []string{"Отклик", "№", "Этап", "Тип", "Статус", "Отзыв", "Период", "Замечания работодателя"}

func (i impl) ExportApplicationList(list []pipelineapimodels.ApplicationListItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := f.SetSheetName("Sheet1", applicationSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа откликов")
	}
	if _, err := f.NewSheet(roundSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка создания листа этапов")
	}
	styles, err := severityStyles(f)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания стилей xlsx")
	}
	if err = writeHeader(f, applicationSheet, applicationHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err = writeHeader(f, roundSheet, roundHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err = writeApplications(f, list, styles); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы откликов в xlsx")
	}
	if err = writeRounds(f, list, styles); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы этапов в xlsx")
	}
	return f.WriteToBuffer()
}

func writeApplications(f *excelize.File, list []pipelineapimodels.ApplicationListItem, styles map[models.Severity]int) error {
	row := 1
	for _, item := range list {
		row++
		err := writeRow(f, applicationSheet, row, item.ID, item.CandidateID, item.JobTitle, string(item.Status), item.Badge.Label)
		if err != nil {
			return err
		}
		if err = applySeverity(f, applicationSheet, 5, row, styles, item.Badge.Severity); err != nil {
			return err
		}
	}
	return nil
}

func writeRounds(f *excelize.File, list []pipelineapimodels.ApplicationListItem, styles map[models.Severity]int) error {
	row := 1
	for _, item := range list {
		for _, round := range item.Rounds {
			row++
			remarks := ""
			if round.Detail != nil {
				remarks = round.Detail.EmployerRemarks
			}
			err := writeRow(f, roundSheet, row,
				item.ID, round.Order+1, round.Name, string(round.RoundType),
				round.Status.Label, round.Status.Feedback, round.DateRange, remarks)
			if err != nil {
				return err
			}
			if err = applySeverity(f, roundSheet, 5, row, styles, round.Status.Severity); err != nil {
				return err
			}
		}
	}
	return nil
}
