package xlsexport

import (
	"hr-pipeline-backend/models"
	pipelineapimodels "hr-pipeline-backend/models/api/pipeline"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportApplicationList(t *testing.T) {
	t.Run(`export check`, func(t *testing.T) {
		list := []pipelineapimodels.ApplicationListItem{
			{
				ID:          "app-1",
				CandidateID: "candidate-1",
				JobTitle:    "Backend developer",
				Status:      models.ApplicationStatusPending,
				Badge:       pipelineapimodels.BadgeView{Label: "Shortlisted", Severity: models.SeverityInfo},
				Rounds: []pipelineapimodels.RoundView{
					{Order: 0, Name: "Technical", RoundType: models.RoundTypeTechnical,
						Status:    pipelineapimodels.StatusView{Label: "Passed", Severity: models.SeveritySuccess, Feedback: "Solid"},
						DateRange: "Jan 15, 2024 - Jan 16, 2024",
						Detail:    &pipelineapimodels.DetailView{EmployerRemarks: "Great communication"}},
					{Order: 1, Name: "HR", RoundType: models.RoundTypeHR,
						Status: pipelineapimodels.StatusView{Label: "Scheduled", Severity: models.SeverityInfo}},
				},
			},
		}
		buf, err := impl{}.ExportApplicationList(list)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		value, err := f.GetCellValue(applicationSheet, "E2")
		require.NoError(t, err)
		require.Equal(t, "Shortlisted", value)

		rows, err := f.GetRows(roundSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, []string{"app-1", "1", "Technical", "technical", "Passed", "Solid", "Jan 15, 2024 - Jan 16, 2024", "Great communication"}, rows[1])
		require.Equal(t, "HR", rows[2][2])
	})

	t.Run(`empty list check`, func(t *testing.T) {
		buf, err := impl{}.ExportApplicationList(nil)
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(applicationSheet)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}
