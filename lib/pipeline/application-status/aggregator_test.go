package applicationstatus

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBadge(t *testing.T) {
	t.Run(`pending selected for process check`, func(t *testing.T) {
		app := dbmodels.Application{Status: models.ApplicationStatusPending, IsSelectedForProcess: true}
		require.Equal(t, models.Badge{Label: "Shortlisted", Severity: models.SeverityInfo}, Badge(app))
	})

	t.Run(`hired check`, func(t *testing.T) {
		app := dbmodels.Application{Status: models.ApplicationStatusHired, IsSelectedForProcess: true}
		require.Equal(t, models.Badge{Label: "Hired", Severity: models.SeveritySuccess}, Badge(app))
	})

	t.Run(`title cased status check`, func(t *testing.T) {
		cases := map[models.ApplicationStatus]models.Badge{
			models.ApplicationStatusPending:     {Label: "Pending", Severity: models.SeverityWarning},
			models.ApplicationStatusShortlisted: {Label: "Shortlisted", Severity: models.SeverityInfo},
			models.ApplicationStatusInterviewed: {Label: "Interviewed", Severity: models.SeveritySuccess},
			models.ApplicationStatusRejected:    {Label: "Rejected", Severity: models.SeverityDanger},
		}
		for status, expected := range cases {
			require.Equal(t, expected, Badge(dbmodels.Application{Status: status}), string(status))
		}
	})

	t.Run(`absent or unknown status check`, func(t *testing.T) {
		expected := models.Badge{Label: "Pending", Severity: models.SeverityNeutral}
		require.Equal(t, expected, Badge(dbmodels.Application{}))
		require.Equal(t, expected, Badge(dbmodels.Application{Status: "withdrawn", IsSelectedForProcess: true}))
	})
}
