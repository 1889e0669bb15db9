package applicationstore

import (
	"hr-pipeline-backend/db"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	tx, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := tx.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(tx))
	return tx
}

func TestStore(t *testing.T) {
	store := NewInstance(setupTestDB(t))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newApp := func(candidateID, jobID string, status models.ApplicationStatus, shift time.Duration) dbmodels.Application {
		return dbmodels.Application{
			BaseModel:   dbmodels.BaseModel{CreatedAt: base.Add(shift)},
			CandidateID: candidateID,
			JobID:       jobID,
			Status:      status,
		}
	}

	firstID, err := store.Create(newApp("cand-1", "job-1", models.ApplicationStatusPending, 0))
	require.NoError(t, err)
	secondID, err := store.Create(dbmodels.Application{
		BaseModel:        dbmodels.BaseModel{CreatedAt: base.Add(time.Hour)},
		CandidateID:      "cand-1",
		JobID:            "job-2",
		Status:           models.ApplicationStatusShortlisted,
		InterviewProcess: &dbmodels.InterviewProcess{Stages: []dbmodels.ProcessStage{{ID: "s1", StageName: "HR", StageType: "hr"}}},
		ProcessRemarks:   map[string]string{"s1": "bring passport"},
	})
	require.NoError(t, err)
	_, err = store.Create(newApp("cand-2", "job-1", models.ApplicationStatusHired, 2*time.Hour))
	require.NoError(t, err)

	t.Run(`get check`, func(t *testing.T) {
		rec, err := store.GetByID(secondID)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Len(t, rec.Stages(), 1)
		require.Equal(t, "HR", rec.Stages()[0].StageName)
		require.Equal(t, "bring passport", rec.ProcessRemarks["s1"])

		rec, err = store.GetByID("unknown")
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run(`list order check`, func(t *testing.T) {
		list, err := store.List(dbmodels.ApplicationFilter{CandidateID: "cand-1"})
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, secondID, list[0].ID)
		require.Equal(t, firstID, list[1].ID)
	})

	t.Run(`list filter check`, func(t *testing.T) {
		list, err := store.List(dbmodels.ApplicationFilter{
			JobID:    "job-1",
			Statuses: []models.ApplicationStatus{models.ApplicationStatusHired},
		})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "cand-2", list[0].CandidateID)

		list, err = store.List(dbmodels.ApplicationFilter{CandidateID: "cand-3"})
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
