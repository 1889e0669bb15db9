package applicationstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.Model(&dbmodels.Application{})
	if filter.CandidateID != "" {
		tx = tx.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if len(filter.Statuses) != 0 {
		tx = tx.Where("status in (?)", filter.Statuses)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
