package jobstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.JobPosting) (id string, err error)
	GetByID(id string) (*dbmodels.JobPosting, error)
	GetByIDs(ids []string) (map[string]dbmodels.JobPosting, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPosting) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.JobPosting, error) {
	rec := dbmodels.JobPosting{}
	err := i.db.
		Model(&dbmodels.JobPosting{}).
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

func (i impl) GetByIDs(ids []string) (map[string]dbmodels.JobPosting, error) {
	result := map[string]dbmodels.JobPosting{}
	if len(ids) == 0 {
		return result, nil
	}
	list := []dbmodels.JobPosting{}
	err := i.db.
		Where("id in (?)", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	for _, rec := range list {
		result[rec.ID] = rec
	}
	return result, nil
}
