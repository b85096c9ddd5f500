package repositoryImp

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mannam/entities"
	"mannam/pkg/photocard/repository"
)

type cardRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PhotoCardRepository { return &cardRepo{db} }

func (r *cardRepo) Create(card *entities.PhotoCard) error {
	return r.db.Create(card).Error
}

func (r *cardRepo) ByID(id string) (*entities.PhotoCard, error) {
	var card entities.PhotoCard
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) Verify(id string) (bool, error) {
	_, err := r.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
