package repositoryImp

import (
	"gorm.io/gorm"

	"mannam/entities"
	"mannam/pkg/review/repository"
)

type reviewRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReviewRepository { return &reviewRepo{db} }

func (r *reviewRepo) Create(rv *entities.Review) error { return r.db.Create(rv).Error }

func (r *reviewRepo) ByID(id string) (*entities.Review, error) {
	var rv entities.Review
	if err := r.db.Where("id = ?", id).First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepo) ListByPlace(placeID string, limit, offset int) ([]entities.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var out []entities.Review
	err := r.db.Where("place_id = ?", placeID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *reviewRepo) ListByPhotoCard(photoCardID string) ([]entities.Review, error) {
	var out []entities.Review
	err := r.db.Where("photo_card_id = ?", photoCardID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *reviewRepo) PlaceRating(placeID string) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&entities.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("place_id = ?", placeID).
		Scan(&row).Error
	return row.Avg, row.Count, err
}

func (r *reviewRepo) Update(rv *entities.Review) error { return r.db.Save(rv).Error }

func (r *reviewRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.Review{}).Error
}
