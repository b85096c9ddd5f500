package repository

import "mannam/entities"

type ReviewRepository interface {
	Create(r *entities.Review) error
	ByID(id string) (*entities.Review, error)
	ListByPlace(placeID string, limit, offset int) ([]entities.Review, error)
	ListByPhotoCard(photoCardID string) ([]entities.Review, error)
	PlaceRating(placeID string) (avg float64, count int64, err error)
	Update(r *entities.Review) error
	Delete(id string) error
}
