package repository

import "mannam/entities"

type PhotoCardRepository interface {
	Create(card *entities.PhotoCard) error
	// ByID returns only active cards.
	ByID(id string) (*entities.PhotoCard, error)
	Verify(id string) (bool, error)
}
