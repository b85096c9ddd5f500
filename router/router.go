package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	cardCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		Verify(echo.Context) error
	},
	sessionCtrl interface {
		Submit(echo.Context) error
		Status(echo.Context) error
		Recommendation(echo.Context) error
	},
	hashtagCtrl interface {
		Generate(echo.Context) error
		GenerateFromURL(echo.Context) error
		Context(echo.Context) error
	},
	recommendCtrl interface{ Recommend(echo.Context) error },
	reviewCtrl interface {
		Create(echo.Context) error
		ListByPlace(echo.Context) error
		PlaceRating(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")

	api.POST("/hashtag", hashtagCtrl.Generate)
	api.POST("/hashtag/url", hashtagCtrl.GenerateFromURL)
	api.GET("/session/:id", hashtagCtrl.Context)

	api.POST("/recommend", recommendCtrl.Recommend)

	api.POST("/photo_cards", cardCtrl.Create)
	api.GET("/photo_cards/:id", cardCtrl.Get)
	api.GET("/photo_cards/:id/verify", cardCtrl.Verify)

	api.POST("/sessions/:photo_card_id", sessionCtrl.Submit)
	api.GET("/sessions/status/:photo_card_id", sessionCtrl.Status)
	api.GET("/sessions/recommendation/:photo_card_id", sessionCtrl.Recommendation)

	api.POST("/reviews", reviewCtrl.Create)
	api.GET("/reviews/place/:place_id", reviewCtrl.ListByPlace)
	api.GET("/reviews/place/:place_id/rating", reviewCtrl.PlaceRating)
	api.PATCH("/reviews/:id", reviewCtrl.Update)
	api.DELETE("/reviews/:id", reviewCtrl.Delete)

	return e
}
