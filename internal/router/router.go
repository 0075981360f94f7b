package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateConference(c *ginext.Context)
	QueryConferences(c *ginext.Context)
	GetConference(c *ginext.Context)
	GetConferencesCreated(c *ginext.Context)
	GetConferencesToAttend(c *ginext.Context)
	RegisterForConference(c *ginext.Context)
	UnregisterFromConference(c *ginext.Context)

	CreateSession(c *ginext.Context)
	GetConferenceSessions(c *ginext.Context)
	GetSessionsBySpeaker(c *ginext.Context)
	QueryAllSessions(c *ginext.Context)

	GetProfile(c *ginext.Context)
	SaveProfile(c *ginext.Context)

	AddSessionToWishlist(c *ginext.Context)
	GetSessionsInWishlist(c *ginext.Context)

	GetAnnouncement(c *ginext.Context)
	GetSpeakerAnnouncement(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Open endpoints
		api.GET("/conferences/:key", h.GetConference)
		api.GET("/conferences/:key/sessions", h.GetConferenceSessions)
		api.POST("/queries/conferences", h.QueryConferences)
		api.POST("/queries/sessions", h.QueryAllSessions)
		api.GET("/speakers/:name/sessions", h.GetSessionsBySpeaker)
		api.GET("/announcements/conferences", h.GetAnnouncement)
		api.GET("/announcements/speakers", h.GetSpeakerAnnouncement)

		// Endpoints that act on behalf of the caller
		private := api.Group("", auth)
		{
			private.POST("/conferences", h.CreateConference)
			private.POST("/conferences/:key/registration", h.RegisterForConference)
			private.DELETE("/conferences/:key/registration", h.UnregisterFromConference)
			private.POST("/conferences/:key/sessions", h.CreateSession)

			private.GET("/profile", h.GetProfile)
			private.POST("/profile", h.SaveProfile)
			private.GET("/profile/attending", h.GetConferencesToAttend)
			private.GET("/profile/created", h.GetConferencesCreated)

			private.POST("/wishlist/:sessionKey", h.AddSessionToWishlist)
			private.GET("/wishlist", h.GetSessionsInWishlist)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
