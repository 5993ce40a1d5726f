package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetingflow-team/meeting-publisher/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg       *config.Config
	auth      *Auth
	meetings  *Meetings
	wordpress *WordPress
	social    *Social
	publisher *Publisher
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, auth *Auth, meetings *Meetings, wordpress *WordPress, social *Social, pub *Publisher) *Router {
	return &Router{
		cfg:       cfg,
		auth:      auth,
		meetings:  meetings,
		wordpress: wordpress,
		social:    social,
		publisher: pub,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupAuthRoutes(api)
	rt.setupMeetingRoutes(api)
	rt.setupWordPressRoutes(api)
	rt.setupSocialRoutes(api)
	rt.setupPublishRoutes(api)
}

// setupAuthRoutes configures API-key session routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/login", rt.auth.Login)
	authGroup.POST("/logout", rt.auth.Logout)
}

// setupMeetingRoutes configures transcript listing and processing routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.POST("/meetings", rt.meetings.List)
	g.POST("/process-meeting", rt.meetings.Process)
	g.GET("/processed", rt.meetings.Processed)
	g.GET("/processed/:id/blog-post", rt.meetings.DownloadBlogPost)
}

// setupWordPressRoutes configures the direct CMS routes
func (rt *Router) setupWordPressRoutes(g *echo.Group) {
	wpGroup := g.Group("/wordpress")
	wpGroup.POST("/post", rt.wordpress.Create)
	wpGroup.DELETE("/delete", rt.wordpress.Delete)
}

// setupSocialRoutes configures the direct social network routes
func (rt *Router) setupSocialRoutes(g *echo.Group) {
	socialGroup := g.Group("/social")
	socialGroup.POST("/linkedin", rt.social.LinkedInPost)
	socialGroup.DELETE("/linkedin/delete", rt.social.LinkedInDelete)
	socialGroup.POST("/twitter", rt.social.TwitterPost)
	socialGroup.DELETE("/twitter/delete", rt.social.TwitterDelete)
}

// setupPublishRoutes configures the batch publish, tracked delete and
// credential routes
func (rt *Router) setupPublishRoutes(g *echo.Group) {
	g.POST("/publish", rt.publisher.Publish)
	g.DELETE("/posts/delete", rt.publisher.DeletePost)
	g.GET("/credentials", rt.publisher.GetCredentials)
	g.PUT("/credentials", rt.publisher.SaveCredentials)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
