// internal/api/routes.go
// Route registration for all endpoint groups

package api

import (
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/middleware"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/realtime"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes mounts the authentication endpoints
func RegisterAuthRoutes(rg *gin.RouterGroup, svc *services.Container) {
	h := &AuthHandlers{services: svc}

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// RegisterTournamentRoutes mounts tournament management and scheduling
// endpoints. Reads require authentication; mutations and schedule
// generation require the admin role.
func RegisterTournamentRoutes(rg *gin.RouterGroup, svc *services.Container, hub *realtime.Hub) {
	th := &TournamentHandlers{services: svc}
	sh := &ScheduleHandlers{services: svc, hub: hub}

	tournaments := rg.Group("/tournaments", middleware.RequireAuth(svc.Auth))
	{
		tournaments.GET("", th.List)
		tournaments.GET("/:id", th.Get)
		tournaments.GET("/:id/teams", th.ListTeams)
		tournaments.GET("/:id/venues", th.ListVenues)
		tournaments.GET("/:id/matches", sh.Matches)
		tournaments.GET("/:id/schedule.xlsx", sh.Export)
	}

	admin := rg.Group("/tournaments")
	admin.Use(adminOnly(svc)...)
	{
		admin.POST("", th.Create)
		admin.DELETE("/:id", th.Delete)
		admin.POST("/:id/teams", th.AddTeam)
		admin.DELETE("/:id/teams/:teamId", th.RemoveTeam)
		admin.POST("/:id/venues", th.AddVenue)
		admin.DELETE("/:id/venues/:venueId", th.RemoveVenue)
		admin.POST("/:id/generate-schedule", sh.Generate)
		admin.DELETE("/:id/matches", sh.Clear)
	}
}

func adminOnly(svc *services.Container) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.RequireAuth(svc.Auth),
		middleware.RequireAdmin(),
	}
}
