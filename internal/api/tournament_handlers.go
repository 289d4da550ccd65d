// internal/api/tournament_handlers.go
// Tournament, team and venue CRUD endpoints

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/repositories"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// TournamentHandlers bundles the tournament management endpoints
type TournamentHandlers struct {
	services *services.Container
}

// Create creates a new tournament
func (h *TournamentHandlers) Create(c *gin.Context) {
	var req services.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.services.Tournament.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tournament"})
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// Get retrieves a tournament by ID
func (h *TournamentHandlers) Get(c *gin.Context) {
	tournament, err := h.services.Tournament.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tournament"})
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// List retrieves tournaments with pagination
func (h *TournamentHandlers) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tournaments, err := h.services.Tournament.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tournaments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tournaments": tournaments})
}

// Delete removes a tournament
func (h *TournamentHandlers) Delete(c *gin.Context) {
	if err := h.services.Tournament.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tournament"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tournament deleted"})
}

// AddTeam registers a team in the tournament
func (h *TournamentHandlers) AddTeam(c *gin.Context) {
	var req services.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.services.Tournament.AddTeam(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
		case errors.Is(err, services.ErrDuplicateTeamCode):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add team"})
		}
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams lists the tournament's teams
func (h *TournamentHandlers) ListTeams(c *gin.Context) {
	teams, err := h.services.Tournament.Teams(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// RemoveTeam deletes a team
func (h *TournamentHandlers) RemoveTeam(c *gin.Context) {
	if err := h.services.Tournament.RemoveTeam(c.Request.Context(), c.Param("teamId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team removed"})
}

// AddVenue creates a venue for the tournament
func (h *TournamentHandlers) AddVenue(c *gin.Context) {
	var req services.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue, err := h.services.Tournament.AddVenue(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add venue"})
		return
	}

	c.JSON(http.StatusCreated, venue)
}

// ListVenues lists the tournament's venues
func (h *TournamentHandlers) ListVenues(c *gin.Context) {
	venues, err := h.services.Tournament.Venues(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// RemoveVenue deletes a venue
func (h *TournamentHandlers) RemoveVenue(c *gin.Context) {
	if err := h.services.Tournament.RemoveVenue(c.Request.Context(), c.Param("venueId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove venue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "venue removed"})
}
