// internal/api/schedule_handlers.go
// Schedule generation, read, clear and export endpoints

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/export"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/realtime"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/repositories"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/scheduler"
	"github.com/bilalafzal6349/cricket-tournament-scheduler/internal/services"

	"github.com/gin-gonic/gin"
)

// ScheduleHandlers bundles the scheduling endpoints
type ScheduleHandlers struct {
	services *services.Container
	hub      *realtime.Hub
}

// Generate runs the constraint solver and commits the resulting schedule.
// Configuration and feasibility failures map to 400-class responses; solver
// and store internals map to 500-class.
func (h *ScheduleHandlers) Generate(c *gin.Context) {
	tournamentID := c.Param("id")

	var opts scheduler.Options
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&opts); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.services.Schedule.Generate(c.Request.Context(), tournamentID, &opts)
	if err != nil {
		c.JSON(scheduleErrorStatus(err), result)
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(tournamentID, realtime.EventScheduleGenerated, gin.H{
			"matches_scheduled": result.MatchesScheduled,
			"status":            result.Status,
		})
	}

	c.JSON(http.StatusOK, result)
}

// scheduleErrorStatus maps engine error kinds onto HTTP status codes
func scheduleErrorStatus(err error) int {
	var (
		configErr      *scheduler.ConfigError
		infeasibleErr  *scheduler.InfeasibilityError
		timeoutErr     *scheduler.SolverTimeoutError
		solverInternal *scheduler.SolverInternalError
	)

	switch {
	case errors.Is(err, scheduler.ErrTournamentNotFound):
		return http.StatusNotFound
	case errors.As(err, &configErr), errors.As(err, &infeasibleErr), errors.As(err, &timeoutErr):
		return http.StatusBadRequest
	case errors.As(err, &solverInternal):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Matches returns the tournament's schedule ordered by start time
func (h *ScheduleHandlers) Matches(c *gin.Context) {
	matches, err := h.services.Schedule.Matches(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// Clear removes the tournament's scheduled matches
func (h *ScheduleHandlers) Clear(c *gin.Context) {
	tournamentID := c.Param("id")

	deleted, err := h.services.Schedule.Clear(c.Request.Context(), tournamentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear schedule"})
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(tournamentID, realtime.EventScheduleCleared, gin.H{"deleted_count": deleted})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("cleared %d matches from schedule", deleted),
		"deleted_count": deleted,
	})
}

// Export streams the schedule as an Excel workbook
func (h *ScheduleHandlers) Export(c *gin.Context) {
	ctx := c.Request.Context()
	tournamentID := c.Param("id")

	tournament, err := h.services.Tournament.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tournament not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tournament"})
		return
	}

	teams, err := h.services.Tournament.Teams(ctx, tournamentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load teams"})
		return
	}
	venues, err := h.services.Tournament.Venues(ctx, tournamentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load venues"})
		return
	}
	matches, err := h.services.Schedule.Matches(ctx, tournamentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}

	workbook, err := export.Workbook(tournament, teams, venues, matches)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build workbook"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", tournament.Name+"-schedule.xlsx"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
