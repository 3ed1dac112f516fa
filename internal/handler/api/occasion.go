package api

import (
	"errors"
	"net/http"

	reqdto "gift-occasions/internal/handler/dto/request"
	resdto "gift-occasions/internal/handler/dto/response"
	"gift-occasions/internal/usecase/commands"
	"gift-occasions/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OccasionHandler struct {
	occasionCommands commands.OccasionCommands
	occasionQueries  queries.OccasionQueries
}

func NewOccasionHandler(occasionCommands commands.OccasionCommands, occasionQueries queries.OccasionQueries) *OccasionHandler {
	return &OccasionHandler{
		occasionCommands: occasionCommands,
		occasionQueries:  occasionQueries,
	}
}

// @Summary Create occasion
// @Description Persist a new occasion and schedule its notification job
// @Tags occasions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOccasionRequest true "Occasion to create"
// @Success 201 {object} resdto.CreateOccasionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /occasions [post]
func (h *OccasionHandler) CreateOccasion(c *gin.Context) {
	var req reqdto.CreateOccasionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.occasionCommands.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidOccasion):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid occasion",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOccasionResponse{ID: id})
}

// @Summary Get occasion
// @Description Get occasion by ID
// @Tags occasions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occasion ID"
// @Success 200 {object} resdto.OccasionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /occasions/{id} [get]
func (h *OccasionHandler) GetOccasion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	occ, err := h.occasionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOccasionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Occasion not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccasion(occ))
}

// @Summary List occasions by group
// @Description List all occasions registered for a group
// @Tags occasions
// @Produce json
// @Security BearerAuth
// @Param groupId query string true "Group ID"
// @Success 200 {array} resdto.OccasionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /occasions [get]
func (h *OccasionHandler) ListOccasions(c *gin.Context) {
	groupID := c.Query("groupId")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "groupId query parameter required",
		})
		return
	}

	occs, err := h.occasionQueries.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OccasionResponse, len(occs))
	for i := range occs {
		response[i] = resdto.FromOccasion(&occs[i])
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update occasion
// @Description Replace the occasion record and reschedule its job
// @Tags occasions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occasion ID"
// @Param request body reqdto.UpdateOccasionRequest true "Replacement occasion"
// @Success 200 {object} resdto.OccasionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /occasions/{id} [put]
func (h *OccasionHandler) UpdateOccasion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOccasionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	occ := req.ToDomain(id)
	if err := h.occasionCommands.Update(c.Request.Context(), occ); err != nil {
		switch {
		case errors.Is(err, commands.ErrOccasionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Occasion not found",
			})
		case errors.Is(err, commands.ErrInvalidOccasion):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid occasion",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccasion(&occ))
}

// @Summary Delete occasion
// @Description Cancel the scheduled job and remove the occasion record
// @Tags occasions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occasion ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /occasions/{id} [delete]
func (h *OccasionHandler) DeleteOccasion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.occasionCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrOccasionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Occasion not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Run occasion now
// @Description Cancel any pending timer and execute the notification workflow immediately
// @Tags occasions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Occasion ID"
// @Success 200 {object} resdto.RunOccasionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /occasions/{id}/run [post]
func (h *OccasionHandler) RunOccasion(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	attempt, err := h.occasionCommands.Run(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOccasionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Occasion not found",
			})
		case errors.Is(err, commands.ErrUpstreamLookupFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Upstream lookup failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAttempt(attempt))
}

func (h *OccasionHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid occasion ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
