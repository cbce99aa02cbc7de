package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/campushub/backend/internal/domain"
	"github.com/campushub/backend/internal/usecase/roommate"
	"github.com/gin-gonic/gin"
)

type RoommateHandler struct {
	roommateUseCase *roommate.RoommateUseCase
}

func NewRoommateHandler(roommateUseCase *roommate.RoommateUseCase) *RoommateHandler {
	return &RoommateHandler{
		roommateUseCase: roommateUseCase,
	}
}

// GetMyProfile handles GET /roommate/profile
// @Summary Get my roommate profile
// @Description Get current user's roommate profile, null if never saved
// @Tags roommate
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.RoommateProfile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roommate/profile [get]
func (h *RoommateHandler) GetMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	profile, err := h.roommateUseCase.GetMyProfile(c.Request.Context(), userID.(int))
	if err != nil {
		if err == domain.ErrRoommateProfileNotFound {
			// Never having saved a profile is a valid state, not an error.
			c.JSON(http.StatusOK, gin.H{"profile": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get roommate profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// SaveProfile handles POST /roommate/profile
// @Summary Save roommate profile
// @Description Create or update the roommate profile; matching re-runs in the background
// @Tags roommate
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body roommate.SaveProfileRequest true "Profile data"
// @Success 201 {object} domain.RoommateProfile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roommate/profile [post]
func (h *RoommateHandler) SaveProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	var req roommate.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	profile, err := h.roommateUseCase.SaveProfile(c.Request.Context(), userID.(int), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to save roommate profile",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Roommate profile saved. Finding your best matches...",
		"profile": profile,
	})
}

// DeactivateProfile handles DELETE /roommate/profile
func (h *RoommateHandler) DeactivateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	if err := h.roommateUseCase.DeactivateProfile(c.Request.Context(), userID.(int)); err != nil {
		if err == domain.ErrRoommateProfileNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "roommate profile not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to deactivate roommate profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Roommate profile deactivated."})
}

// GetMatches handles GET /roommate/matches
// @Summary List roommate matches
// @Description Get stored matches with counterpart details, best score first
// @Tags roommate
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.MatchDetail
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roommate/matches [get]
func (h *RoommateHandler) GetMatches(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	matches, err := h.roommateUseCase.GetMatches(c.Request.Context(), userID.(int))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get matches",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// FindMatches handles POST /roommate/find-matches
// @Summary Recompute roommate matches
// @Description Synchronously recompute and replace the match set
// @Tags roommate
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.MatchDetail
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roommate/find-matches [post]
func (h *RoommateHandler) FindMatches(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	ranked, matches, err := h.roommateUseCase.FindMatches(c.Request.Context(), userID.(int))
	if err != nil {
		if err == domain.ErrRoommateProfileNotFound {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "complete your roommate profile before running matching",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to find matches",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Found %d matches.", len(ranked)),
		"matches": matches,
	})
}

type updateMatchStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateMatchStatus handles PATCH /roommate/matches/:match_id
func (h *RoommateHandler) UpdateMatchStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid match_id",
		})
		return
	}

	var req updateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	updated, err := h.roommateUseCase.SetMatchStatus(
		c.Request.Context(), matchID, userID.(int), domain.MatchStatus(req.Status),
	)
	if err != nil {
		if err == domain.ErrInvalidMatchStatus {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "status must be one of: accepted, rejected",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update match status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Match %s.", req.Status),
		"updated": updated,
	})
}

// MatchInsight handles GET /roommate/matches/:match_id/insight
func (h *RoommateHandler) MatchInsight(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return
	}

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid match_id",
		})
		return
	}

	insight, err := h.roommateUseCase.MatchInsight(c.Request.Context(), matchID, userID.(int))
	if err != nil {
		if err == domain.ErrMatchNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "match not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to generate match insight",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"insight": insight})
}
