package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/middleware"
)

// AchievementController handles student achievements and their
// verification workflow
type AchievementController struct {
	achievementService services.AchievementService
	logger             zerolog.Logger
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService services.AchievementService, logger zerolog.Logger) *AchievementController {
	return &AchievementController{
		achievementService: achievementService,
		logger:             logger,
	}
}

// CreateAchievement godoc
// @Summary Submit an achievement
// @Description Records an achievement for a student in the teacher's homeroom class. New achievements start unverified.
// @Tags achievements
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param request body dto.CreateAchievementRequest true "Achievement details"
// @Success 201 {object} dto.APIResponse{data=dto.AchievementResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid achievement type or level"
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/achievements [post]
func (c *AchievementController) CreateAchievement(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	achievement, err := c.achievementService.Create(ctx.Request.Context(), userID, studentID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to create achievement")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(achievement, "Achievement submitted"))
}

// ListAchievements godoc
// @Summary List a student's achievements
// @Tags achievements
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AchievementResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/achievements [get]
func (c *AchievementController) ListAchievements(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	achievements, err := c.achievementService.ListByStudent(ctx.Request.Context(), userID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievements, ""))
}

// UpdateAchievement godoc
// @Summary Update an achievement
// @Description Updates an achievement. Once verified, only the verifier may change it.
// @Tags achievements
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param achievementId path int true "Achievement ID"
// @Param request body dto.UpdateAchievementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.AchievementResponse}
// @Failure 403 {object} dto.ErrorResponse "Achievement is verified and locked"
// @Failure 404 {object} dto.ErrorResponse "Achievement not found"
// @Router /teacher/achievements/{achievementId} [put]
func (c *AchievementController) UpdateAchievement(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	achievementID, err := parseIDParam(ctx, "achievementId")
	if err != nil {
		invalidIDResponse(ctx, "achievementId")
		return
	}

	var req dto.UpdateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	achievement, err := c.achievementService.Update(ctx.Request.Context(), userID, achievementID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("achievementID", achievementID).Msg("Failed to update achievement")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievement, "Achievement updated"))
}

// DeleteAchievement godoc
// @Summary Delete an achievement
// @Description Deletes an achievement. Once verified, only the verifier may delete it.
// @Tags achievements
// @Produce json
// @Security ApiKeyAuth
// @Param achievementId path int true "Achievement ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Achievement is verified and locked"
// @Failure 404 {object} dto.ErrorResponse "Achievement not found"
// @Router /teacher/achievements/{achievementId} [delete]
func (c *AchievementController) DeleteAchievement(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	achievementID, err := parseIDParam(ctx, "achievementId")
	if err != nil {
		invalidIDResponse(ctx, "achievementId")
		return
	}

	if err := c.achievementService.Delete(ctx.Request.Context(), userID, achievementID); err != nil {
		c.logger.Error().Err(err).Int64("achievementID", achievementID).Msg("Failed to delete achievement")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Achievement deleted"))
}

// ListPendingAchievements godoc
// @Summary List achievements awaiting verification
// @Description Lists all unverified achievements in submission order
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AchievementResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/achievements/pending [get]
func (c *AchievementController) ListPendingAchievements(ctx *gin.Context) {
	achievements, err := c.achievementService.ListPending(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list pending achievements")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievements, ""))
}

// VerifyAchievement godoc
// @Summary Verify or reject an achievement
// @Description Sets an achievement's verification status. The verifier becomes the only user allowed to change the record afterwards.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param achievementId path int true "Achievement ID"
// @Param request body dto.VerifyAchievementRequest true "Verification decision"
// @Success 200 {object} dto.APIResponse{data=dto.AchievementResponse}
// @Failure 403 {object} dto.ErrorResponse "Achievement was verified by someone else"
// @Failure 404 {object} dto.ErrorResponse "Achievement not found"
// @Router /admin/achievements/{achievementId}/verify [post]
func (c *AchievementController) VerifyAchievement(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	achievementID, err := parseIDParam(ctx, "achievementId")
	if err != nil {
		invalidIDResponse(ctx, "achievementId")
		return
	}

	var req dto.VerifyAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	achievement, err := c.achievementService.Verify(ctx.Request.Context(), userID, achievementID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("achievementID", achievementID).Msg("Failed to verify achievement")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("achievementID", achievementID).
		Int64("verifierUserID", userID).
		Str("status", achievement.Status).
		Msg("Achievement verification recorded")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievement, "Verification recorded"))
}
