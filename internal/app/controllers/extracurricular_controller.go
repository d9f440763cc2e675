package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/middleware"
)

// ExtracurricularController handles extracurricular activities and
// per-student participation history
type ExtracurricularController struct {
	extraService services.ExtracurricularService
	logger       zerolog.Logger
}

// NewExtracurricularController creates a new ExtracurricularController
func NewExtracurricularController(extraService services.ExtracurricularService, logger zerolog.Logger) *ExtracurricularController {
	return &ExtracurricularController{
		extraService: extraService,
		logger:       logger,
	}
}

// ListActivities godoc
// @Summary List extracurricular activities
// @Description Lists the school's extracurricular activities available for enrollment
// @Tags extracurriculars
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ExtracurricularResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/extracurriculars [get]
func (c *ExtracurricularController) ListActivities(ctx *gin.Context) {
	activities, err := c.extraService.ListActivities(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list extracurricular activities")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activities, ""))
}

// CreateHistory godoc
// @Summary Record extracurricular participation
// @Description Adds an extracurricular participation entry for a student in the teacher's homeroom class
// @Tags extracurriculars
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param request body dto.CreateExtracurricularHistoryRequest true "Participation details"
// @Success 201 {object} dto.APIResponse{data=dto.ExtracurricularHistoryResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or end date not after start date"
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student or activity not found"
// @Router /teacher/students/{id}/extracurriculars [post]
func (c *ExtracurricularController) CreateHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.CreateExtracurricularHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	history, err := c.extraService.CreateHistory(ctx.Request.Context(), userID, studentID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to record extracurricular participation")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(history, "Participation recorded"))
}

// ListHistory godoc
// @Summary List a student's extracurricular history
// @Tags extracurriculars
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ExtracurricularHistoryResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/extracurriculars [get]
func (c *ExtracurricularController) ListHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	history, err := c.extraService.ListHistory(ctx.Request.Context(), userID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(history, ""))
}

// UpdateHistory godoc
// @Summary Update an extracurricular history entry
// @Description Updates a participation entry, for example to close it with an end date
// @Tags extracurriculars
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param historyId path int true "History entry ID"
// @Param request body dto.UpdateExtracurricularHistoryRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ExtracurricularHistoryResponse}
// @Failure 400 {object} dto.ErrorResponse "End date not after start date"
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /teacher/extracurricular-history/{historyId} [put]
func (c *ExtracurricularController) UpdateHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	historyID, err := parseIDParam(ctx, "historyId")
	if err != nil {
		invalidIDResponse(ctx, "historyId")
		return
	}

	var req dto.UpdateExtracurricularHistoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	history, err := c.extraService.UpdateHistory(ctx.Request.Context(), userID, historyID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("historyID", historyID).Msg("Failed to update extracurricular history")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(history, "Participation updated"))
}

// DeleteHistory godoc
// @Summary Delete an extracurricular history entry
// @Tags extracurriculars
// @Produce json
// @Security ApiKeyAuth
// @Param historyId path int true "History entry ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /teacher/extracurricular-history/{historyId} [delete]
func (c *ExtracurricularController) DeleteHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	historyID, err := parseIDParam(ctx, "historyId")
	if err != nil {
		invalidIDResponse(ctx, "historyId")
		return
	}

	if err := c.extraService.DeleteHistory(ctx.Request.Context(), userID, historyID); err != nil {
		c.logger.Error().Err(err).Int64("historyID", historyID).Msg("Failed to delete extracurricular history")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Participation entry deleted"))
}
