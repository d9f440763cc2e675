package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/middleware"
)

// SubjectController handles the teacher's subject assignments and
// administrative work tracking
type SubjectController struct {
	subjectService services.SubjectService
	logger         zerolog.Logger
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService, logger zerolog.Logger) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
		logger:         logger,
	}
}

// ListMySubjects godoc
// @Summary List my subjects
// @Description Lists the subjects assigned to the authenticated teacher with per-subject work completion
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.SubjectListResponse}
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/subjects [get]
func (c *SubjectController) ListMySubjects(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListMySubjects(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to list subjects")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects, ""))
}

// GetSubjectDetail godoc
// @Summary Get a subject's detail
// @Description Returns the subject with its enrolled students and the teacher's work item progress
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectDetailResponse}
// @Failure 403 {object} dto.ErrorResponse "Subject is not assigned to you"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /teacher/subjects/{id} [get]
func (c *SubjectController) GetSubjectDetail(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	subjectID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	detail, err := c.subjectService.GetSubjectDetail(ctx.Request.Context(), userID, subjectID)
	if err != nil {
		c.logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Failed to load subject detail")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail, ""))
}

// InitWorkFolders godoc
// @Summary Create remote folders for a subject's work items
// @Description Creates one remote storage folder per administrative work item for this subject. Items that already have a folder are skipped, so the operation is safe to repeat.
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.InitFoldersResponse}
// @Failure 400 {object} dto.ErrorResponse "Remote storage is not configured"
// @Failure 403 {object} dto.ErrorResponse "Subject is not assigned to you"
// @Failure 502 {object} dto.ErrorResponse "Remote storage failure"
// @Router /teacher/subjects/{id}/folders [post]
func (c *SubjectController) InitWorkFolders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	subjectID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	result, err := c.subjectService.InitWorkFolders(ctx.Request.Context(), userID, subjectID)
	if err != nil {
		c.logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Failed to initialize work folders")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("subjectID", subjectID).
		Int("created", result.FoldersCreated).
		Int("skipped", result.FoldersSkipped).
		Msg("Work folders initialized")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Work folders initialized"))
}

// UploadWorkFile godoc
// @Summary Upload an administrative work file
// @Description Uploads a file as evidence for one of the subject's work items. The item counts as completed once it has at least one file.
// @Tags subjects
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param itemId path int true "Work item ID"
// @Param file formData file true "Work file"
// @Success 201 {object} dto.APIResponse{data=dto.WorkFileResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Failure 403 {object} dto.ErrorResponse "Subject is not assigned to you"
// @Failure 502 {object} dto.ErrorResponse "File storage failure"
// @Router /teacher/subjects/{id}/work/{itemId}/files [post]
func (c *SubjectController) UploadWorkFile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	subjectID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	workItemID, err := parseIDParam(ctx, "itemId")
	if err != nil {
		invalidIDResponse(ctx, "itemId")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Work file is required")
		errorDetail = errorDetail.WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	workFile, err := c.subjectService.UploadWorkFile(ctx.Request.Context(), userID, subjectID, workItemID, file)
	if err != nil {
		c.logger.Error().Err(err).
			Int64("subjectID", subjectID).
			Int64("workItemID", workItemID).
			Str("fileName", file.Filename).
			Msg("Failed to upload work file")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(workFile, "Work file uploaded"))
}

// ListWorkFiles godoc
// @Summary List the files uploaded for a work item
// @Tags subjects
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param itemId path int true "Work item ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.WorkFileResponse}
// @Failure 403 {object} dto.ErrorResponse "Subject is not assigned to you"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /teacher/subjects/{id}/work/{itemId}/files [get]
func (c *SubjectController) ListWorkFiles(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	subjectID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	workItemID, err := parseIDParam(ctx, "itemId")
	if err != nil {
		invalidIDResponse(ctx, "itemId")
		return
	}

	files, err := c.subjectService.ListWorkFiles(ctx.Request.Context(), userID, subjectID, workItemID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(files, ""))
}
