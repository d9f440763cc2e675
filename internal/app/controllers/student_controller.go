package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/middleware"
)

// StudentController handles the homeroom teacher's student operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetRoster godoc
// @Summary Get my homeroom roster
// @Description Lists the active students of the authenticated teacher's homeroom class with class statistics
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 400 {object} dto.ErrorResponse "No homeroom class assigned"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students [get]
func (c *StudentController) GetRoster(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	roster, err := c.studentService.GetRoster(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to load roster")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster, ""))
}

// CreateStudent godoc
// @Summary Register a student
// @Description Registers a new student in the teacher's homeroom class. Accepts multipart form data with an optional photo.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param nisn formData string true "National student number"
// @Param name formData string true "Full name"
// @Param gender formData string true "Gender (male or female)"
// @Param entryYear formData int true "Entry year"
// @Param photo formData file false "Student photo"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "NISN already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Photo is optional; FormFile errors just mean none was sent
	photo, _ := ctx.FormFile("photo")

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), userID, &req, photo)
	if err != nil {
		c.logger.Error().Err(err).Str("nisn", req.NISN).Msg("Failed to register student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", student.ID).
		Str("nisn", student.NISN).
		Msg("Student registered")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student registered successfully"))
}

// GetStudentDetail godoc
// @Summary Get a student's full profile
// @Description Returns a student's profile together with their notes, disciplinary records, extracurricular history, achievements and documents
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentDetailResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students/{id} [get]
func (c *StudentController) GetStudentDetail(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	detail, err := c.studentService.GetStudentDetail(ctx.Request.Context(), userID, studentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to load student detail")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail, ""))
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Updates a student's editable fields. Class placement cannot be changed here. Accepts multipart form data with an optional replacement photo.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param photo formData file false "Replacement photo"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class or class change attempted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	photo, _ := ctx.FormFile("photo")

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), userID, studentID, &req, photo)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to update student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated successfully"))
}

// RemoveStudent godoc
// @Summary Remove a student from my roster
// @Description Detaches the student from the teacher's homeroom. The student record itself is kept.
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students/{id} [delete]
func (c *StudentController) RemoveStudent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	if err := c.studentService.RemoveStudent(ctx.Request.Context(), userID, studentID); err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to remove student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", studentID).Msg("Student removed from roster")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student removed from roster"))
}

// GetBehaviorSummary godoc
// @Summary Get a student's behavior summary
// @Description Returns the student's behavior score with counts and the most recent records
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.BehaviorSummaryResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students/{id}/behavior [get]
func (c *StudentController) GetBehaviorSummary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	summary, err := c.studentService.GetBehaviorSummary(ctx.Request.Context(), userID, studentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to build behavior summary")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}

// GetAcademicSummary godoc
// @Summary Get a student's academic summary
// @Description Returns the student's per-subject grade averages and overall average
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.AcademicSummaryResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/students/{id}/academic [get]
func (c *StudentController) GetAcademicSummary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	summary, err := c.studentService.GetAcademicSummary(ctx.Request.Context(), userID, studentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to build academic summary")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}
