package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/middleware"
)

// RecordController handles positive notes and disciplinary records
type RecordController struct {
	recordService services.RecordService
	logger        zerolog.Logger
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService services.RecordService, logger zerolog.Logger) *RecordController {
	return &RecordController{
		recordService: recordService,
		logger:        logger,
	}
}

// CreatePositiveNote godoc
// @Summary Add a positive note
// @Description Records a positive note for a student in the teacher's homeroom class. The date defaults to today.
// @Tags records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param request body dto.CreatePositiveNoteRequest true "Note content"
// @Success 201 {object} dto.APIResponse{data=dto.PositiveNoteResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or future date"
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/notes [post]
func (c *RecordController) CreatePositiveNote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.CreatePositiveNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	note, err := c.recordService.CreatePositiveNote(ctx.Request.Context(), userID, studentID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to create positive note")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(note, "Positive note recorded"))
}

// ListPositiveNotes godoc
// @Summary List a student's positive notes
// @Tags records
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.PositiveNoteResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/notes [get]
func (c *RecordController) ListPositiveNotes(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	notes, err := c.recordService.ListPositiveNotes(ctx.Request.Context(), userID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notes, ""))
}

// UpdatePositiveNote godoc
// @Summary Update a positive note
// @Description Updates a positive note. Only the staff member who wrote the note may change it.
// @Tags records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path int true "Note ID"
// @Param request body dto.UpdatePositiveNoteRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.PositiveNoteResponse}
// @Failure 403 {object} dto.ErrorResponse "Note belongs to another staff member"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /teacher/notes/{noteId} [put]
func (c *RecordController) UpdatePositiveNote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	noteID, err := parseIDParam(ctx, "noteId")
	if err != nil {
		invalidIDResponse(ctx, "noteId")
		return
	}

	var req dto.UpdatePositiveNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	note, err := c.recordService.UpdatePositiveNote(ctx.Request.Context(), userID, noteID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("noteID", noteID).Msg("Failed to update positive note")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(note, "Positive note updated"))
}

// DeletePositiveNote godoc
// @Summary Delete a positive note
// @Tags records
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path int true "Note ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Note belongs to another staff member"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Router /teacher/notes/{noteId} [delete]
func (c *RecordController) DeletePositiveNote(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	noteID, err := parseIDParam(ctx, "noteId")
	if err != nil {
		invalidIDResponse(ctx, "noteId")
		return
	}

	if err := c.recordService.DeletePositiveNote(ctx.Request.Context(), userID, noteID); err != nil {
		c.logger.Error().Err(err).Int64("noteID", noteID).Msg("Failed to delete positive note")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Positive note deleted"))
}

// CreateDisciplinaryRecord godoc
// @Summary Add a disciplinary record
// @Description Records a disciplinary incident for a student in the teacher's homeroom class. The incident date defaults to today.
// @Tags records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param request body dto.CreateDisciplinaryRecordRequest true "Incident details"
// @Success 201 {object} dto.APIResponse{data=dto.DisciplinaryRecordResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or future date"
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/disciplinary [post]
func (c *RecordController) CreateDisciplinaryRecord(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.CreateDisciplinaryRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.recordService.CreateDisciplinaryRecord(ctx.Request.Context(), userID, studentID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to create disciplinary record")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record, "Disciplinary record created"))
}

// ListDisciplinaryRecords godoc
// @Summary List a student's disciplinary records
// @Tags records
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.DisciplinaryRecordResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/disciplinary [get]
func (c *RecordController) ListDisciplinaryRecords(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	records, err := c.recordService.ListDisciplinaryRecords(ctx.Request.Context(), userID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(records, ""))
}

// UpdateDisciplinaryRecord godoc
// @Summary Update a disciplinary record
// @Description Updates a disciplinary record. Only the staff member who filed it may change it.
// @Tags records
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param recordId path int true "Record ID"
// @Param request body dto.UpdateDisciplinaryRecordRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.DisciplinaryRecordResponse}
// @Failure 403 {object} dto.ErrorResponse "Record belongs to another staff member"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /teacher/disciplinary/{recordId} [put]
func (c *RecordController) UpdateDisciplinaryRecord(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	recordID, err := parseIDParam(ctx, "recordId")
	if err != nil {
		invalidIDResponse(ctx, "recordId")
		return
	}

	var req dto.UpdateDisciplinaryRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.recordService.UpdateDisciplinaryRecord(ctx.Request.Context(), userID, recordID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("recordID", recordID).Msg("Failed to update disciplinary record")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record, "Disciplinary record updated"))
}

// DeleteDisciplinaryRecord godoc
// @Summary Delete a disciplinary record
// @Tags records
// @Produce json
// @Security ApiKeyAuth
// @Param recordId path int true "Record ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Record belongs to another staff member"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /teacher/disciplinary/{recordId} [delete]
func (c *RecordController) DeleteDisciplinaryRecord(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	recordID, err := parseIDParam(ctx, "recordId")
	if err != nil {
		invalidIDResponse(ctx, "recordId")
		return
	}

	if err := c.recordService.DeleteDisciplinaryRecord(ctx.Request.Context(), userID, recordID); err != nil {
		c.logger.Error().Err(err).Int64("recordID", recordID).Msg("Failed to delete disciplinary record")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Disciplinary record deleted"))
}
