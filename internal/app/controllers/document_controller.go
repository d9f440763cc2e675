package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/middleware"
)

// DocumentController handles student document uploads and downloads
type DocumentController struct {
	documentService services.DocumentService
	logger          zerolog.Logger
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService services.DocumentService, logger zerolog.Logger) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		logger:          logger,
	}
}

// UploadDocument godoc
// @Summary Upload a student document
// @Description Stores a document for a student in the teacher's homeroom class. The file is written to storage before the record is created.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param title formData string true "Document title"
// @Param documentType formData string true "Document type"
// @Param description formData string false "Description"
// @Param file formData file true "Document file"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or missing file"
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 502 {object} dto.ErrorResponse "File storage failure"
// @Router /teacher/students/{id}/documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.UploadDocumentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Document file is required")
		errorDetail = errorDetail.WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	document, err := c.documentService.Upload(ctx.Request.Context(), userID, studentID, &req, file)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", studentID).Str("fileName", file.Filename).Msg("Failed to upload document")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("documentID", document.ID).
		Int64("studentID", studentID).
		Msg("Document uploaded")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(document, "Document uploaded"))
}

// ListDocuments godoc
// @Summary List a student's documents
// @Tags documents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.DocumentResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /teacher/students/{id}/documents [get]
func (c *DocumentController) ListDocuments(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	studentID, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	documents, err := c.documentService.ListByStudent(ctx.Request.Context(), userID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(documents, ""))
}

// DownloadDocument godoc
// @Summary Get a document download link
// @Description Resolves the stored file's download location
// @Tags documents
// @Produce json
// @Security ApiKeyAuth
// @Param documentId path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.DownloadURLResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /teacher/documents/{documentId}/download [get]
func (c *DocumentController) DownloadDocument(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	documentID, err := parseIDParam(ctx, "documentId")
	if err != nil {
		invalidIDResponse(ctx, "documentId")
		return
	}

	url, err := c.documentService.GetDownloadURL(ctx.Request.Context(), userID, documentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DownloadURLResponse{URL: url}, ""))
}

// DeleteDocument godoc
// @Summary Delete a document
// @Description Removes the document record and its stored file. A storage cleanup failure is reported as a warning, not an error.
// @Tags documents
// @Produce json
// @Security ApiKeyAuth
// @Param documentId path int true "Document ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteDocumentResponse}
// @Failure 403 {object} dto.ErrorResponse "Student is not in your homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /teacher/documents/{documentId} [delete]
func (c *DocumentController) DeleteDocument(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	documentID, err := parseIDParam(ctx, "documentId")
	if err != nil {
		invalidIDResponse(ctx, "documentId")
		return
	}

	result, err := c.documentService.Delete(ctx.Request.Context(), userID, documentID)
	if err != nil {
		c.logger.Error().Err(err).Int64("documentID", documentID).Msg("Failed to delete document")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Document deleted"))
}
