package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/app/services"
	"github.com/sekolahku/sekolahku/internal/middleware"
	"github.com/sekolahku/sekolahku/internal/pkg/helpers"
)

// AdminController handles the administrative surface: staff, classes,
// subjects, reference data and the school-wide student directory
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// --- Staff ---

// CreateStaff godoc
// @Summary Register a staff member
// @Description Registers a staff member. When an email is provided a teacher login is provisioned as well.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateStaffRequest true "Staff information"
// @Success 201 {object} dto.APIResponse{data=dto.StaffResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or missing password"
// @Failure 409 {object} dto.ErrorResponse "NIP, email or homeroom class already taken"
// @Router /admin/staff [post]
func (c *AdminController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.adminService.CreateStaff(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("nip", req.NIP).Msg("Failed to register staff")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("staffID", staff.ID).Str("nip", staff.NIP).Msg("Staff registered")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(staff, "Staff registered successfully"))
}

// ListStaff godoc
// @Summary List staff members
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StaffResponse}
// @Router /admin/staff [get]
func (c *AdminController) ListStaff(ctx *gin.Context) {
	staff, err := c.adminService.ListStaff(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// GetStaff godoc
// @Summary Get a staff member
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse}
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Router /admin/staff/{id} [get]
func (c *AdminController) GetStaff(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	staff, err := c.adminService.GetStaff(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, ""))
}

// UpdateStaff godoc
// @Summary Update a staff member
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.StaffResponse}
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Failure 409 {object} dto.ErrorResponse "Homeroom class already taken"
// @Router /admin/staff/{id} [put]
func (c *AdminController) UpdateStaff(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff, err := c.adminService.UpdateStaff(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("staffID", id).Msg("Failed to update staff")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(staff, "Staff updated successfully"))
}

// DeleteStaff godoc
// @Summary Delete a staff member
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Staff not found"
// @Router /admin/staff/{id} [delete]
func (c *AdminController) DeleteStaff(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	if err := c.adminService.DeleteStaff(ctx.Request.Context(), id); err != nil {
		c.logger.Error().Err(err).Int64("staffID", id).Msg("Failed to delete staff")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Staff deleted successfully"))
}

// --- Classes ---

// CreateClass godoc
// @Summary Create a class
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateClassRequest true "Class information"
// @Success 201 {object} dto.APIResponse{data=dto.ClassResponse}
// @Failure 409 {object} dto.ErrorResponse "Class name already exists"
// @Router /admin/classes [post]
func (c *AdminController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.adminService.CreateClass(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create class")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(class, "Class created successfully"))
}

// ListClasses godoc
// @Summary List classes
// @Description Lists all classes with homeroom teacher and active student count
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassResponse}
// @Router /admin/classes [get]
func (c *AdminController) ListClasses(ctx *gin.Context) {
	classes, err := c.adminService.ListClasses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(classes, ""))
}

// UpdateClass godoc
// @Summary Update a class
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Class ID"
// @Param request body dto.UpdateClassRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ClassResponse}
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /admin/classes/{id} [put]
func (c *AdminController) UpdateClass(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.UpdateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	class, err := c.adminService.UpdateClass(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("classID", id).Msg("Failed to update class")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(class, "Class updated successfully"))
}

// DeleteClass godoc
// @Summary Delete a class
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Router /admin/classes/{id} [delete]
func (c *AdminController) DeleteClass(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	if err := c.adminService.DeleteClass(ctx.Request.Context(), id); err != nil {
		c.logger.Error().Err(err).Int64("classID", id).Msg("Failed to delete class")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Class deleted successfully"))
}

// --- Subjects ---

// CreateSubject godoc
// @Summary Create a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=dto.SubjectResponse}
// @Failure 409 {object} dto.ErrorResponse "Subject code already exists"
// @Router /admin/subjects [post]
func (c *AdminController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subject, err := c.adminService.CreateSubject(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("code", req.Code).Msg("Failed to create subject")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(subject, "Subject created successfully"))
}

// ListSubjects godoc
// @Summary List subjects
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SubjectResponse}
// @Router /admin/subjects [get]
func (c *AdminController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.adminService.ListSubjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects, ""))
}

// UpdateSubject godoc
// @Summary Update a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectResponse}
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{id} [put]
func (c *AdminController) UpdateSubject(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	subject, err := c.adminService.UpdateSubject(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("subjectID", id).Msg("Failed to update subject")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject, "Subject updated successfully"))
}

// DeleteSubject godoc
// @Summary Delete a subject
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Router /admin/subjects/{id} [delete]
func (c *AdminController) DeleteSubject(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	if err := c.adminService.DeleteSubject(ctx.Request.Context(), id); err != nil {
		c.logger.Error().Err(err).Int64("subjectID", id).Msg("Failed to delete subject")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Subject deleted successfully"))
}

// AssignSubject godoc
// @Summary Assign a subject to a teacher
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param request body dto.AssignSubjectRequest true "Staff to assign"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Subject or staff not found"
// @Failure 409 {object} dto.ErrorResponse "Already assigned"
// @Router /admin/subjects/{id}/assign [post]
func (c *AdminController) AssignSubject(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.AssignSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.AssignSubject(ctx.Request.Context(), id, req.StaffID); err != nil {
		c.logger.Error().Err(err).Int64("subjectID", id).Int64("staffID", req.StaffID).Msg("Failed to assign subject")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Subject assigned successfully"))
}

// UnassignSubject godoc
// @Summary Remove a teacher's subject assignment
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param staffId path int true "Staff ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /admin/subjects/{id}/assign/{staffId} [delete]
func (c *AdminController) UnassignSubject(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	staffID, err := parseIDParam(ctx, "staffId")
	if err != nil {
		invalidIDResponse(ctx, "staffId")
		return
	}

	if err := c.adminService.UnassignSubject(ctx.Request.Context(), id, staffID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Subject assignment removed"))
}

// EnrollStudent godoc
// @Summary Enroll a student in a subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param request body dto.EnrollStudentRequest true "Student to enroll"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Subject or student not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Router /admin/subjects/{id}/enroll [post]
func (c *AdminController) EnrollStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.EnrollStudent(ctx.Request.Context(), id, req.StudentID); err != nil {
		c.logger.Error().Err(err).Int64("subjectID", id).Int64("studentID", req.StudentID).Msg("Failed to enroll student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student enrolled successfully"))
}

// UnenrollStudent godoc
// @Summary Remove a student's subject enrollment
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Subject ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /admin/subjects/{id}/enroll/{studentId} [delete]
func (c *AdminController) UnenrollStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	studentID, err := parseIDParam(ctx, "studentId")
	if err != nil {
		invalidIDResponse(ctx, "studentId")
		return
	}

	if err := c.adminService.UnenrollStudent(ctx.Request.Context(), id, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student enrollment removed"))
}

// --- Extracurricular activities ---

// CreateExtracurricular godoc
// @Summary Create an extracurricular activity
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateExtracurricularRequest true "Activity information"
// @Success 201 {object} dto.APIResponse{data=dto.ExtracurricularResponse}
// @Failure 409 {object} dto.ErrorResponse "Activity name already exists"
// @Router /admin/extracurriculars [post]
func (c *AdminController) CreateExtracurricular(ctx *gin.Context) {
	var req dto.CreateExtracurricularRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	activity, err := c.adminService.CreateExtracurricular(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create extracurricular")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(activity, "Activity created successfully"))
}

// ListExtracurriculars godoc
// @Summary List extracurricular activities
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ExtracurricularResponse}
// @Router /admin/extracurriculars [get]
func (c *AdminController) ListExtracurriculars(ctx *gin.Context) {
	activities, err := c.adminService.ListExtracurriculars(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activities, ""))
}

// UpdateExtracurricular godoc
// @Summary Update an extracurricular activity
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Param request body dto.UpdateExtracurricularRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ExtracurricularResponse}
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /admin/extracurriculars/{id} [put]
func (c *AdminController) UpdateExtracurricular(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.UpdateExtracurricularRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	activity, err := c.adminService.UpdateExtracurricular(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("activityID", id).Msg("Failed to update extracurricular")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(activity, "Activity updated successfully"))
}

// DeleteExtracurricular godoc
// @Summary Delete an extracurricular activity
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /admin/extracurriculars/{id} [delete]
func (c *AdminController) DeleteExtracurricular(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	if err := c.adminService.DeleteExtracurricular(ctx.Request.Context(), id); err != nil {
		c.logger.Error().Err(err).Int64("activityID", id).Msg("Failed to delete extracurricular")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Activity deleted successfully"))
}

// --- Administrative work items ---

// CreateWorkItem godoc
// @Summary Create an administrative work item
// @Description Adds a work item to the checklist every teacher completes per subject
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateWorkItemRequest true "Work item information"
// @Success 201 {object} dto.APIResponse{data=dto.WorkItemResponse}
// @Failure 409 {object} dto.ErrorResponse "Work item name already exists"
// @Router /admin/work-items [post]
func (c *AdminController) CreateWorkItem(ctx *gin.Context) {
	var req dto.CreateWorkItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.adminService.CreateWorkItem(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create work item")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item, "Work item created successfully"))
}

// ListWorkItems godoc
// @Summary List administrative work items
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.WorkItemResponse}
// @Router /admin/work-items [get]
func (c *AdminController) ListWorkItems(ctx *gin.Context) {
	items, err := c.adminService.ListWorkItems(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
}

// UpdateWorkItem godoc
// @Summary Update an administrative work item
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Work item ID"
// @Param request body dto.UpdateWorkItemRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.WorkItemResponse}
// @Failure 404 {object} dto.ErrorResponse "Work item not found"
// @Router /admin/work-items/{id} [put]
func (c *AdminController) UpdateWorkItem(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.UpdateWorkItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.adminService.UpdateWorkItem(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("workItemID", id).Msg("Failed to update work item")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item, "Work item updated successfully"))
}

// DeleteWorkItem godoc
// @Summary Delete an administrative work item
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Work item ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Work item not found"
// @Router /admin/work-items/{id} [delete]
func (c *AdminController) DeleteWorkItem(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	if err := c.adminService.DeleteWorkItem(ctx.Request.Context(), id); err != nil {
		c.logger.Error().Err(err).Int64("workItemID", id).Msg("Failed to delete work item")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Work item deleted successfully"))
}

// --- Student directory ---

// CreateStudent godoc
// @Summary Register a student into any class
// @Description Registers a student school-wide. The class comes from the request; homeroom placement is assigned separately.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param nisn formData string true "National student number"
// @Param name formData string true "Full name"
// @Param gender formData string true "Gender (male or female)"
// @Param class formData string true "Class name"
// @Param entryYear formData int true "Entry year"
// @Param photo formData file false "Student photo"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "NISN already exists"
// @Router /admin/students [post]
func (c *AdminController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Photo is optional; FormFile errors just mean none was sent
	photo, _ := ctx.FormFile("photo")

	student, err := c.adminService.CreateStudent(ctx.Request.Context(), &req, photo)
	if err != nil {
		c.logger.Error().Err(err).Str("nisn", req.NISN).Msg("Failed to register student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", student.ID).
		Str("nisn", student.NISN).
		Str("class", student.Class).
		Msg("Student registered by administration")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student registered successfully"))
}

// UpdateStudent godoc
// @Summary Update any student
// @Description Edits a student's data including class placement. Accepts multipart form data with an optional replacement photo.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param photo formData file false "Replacement photo"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [put]
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
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

	student, err := c.adminService.UpdateStudent(ctx.Request.Context(), id, &req, photo)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", id).Msg("Failed to update student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated successfully"))
}

// ListStudents godoc
// @Summary List all students
// @Description Lists students across the whole school with optional class, status and search filters
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param class query string false "Filter by class name"
// @Param status query string false "Filter by status (active, graduated, transferred, dropped)"
// @Param search query string false "Match against name and NISN"
// @Param page query int false "Page number (default: 1)"
// @Param size query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.PagedStudentListResponse}
// @Router /admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	params := repositories.GetAllStudentsParams{
		Page: page,
		Size: size,
	}
	if class := ctx.Query("class"); class != "" {
		params.Class = &class
	}
	if status := ctx.Query("status"); status != "" {
		studentStatus := models.StudentStatus(status)
		params.Status = &studentStatus
	}
	if search := ctx.Query("search"); search != "" {
		params.Search = &search
	}

	students, err := c.adminService.ListStudents(ctx.Request.Context(), params)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list students")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}

// GetStudent godoc
// @Summary Get a student
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [get]
func (c *AdminController) GetStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	student, err := c.adminService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// AssignHomeroom godoc
// @Summary Assign or clear a student's homeroom teacher
// @Description Places the student in the given teacher's homeroom class. A null staff ID detaches the student from their current homeroom.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Param request body dto.AssignHomeroomRequest true "Homeroom assignment"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Teacher has no homeroom class"
// @Failure 404 {object} dto.ErrorResponse "Student or staff not found"
// @Router /admin/students/{id}/homeroom [put]
func (c *AdminController) AssignHomeroom(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	var req dto.AssignHomeroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.adminService.AssignHomeroom(ctx.Request.Context(), id, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", id).Msg("Failed to assign homeroom")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Homeroom assignment updated"))
}

// DeleteStudent godoc
// @Summary Permanently delete a student
// @Description Removes the student record and all associated data. This cannot be undone.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id} [delete]
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "id")
		return
	}

	if err := c.adminService.HardDeleteStudent(ctx.Request.Context(), id); err != nil {
		c.logger.Error().Err(err).Int64("studentID", id).Msg("Failed to delete student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", id).Msg("Student permanently deleted")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student deleted successfully"))
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Returns school-wide counts and student distributions by class, gender and status
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse}
// @Router /admin/dashboard [get]
func (c *AdminController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.adminService.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build dashboard stats")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
