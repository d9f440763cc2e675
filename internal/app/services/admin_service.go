package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/pkg/auth"
	"github.com/sekolahku/sekolahku/internal/pkg/dberrors"
	"github.com/sekolahku/sekolahku/internal/pkg/filestorage"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// AdminService defines the interface for school administration operations
type AdminService interface {
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	ListStaff(ctx context.Context) ([]dto.StaffResponse, error)
	GetStaff(ctx context.Context, id int64) (*dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeleteStaff(ctx context.Context, id int64) error

	CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	ListClasses(ctx context.Context) ([]dto.ClassResponse, error)
	UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	DeleteClass(ctx context.Context, id int64) error

	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error)
	UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	DeleteSubject(ctx context.Context, id int64) error
	AssignSubject(ctx context.Context, subjectID, staffID int64) error
	UnassignSubject(ctx context.Context, subjectID, staffID int64) error
	EnrollStudent(ctx context.Context, subjectID, studentID int64) error
	UnenrollStudent(ctx context.Context, subjectID, studentID int64) error

	CreateExtracurricular(ctx context.Context, req *dto.CreateExtracurricularRequest) (*dto.ExtracurricularResponse, error)
	ListExtracurriculars(ctx context.Context) ([]dto.ExtracurricularResponse, error)
	UpdateExtracurricular(ctx context.Context, id int64, req *dto.UpdateExtracurricularRequest) (*dto.ExtracurricularResponse, error)
	DeleteExtracurricular(ctx context.Context, id int64) error

	CreateWorkItem(ctx context.Context, req *dto.CreateWorkItemRequest) (*dto.WorkItemResponse, error)
	ListWorkItems(ctx context.Context) ([]dto.WorkItemResponse, error)
	UpdateWorkItem(ctx context.Context, id int64, req *dto.UpdateWorkItemRequest) (*dto.WorkItemResponse, error)
	DeleteWorkItem(ctx context.Context, id int64) error

	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context, params repositories.GetAllStudentsParams) (*dto.PagedStudentListResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error)
	AssignHomeroom(ctx context.Context, studentID int64, req *dto.AssignHomeroomRequest) (*dto.StudentResponse, error)
	HardDeleteStudent(ctx context.Context, id int64) error

	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	repos   *repositories.Repositories
	storage filestorage.Storage
	baseURL string
}

// NewAdminService creates a new admin service instance
func NewAdminService(repos *repositories.Repositories, storage filestorage.Storage, baseURL string) AdminService {
	return &adminServiceImpl{repos: repos, storage: storage, baseURL: baseURL}
}

// CreateStaff registers a staff member. When email and password are present a
// teacher login is provisioned alongside the staff row.
func (s *adminServiceImpl) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	staff := &models.Staff{
		NIP:           req.NIP,
		Name:          req.Name,
		Position:      req.Position,
		Division:      req.Division,
		HomeroomClass: req.HomeroomClass,
	}

	if req.Email != nil {
		if req.Password == nil {
			return nil, apperrors.NewBadRequestError("password is required when provisioning a login")
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		userID, err := s.repos.UserRepository.CreateUser(ctx, &models.User{
			Email:    *req.Email,
			Password: hashed,
			RoleType: models.RoleTeacher,
			IsActive: true,
		})
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			return nil, err
		}
		staff.UserID = &userID
	}

	id, err := s.repos.StaffRepository.Create(ctx, staff)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_nip_key") {
			return nil, apperrors.ErrNIPAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "staff_homeroom_class_key") {
			return nil, apperrors.ErrHomeroomTaken
		}
		return nil, err
	}

	created, err := s.repos.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStaffResponse(created)
	return &resp, nil
}

// ListStaff returns all staff members.
func (s *adminServiceImpl) ListStaff(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := s.repos.StaffRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.StaffResponse, 0, len(staff))
	for _, m := range staff {
		result = append(result, dto.NewStaffResponse(m))
	}
	return result, nil
}

// GetStaff returns one staff member.
func (s *adminServiceImpl) GetStaff(ctx context.Context, id int64) (*dto.StaffResponse, error) {
	staff, err := s.repos.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStaffResponse(staff)
	return &resp, nil
}

// UpdateStaff edits a staff member.
func (s *adminServiceImpl) UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := s.repos.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Division != nil {
		staff.Division = req.Division
	}
	if req.HomeroomClass != nil {
		if *req.HomeroomClass == "" {
			staff.HomeroomClass = nil
		} else {
			staff.HomeroomClass = req.HomeroomClass
		}
	}

	if err := s.repos.StaffRepository.Update(ctx, staff); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_homeroom_class_key") {
			return nil, apperrors.ErrHomeroomTaken
		}
		return nil, err
	}
	resp := dto.NewStaffResponse(staff)
	return &resp, nil
}

// DeleteStaff removes a staff member. Students pointing at this homeroom
// teacher fall back to unassigned through the foreign key.
func (s *adminServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	return s.repos.StaffRepository.Delete(ctx, id)
}

func (s *adminServiceImpl) classResponse(ctx context.Context, c *models.SchoolClass) dto.ClassResponse {
	resp := dto.ClassResponse{
		ID:                c.ID,
		Name:              c.Name,
		Level:             c.Level,
		Capacity:          c.Capacity,
		HomeroomTeacherID: c.HomeroomTeacherID,
	}
	if c.HomeroomTeacher != nil {
		resp.HomeroomTeacherName = &c.HomeroomTeacher.Name
	}
	count, err := s.repos.ClassRepository.CountStudents(ctx, c.Name)
	if err != nil {
		logger.Warn().Err(err).Str("class", c.Name).Msg("Failed to count class students")
	}
	resp.StudentCount = count
	return resp
}

// CreateClass creates a school class.
func (s *adminServiceImpl) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	class := &models.SchoolClass{
		Name:              req.Name,
		Level:             req.Level,
		Capacity:          req.Capacity,
		HomeroomTeacherID: req.HomeroomTeacherID,
	}
	if class.Capacity == 0 {
		class.Capacity = 32
	}

	id, err := s.repos.ClassRepository.Create(ctx, class)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "school_classes_name_key") {
			return nil, apperrors.NewConflictError("class name already exists")
		}
		return nil, err
	}

	created, err := s.repos.ClassRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.classResponse(ctx, created)
	return &resp, nil
}

// ListClasses returns all classes with their student counts.
func (s *adminServiceImpl) ListClasses(ctx context.Context) ([]dto.ClassResponse, error) {
	classes, err := s.repos.ClassRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClassResponse, 0, len(classes))
	for _, c := range classes {
		result = append(result, s.classResponse(ctx, c))
	}
	return result, nil
}

// UpdateClass edits a class.
func (s *adminServiceImpl) UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	class, err := s.repos.ClassRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Level != nil {
		class.Level = *req.Level
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}
	if req.HomeroomTeacherID != nil {
		class.HomeroomTeacherID = req.HomeroomTeacherID
	}

	if err := s.repos.ClassRepository.Update(ctx, class); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "school_classes_name_key") {
			return nil, apperrors.NewConflictError("class name already exists")
		}
		return nil, err
	}

	updated, err := s.repos.ClassRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.classResponse(ctx, updated)
	return &resp, nil
}

// DeleteClass removes a class.
func (s *adminServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	return s.repos.ClassRepository.Delete(ctx, id)
}

// CreateSubject creates a subject.
func (s *adminServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	subject := &models.Subject{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}
	id, err := s.repos.SubjectRepository.Create(ctx, subject)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_code_key") {
			return nil, apperrors.ErrCodeAlreadyExists
		}
		return nil, err
	}
	subject.ID = id
	resp := dto.NewSubjectResponse(subject)
	return &resp, nil
}

// ListSubjects returns all subjects.
func (s *adminServiceImpl) ListSubjects(ctx context.Context) ([]dto.SubjectResponse, error) {
	subjects, err := s.repos.SubjectRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SubjectResponse, 0, len(subjects))
	for _, sub := range subjects {
		result = append(result, dto.NewSubjectResponse(sub))
	}
	return result, nil
}

// UpdateSubject edits a subject.
func (s *adminServiceImpl) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repos.SubjectRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Code != nil {
		subject.Code = *req.Code
	}
	if req.Description != nil {
		subject.Description = req.Description
	}

	if err := s.repos.SubjectRepository.Update(ctx, subject); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_code_key") {
			return nil, apperrors.ErrCodeAlreadyExists
		}
		return nil, err
	}
	resp := dto.NewSubjectResponse(subject)
	return &resp, nil
}

// DeleteSubject removes a subject.
func (s *adminServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	return s.repos.SubjectRepository.Delete(ctx, id)
}

// AssignSubject links a staff member to a subject.
func (s *adminServiceImpl) AssignSubject(ctx context.Context, subjectID, staffID int64) error {
	if _, err := s.repos.SubjectRepository.GetByID(ctx, subjectID); err != nil {
		return err
	}
	if _, err := s.repos.StaffRepository.GetByID(ctx, staffID); err != nil {
		return err
	}
	assigned, err := s.repos.SubjectRepository.IsAssigned(ctx, staffID, subjectID)
	if err != nil {
		return err
	}
	if assigned {
		return apperrors.ErrAlreadyAssigned
	}
	return s.repos.SubjectRepository.AssignStaff(ctx, staffID, subjectID)
}

// UnassignSubject removes a staff-subject link.
func (s *adminServiceImpl) UnassignSubject(ctx context.Context, subjectID, staffID int64) error {
	return s.repos.SubjectRepository.UnassignStaff(ctx, staffID, subjectID)
}

// EnrollStudent links a student to a subject.
func (s *adminServiceImpl) EnrollStudent(ctx context.Context, subjectID, studentID int64) error {
	if _, err := s.repos.SubjectRepository.GetByID(ctx, subjectID); err != nil {
		return err
	}
	if _, err := s.repos.StudentRepository.GetByID(ctx, studentID); err != nil {
		return err
	}
	enrolled, err := s.repos.SubjectRepository.IsEnrolled(ctx, studentID, subjectID)
	if err != nil {
		return err
	}
	if enrolled {
		return apperrors.ErrAlreadyEnrolled
	}
	return s.repos.SubjectRepository.EnrollStudent(ctx, studentID, subjectID)
}

// UnenrollStudent removes a student-subject link.
func (s *adminServiceImpl) UnenrollStudent(ctx context.Context, subjectID, studentID int64) error {
	return s.repos.SubjectRepository.UnenrollStudent(ctx, studentID, subjectID)
}

// CreateExtracurricular creates an activity.
func (s *adminServiceImpl) CreateExtracurricular(ctx context.Context, req *dto.CreateExtracurricularRequest) (*dto.ExtracurricularResponse, error) {
	activity := &models.Extracurricular{
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := s.repos.ExtracurricularRepository.CreateActivity(ctx, activity)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("activity name already exists")
		}
		return nil, err
	}
	activity.ID = id
	resp := dto.NewExtracurricularResponse(activity)
	return &resp, nil
}

// ListExtracurriculars returns the activity catalog.
func (s *adminServiceImpl) ListExtracurriculars(ctx context.Context) ([]dto.ExtracurricularResponse, error) {
	activities, err := s.repos.ExtracurricularRepository.GetAllActivities(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ExtracurricularResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, dto.NewExtracurricularResponse(a))
	}
	return result, nil
}

// UpdateExtracurricular edits an activity.
func (s *adminServiceImpl) UpdateExtracurricular(ctx context.Context, id int64, req *dto.UpdateExtracurricularRequest) (*dto.ExtracurricularResponse, error) {
	activity, err := s.repos.ExtracurricularRepository.GetActivityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = req.Description
	}

	if err := s.repos.ExtracurricularRepository.UpdateActivity(ctx, activity); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("activity name already exists")
		}
		return nil, err
	}
	resp := dto.NewExtracurricularResponse(activity)
	return &resp, nil
}

// DeleteExtracurricular removes an activity.
func (s *adminServiceImpl) DeleteExtracurricular(ctx context.Context, id int64) error {
	return s.repos.ExtracurricularRepository.DeleteActivity(ctx, id)
}

// CreateWorkItem creates a documentation category.
func (s *adminServiceImpl) CreateWorkItem(ctx context.Context, req *dto.CreateWorkItemRequest) (*dto.WorkItemResponse, error) {
	item := &models.WorkItem{
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := s.repos.WorkRepository.CreateItem(ctx, item)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("work item name already exists")
		}
		return nil, err
	}
	item.ID = id
	resp := dto.NewWorkItemResponse(item)
	return &resp, nil
}

// ListWorkItems returns the documentation checklist.
func (s *adminServiceImpl) ListWorkItems(ctx context.Context) ([]dto.WorkItemResponse, error) {
	items, err := s.repos.WorkRepository.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.WorkItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.NewWorkItemResponse(item))
	}
	return result, nil
}

// UpdateWorkItem edits a documentation category.
func (s *adminServiceImpl) UpdateWorkItem(ctx context.Context, id int64, req *dto.UpdateWorkItemRequest) (*dto.WorkItemResponse, error) {
	item, err := s.repos.WorkRepository.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}

	if err := s.repos.WorkRepository.UpdateItem(ctx, item); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("work item name already exists")
		}
		return nil, err
	}
	resp := dto.NewWorkItemResponse(item)
	return &resp, nil
}

// DeleteWorkItem removes a documentation category.
func (s *adminServiceImpl) DeleteWorkItem(ctx context.Context, id int64) error {
	return s.repos.WorkRepository.DeleteItem(ctx, id)
}

func (s *adminServiceImpl) studentResponse(st *models.Student) dto.StudentResponse {
	var photoURL *string
	if st.Photo != nil && *st.Photo != "" {
		url := filestorage.ResolveURL(s.baseURL, *st.Photo)
		photoURL = &url
	}
	return dto.NewStudentResponse(st, photoURL)
}

// CreateStudent registers a student into any class. Unlike the teacher
// surface, the class comes from the request and no homeroom teacher is set;
// homeroom placement goes through AssignHomeroom.
func (s *adminServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error) {
	if req.Class == "" {
		return nil, fmt.Errorf("%w: class is required", apperrors.ErrValidationFailed)
	}

	student := &models.Student{
		NISN:           req.NISN,
		Name:           req.Name,
		Gender:         models.Gender(req.Gender),
		Birthplace:     req.Birthplace,
		Religion:       req.Religion,
		Class:          req.Class,
		EntryYear:      req.EntryYear,
		GraduationYear: req.GraduationYear,
		Status:         models.StudentStatusActive,
		ParentName:     req.ParentName,
		ParentPhone:    req.ParentPhone,
		Address:        req.Address,
		Notes:          req.Notes,
	}
	if req.Status != "" {
		student.Status = models.StudentStatus(req.Status)
	}
	if req.BirthDate != "" {
		bd, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid birth date", apperrors.ErrValidationFailed)
		}
		student.BirthDate = &bd
	}

	if photo != nil {
		ref, err := s.storage.Save(ctx, photo, filestorage.FolderStudentPhotos)
		if err != nil {
			logger.Error().Err(err).Str("nisn", req.NISN).Msg("Error storing student photo")
			return nil, apperrors.ErrStorageFailure
		}
		student.Photo = &ref
	}

	id, err := s.repos.StudentRepository.Create(ctx, student)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_nisn_key") {
			return nil, apperrors.ErrNISNAlreadyExists
		}
		return nil, err
	}

	created, err := s.repos.StudentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.studentResponse(created)
	return &resp, nil
}

// ListStudents returns the school-wide student list with filters and
// pagination.
func (s *adminServiceImpl) ListStudents(ctx context.Context, params repositories.GetAllStudentsParams) (*dto.PagedStudentListResponse, error) {
	students, pagination, err := s.repos.StudentRepository.GetAll(ctx, params)
	if err != nil {
		return nil, err
	}
	resp := &dto.PagedStudentListResponse{
		Students:   make([]dto.StudentResponse, 0, len(students)),
		Pagination: pagination,
	}
	for _, st := range students {
		resp.Students = append(resp.Students, s.studentResponse(st))
	}
	return resp, nil
}

// GetStudent returns one student regardless of homeroom placement.
func (s *adminServiceImpl) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.repos.StudentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.studentResponse(student)
	return &resp, nil
}

// UpdateStudent edits any student, including class placement, which the
// teacher surface rejects.
func (s *adminServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest, photo *multipart.FileHeader) (*dto.StudentResponse, error) {
	student, err := s.repos.StudentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyStudentUpdate(student, req); err != nil {
		return nil, err
	}

	oldPhoto := student.Photo
	replacedPhoto := false
	if photo != nil {
		ref, err := s.storage.Save(ctx, photo, filestorage.FolderStudentPhotos)
		if err != nil {
			logger.Error().Err(err).Int64("studentID", id).Msg("Error storing replacement photo")
			return nil, apperrors.ErrStorageFailure
		}
		student.Photo = &ref
		replacedPhoto = true
	} else if req.RemovePhoto {
		student.Photo = nil
		replacedPhoto = true
	}

	if err := s.repos.StudentRepository.Update(ctx, student); err != nil {
		return nil, err
	}

	if replacedPhoto && oldPhoto != nil && *oldPhoto != "" {
		if err := s.storage.Delete(ctx, *oldPhoto); err != nil {
			logger.Warn().Err(err).Int64("studentID", id).Msg("Failed to remove previous photo")
		}
	}

	resp := s.studentResponse(student)
	return &resp, nil
}

// AssignHomeroom places a student under a homeroom teacher, moving the
// student into the teacher's class. A null teacher clears the assignment and
// leaves the class name untouched.
func (s *adminServiceImpl) AssignHomeroom(ctx context.Context, studentID int64, req *dto.AssignHomeroomRequest) (*dto.StudentResponse, error) {
	student, err := s.repos.StudentRepository.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.HomeroomTeacherID == nil {
		if err := s.repos.StudentRepository.ClearHomeroomTeacher(ctx, studentID); err != nil {
			return nil, err
		}
		student.HomeroomTeacherID = nil
		resp := s.studentResponse(student)
		return &resp, nil
	}

	staff, err := s.repos.StaffRepository.GetByID(ctx, *req.HomeroomTeacherID)
	if err != nil {
		return nil, err
	}
	if staff.HomeroomClass == nil {
		return nil, apperrors.ErrNoHomeroomAssigned
	}

	if err := s.repos.StudentRepository.SetHomeroomTeacher(ctx, studentID, &staff.ID); err != nil {
		return nil, err
	}
	student.HomeroomTeacherID = &staff.ID
	student.Class = *staff.HomeroomClass
	if err := s.repos.StudentRepository.Update(ctx, student); err != nil {
		return nil, err
	}
	resp := s.studentResponse(student)
	return &resp, nil
}

// HardDeleteStudent permanently removes a student row and its dependent
// records.
func (s *adminServiceImpl) HardDeleteStudent(ctx context.Context, id int64) error {
	return s.repos.StudentRepository.Delete(ctx, id)
}

// GetDashboardStats aggregates school-wide counts.
func (s *adminServiceImpl) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	totalStudents, err := s.repos.StudentRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalStaff, err := s.repos.StaffRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalClasses, err := s.repos.ClassRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	totalSubjects, err := s.repos.SubjectRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	byClass, err := s.repos.StudentRepository.CountByColumn(ctx, "class")
	if err != nil {
		return nil, err
	}
	byGender, err := s.repos.StudentRepository.CountByColumn(ctx, "gender")
	if err != nil {
		return nil, err
	}
	byStatus, err := s.repos.StudentRepository.CountByColumn(ctx, "status")
	if err != nil {
		return nil, err
	}
	pending, err := s.repos.AchievementRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalStudents:       totalStudents,
		TotalStaff:          totalStaff,
		TotalClasses:        totalClasses,
		TotalSubjects:       totalSubjects,
		StudentsByClass:     byClass,
		StudentsByGender:    byGender,
		StudentsByStatus:    byStatus,
		PendingAchievements: len(pending),
	}, nil
}
