package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// SubjectRepository handles database operations for subjects, teacher
// assignments and student enrollments.
type SubjectRepository struct {
	DB *pgxpool.Pool
}

// NewSubjectRepository creates a new instance of SubjectRepository.
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) selectSubjectQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "name", "code", "description", "created_at", "updated_at").
		From("subjects").
		PlaceholderFormat(squirrel.Dollar)
}

func scanSubject(row pgx.Row) (*models.Subject, error) {
	var s models.Subject
	err := row.Scan(&s.ID, &s.Name, &s.Code, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Msg("Error scanning subject row")
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves all subjects ordered by name.
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	sqlStr, args, err := r.selectSubjectQuery().OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, err
	}
	return r.querySubjects(ctx, sqlStr, args)
}

// GetByID retrieves a subject by ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sqlStr, args, err := r.selectSubjectQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanSubject(r.DB.QueryRow(ctx, sqlStr, args...))
}

// ListByStaff retrieves the subjects assigned to a staff member.
func (r *SubjectRepository) ListByStaff(ctx context.Context, staffID int64) ([]*models.Subject, error) {
	sqlStr, args, err := squirrel.Select("s.id", "s.name", "s.code", "s.description", "s.created_at", "s.updated_at").
		From("subjects s").
		Join("staff_subjects ss ON ss.subject_id = s.id").
		Where(squirrel.Eq{"ss.staff_id": staffID}).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.querySubjects(ctx, sqlStr, args)
}

func (r *SubjectRepository) querySubjects(ctx context.Context, sqlStr string, args []interface{}) ([]*models.Subject, error) {
	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing subjects query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Create inserts a new subject and returns its ID.
func (r *SubjectRepository) Create(ctx context.Context, s *models.Subject) (int64, error) {
	sqlStr, args, err := squirrel.Insert("subjects").
		Columns("name", "code", "description").
		Values(s.Name, s.Code, s.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("code", s.Code).Msg("Error executing create subject query")
		return 0, err
	}
	return id, nil
}

// Update persists subject field changes.
func (r *SubjectRepository) Update(ctx context.Context, s *models.Subject) error {
	sqlStr, args, err := squirrel.Update("subjects").
		Set("name", s.Name).
		Set("code", s.Code).
		Set("description", s.Description).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": s.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", s.ID).Msg("Error executing update subject query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// Delete removes a subject.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("subjects").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// IsAssigned reports whether the staff member teaches the subject.
func (r *SubjectRepository) IsAssigned(ctx context.Context, staffID, subjectID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM staff_subjects WHERE staff_id = $1 AND subject_id = $2)",
		staffID, subjectID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// AssignStaff links a staff member to a subject.
func (r *SubjectRepository) AssignStaff(ctx context.Context, staffID, subjectID int64) error {
	sqlStr, args, err := squirrel.Insert("staff_subjects").
		Columns("staff_id", "subject_id").
		Values(staffID, subjectID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.DB.Exec(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Int64("staffID", staffID).Int64("subjectID", subjectID).Msg("Error executing assign subject query")
		return err
	}
	return nil
}

// UnassignStaff removes a staff-subject link.
func (r *SubjectRepository) UnassignStaff(ctx context.Context, staffID, subjectID int64) error {
	tag, err := r.DB.Exec(ctx,
		"DELETE FROM staff_subjects WHERE staff_id = $1 AND subject_id = $2",
		staffID, subjectID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotSubjectAssignee
	}
	return nil
}

// IsEnrolled reports whether the student is enrolled in the subject.
func (r *SubjectRepository) IsEnrolled(ctx context.Context, studentID, subjectID int64) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM student_subjects WHERE student_id = $1 AND subject_id = $2)",
		studentID, subjectID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// EnrollStudent links a student to a subject.
func (r *SubjectRepository) EnrollStudent(ctx context.Context, studentID, subjectID int64) error {
	sqlStr, args, err := squirrel.Insert("student_subjects").
		Columns("student_id", "subject_id").
		Values(studentID, subjectID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.DB.Exec(ctx, sqlStr, args...); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("subjectID", subjectID).Msg("Error executing enroll student query")
		return err
	}
	return nil
}

// UnenrollStudent removes a student-subject link.
func (r *SubjectRepository) UnenrollStudent(ctx context.Context, studentID, subjectID int64) error {
	tag, err := r.DB.Exec(ctx,
		"DELETE FROM student_subjects WHERE student_id = $1 AND subject_id = $2",
		studentID, subjectID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// GetEnrolledStudents retrieves active students enrolled in a subject.
func (r *SubjectRepository) GetEnrolledStudents(ctx context.Context, subjectID int64) ([]*models.Student, error) {
	sqlStr, args, err := squirrel.Select("s.id", "s.nisn", "s.name", "s.class", "s.status").
		From("students s").
		Join("student_subjects ss ON ss.student_id = s.id").
		Where(squirrel.Eq{"ss.subject_id": subjectID, "s.status": models.StudentStatusActive}).
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", subjectID).Msg("Error executing enrolled students query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.NISN, &s.Name, &s.Class, &s.Status); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	return result, rows.Err()
}

// CountAll returns the total number of subjects.
func (r *SubjectRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRow(ctx, "SELECT count(*) FROM subjects").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
