package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/pkg/helpers"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// GetAllStudentsParams holds parameters for filtering and pagination of the
// admin student listing.
type GetAllStudentsParams struct {
	Class  *string
	Status *models.StudentStatus
	Search *string // Matches against name and NISN
	Page   int
	Size   int
}

// StudentRepository handles database operations for students.
type StudentRepository struct {
	DB *pgxpool.Pool
}

// NewStudentRepository creates a new instance of StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) selectStudentQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "nisn", "name", "gender", "birth_date", "birthplace", "religion",
		"class", "entry_year", "graduation_year", "status", "homeroom_teacher_id",
		"photo", "parent_name", "parent_phone", "address", "notes", "created_at", "updated_at",
	).From("students").
		PlaceholderFormat(squirrel.Dollar)
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.NISN, &s.Name, &s.Gender, &s.BirthDate, &s.Birthplace, &s.Religion,
		&s.Class, &s.EntryYear, &s.GraduationYear, &s.Status, &s.HomeroomTeacherID,
		&s.Photo, &s.ParentName, &s.ParentPhone, &s.Address, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student and returns its ID.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) (int64, error) {
	sqlStr, args, err := squirrel.Insert("students").
		Columns("nisn", "name", "gender", "birth_date", "birthplace", "religion",
			"class", "entry_year", "graduation_year", "status", "homeroom_teacher_id",
			"photo", "parent_name", "parent_phone", "address", "notes").
		Values(s.NISN, s.Name, s.Gender, s.BirthDate, s.Birthplace, s.Religion,
			s.Class, s.EntryYear, s.GraduationYear, s.Status, s.HomeroomTeacherID,
			s.Photo, s.ParentName, s.ParentPhone, s.Address, s.Notes).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("nisn", s.NISN).Msg("Error executing create student query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sqlStr, args, err := r.selectStudentQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanStudent(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetByHomeroomTeacher retrieves all students assigned to a homeroom teacher,
// ordered by name.
func (r *StudentRepository) GetByHomeroomTeacher(ctx context.Context, staffID int64) ([]*models.Student, error) {
	sqlStr, args, err := r.selectStudentQuery().
		Where(squirrel.Eq{"homeroom_teacher_id": staffID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", staffID).Msg("Error executing homeroom students query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// GetAll retrieves a paginated and filtered student list.
func (r *StudentRepository) GetAll(ctx context.Context, params GetAllStudentsParams) ([]*models.Student, dto.PaginationInfo, error) {
	sqlBuilder := r.selectStudentQuery()
	countBuilder := squirrel.Select("count(*)").From("students").PlaceholderFormat(squirrel.Dollar)

	if params.Class != nil && *params.Class != "" {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"class": *params.Class})
		countBuilder = countBuilder.Where(squirrel.Eq{"class": *params.Class})
	}
	if params.Status != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"status": *params.Status})
		countBuilder = countBuilder.Where(squirrel.Eq{"status": *params.Status})
	}
	if params.Search != nil && *params.Search != "" {
		pattern := "%" + *params.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.Like{"nisn": pattern},
		}
		sqlBuilder = sqlBuilder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	if err := r.DB.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing student count query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, params.Page, params.Size)
	if totalItems == 0 {
		return []*models.Student{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	sqlBuilder = sqlBuilder.OrderBy("name ASC").Limit(uint64(limit)).Offset(offset)

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student list query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	var result []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, dto.PaginationInfo{}, err
		}
		result = append(result, s)
	}
	return result, pagination, rows.Err()
}

// Update persists student field changes.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	sqlStr, args, err := squirrel.Update("students").
		Set("name", s.Name).
		Set("gender", s.Gender).
		Set("birth_date", s.BirthDate).
		Set("birthplace", s.Birthplace).
		Set("religion", s.Religion).
		Set("class", s.Class).
		Set("entry_year", s.EntryYear).
		Set("graduation_year", s.GraduationYear).
		Set("status", s.Status).
		Set("homeroom_teacher_id", s.HomeroomTeacherID).
		Set("photo", s.Photo).
		Set("parent_name", s.ParentName).
		Set("parent_phone", s.ParentPhone).
		Set("address", s.Address).
		Set("notes", s.Notes).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": s.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", s.ID).Msg("Error executing update student query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ClearHomeroomTeacher detaches a student from its homeroom teacher. The row
// and every sub-record stay intact.
func (r *StudentRepository) ClearHomeroomTeacher(ctx context.Context, studentID int64) error {
	sqlStr, args, err := squirrel.Update("students").
		Set("homeroom_teacher_id", nil).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": studentID}).
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
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// SetHomeroomTeacher assigns or clears a student's homeroom teacher.
func (r *StudentRepository) SetHomeroomTeacher(ctx context.Context, studentID int64, staffID *int64) error {
	sqlStr, args, err := squirrel.Update("students").
		Set("homeroom_teacher_id", staffID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": studentID}).
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
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete permanently removes a student row. Sub-records are removed through
// foreign key cascades.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("students").
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
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// CountByColumn returns counts of students grouped by the given column.
// Only whitelisted columns are accepted.
func (r *StudentRepository) CountByColumn(ctx context.Context, column string) (map[string]int, error) {
	allowed := map[string]bool{"class": true, "gender": true, "status": true}
	if !allowed[column] {
		return nil, fmt.Errorf("unsupported group column: %s", column)
	}

	rows, err := r.DB.Query(ctx, fmt.Sprintf("SELECT %s, count(*) FROM students GROUP BY %s", column, column))
	if err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error executing student group count query")
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

// CountAll returns the total number of students.
func (r *StudentRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM students").Scan(&count)
	return count, err
}
