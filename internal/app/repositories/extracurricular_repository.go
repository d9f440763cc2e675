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

// ExtracurricularRepository handles database operations for extracurricular
// activities and student participation histories.
type ExtracurricularRepository struct {
	DB *pgxpool.Pool
}

// NewExtracurricularRepository creates a new instance of ExtracurricularRepository.
func NewExtracurricularRepository(db *pgxpool.Pool) *ExtracurricularRepository {
	return &ExtracurricularRepository{DB: db}
}

// GetAllActivities retrieves all activities ordered by name.
func (r *ExtracurricularRepository) GetAllActivities(ctx context.Context) ([]*models.Extracurricular, error) {
	sqlStr, args, err := squirrel.Select("id", "name", "description", "created_at", "updated_at").
		From("extracurriculars").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list extracurriculars query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.Extracurricular
	for rows.Next() {
		var e models.Extracurricular
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

// GetActivityByID retrieves an activity by ID.
func (r *ExtracurricularRepository) GetActivityByID(ctx context.Context, id int64) (*models.Extracurricular, error) {
	sqlStr, args, err := squirrel.Select("id", "name", "description", "created_at", "updated_at").
		From("extracurriculars").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var e models.Extracurricular
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&e.ID, &e.Name, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExtracurricularNotFound
		}
		return nil, err
	}
	return &e, nil
}

// CreateActivity inserts a new activity and returns its ID.
func (r *ExtracurricularRepository) CreateActivity(ctx context.Context, e *models.Extracurricular) (int64, error) {
	sqlStr, args, err := squirrel.Insert("extracurriculars").
		Columns("name", "description").
		Values(e.Name, e.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", e.Name).Msg("Error executing create extracurricular query")
		return 0, err
	}
	return id, nil
}

// UpdateActivity persists activity field changes.
func (r *ExtracurricularRepository) UpdateActivity(ctx context.Context, e *models.Extracurricular) error {
	sqlStr, args, err := squirrel.Update("extracurriculars").
		Set("name", e.Name).
		Set("description", e.Description).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": e.ID}).
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
		return apperrors.ErrExtracurricularNotFound
	}
	return nil
}

// DeleteActivity removes an activity.
func (r *ExtracurricularRepository) DeleteActivity(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("extracurriculars").
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
		return apperrors.ErrExtracurricularNotFound
	}
	return nil
}

func (r *ExtracurricularRepository) selectHistoryQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"h.id", "h.student_id", "h.extracurricular_id", "h.academic_year", "h.role",
		"h.start_date", "h.end_date", "h.performance_notes", "h.created_at", "h.updated_at",
		"e.name",
	).From("extracurricular_histories h").
		Join("extracurriculars e ON h.extracurricular_id = e.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanHistory(row pgx.Row) (*models.ExtracurricularHistory, error) {
	var h models.ExtracurricularHistory
	var activityName string
	err := row.Scan(
		&h.ID, &h.StudentID, &h.ExtracurricularID, &h.AcademicYear, &h.Role,
		&h.StartDate, &h.EndDate, &h.PerformanceNotes, &h.CreatedAt, &h.UpdatedAt,
		&activityName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Msg("Error scanning extracurricular history row")
		return nil, err
	}
	h.Extracurricular = &models.Extracurricular{ID: h.ExtracurricularID, Name: activityName}
	return &h, nil
}

// CreateHistory inserts a participation record and returns its ID.
func (r *ExtracurricularRepository) CreateHistory(ctx context.Context, h *models.ExtracurricularHistory) (int64, error) {
	sqlStr, args, err := squirrel.Insert("extracurricular_histories").
		Columns("student_id", "extracurricular_id", "academic_year", "role", "start_date", "end_date", "performance_notes").
		Values(h.StudentID, h.ExtracurricularID, h.AcademicYear, h.Role, h.StartDate, h.EndDate, h.PerformanceNotes).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", h.StudentID).Msg("Error executing create extracurricular history query")
		return 0, err
	}
	return id, nil
}

// GetHistoryByID retrieves a participation record by ID.
func (r *ExtracurricularRepository) GetHistoryByID(ctx context.Context, id int64) (*models.ExtracurricularHistory, error) {
	sqlStr, args, err := r.selectHistoryQuery().Where(squirrel.Eq{"h.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanHistory(r.DB.QueryRow(ctx, sqlStr, args...))
}

// ListHistoryByStudent retrieves all participation records for a student,
// most recent first.
func (r *ExtracurricularRepository) ListHistoryByStudent(ctx context.Context, studentID int64) ([]*models.ExtracurricularHistory, error) {
	sqlStr, args, err := r.selectHistoryQuery().
		Where(squirrel.Eq{"h.student_id": studentID}).
		OrderBy("h.start_date DESC", "h.id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list extracurricular history query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.ExtracurricularHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

// UpdateHistory persists participation record changes.
func (r *ExtracurricularRepository) UpdateHistory(ctx context.Context, h *models.ExtracurricularHistory) error {
	sqlStr, args, err := squirrel.Update("extracurricular_histories").
		Set("extracurricular_id", h.ExtracurricularID).
		Set("academic_year", h.AcademicYear).
		Set("role", h.Role).
		Set("start_date", h.StartDate).
		Set("end_date", h.EndDate).
		Set("performance_notes", h.PerformanceNotes).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": h.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("historyID", h.ID).Msg("Error executing update extracurricular history query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

// DeleteHistory removes a participation record.
func (r *ExtracurricularRepository) DeleteHistory(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("extracurricular_histories").
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
		return apperrors.ErrRecordNotFound
	}
	return nil
}
