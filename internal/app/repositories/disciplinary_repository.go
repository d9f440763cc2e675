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

// DisciplinaryRepository handles database operations for disciplinary records.
type DisciplinaryRepository struct {
	DB *pgxpool.Pool
}

// NewDisciplinaryRepository creates a new instance of DisciplinaryRepository.
func NewDisciplinaryRepository(db *pgxpool.Pool) *DisciplinaryRepository {
	return &DisciplinaryRepository{DB: db}
}

func (r *DisciplinaryRepository) selectRecordQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "student_id", "staff_id", "incident_type", "description", "action_taken",
		"severity", "date", "created_at", "updated_at",
	).From("disciplinary_records").
		PlaceholderFormat(squirrel.Dollar)
}

func scanDisciplinaryRecord(row pgx.Row) (*models.DisciplinaryRecord, error) {
	var rec models.DisciplinaryRecord
	err := row.Scan(
		&rec.ID, &rec.StudentID, &rec.StaffID, &rec.IncidentType, &rec.Description,
		&rec.ActionTaken, &rec.Severity, &rec.Date, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Msg("Error scanning disciplinary record row")
		return nil, err
	}
	return &rec, nil
}

// Create inserts a new disciplinary record and returns its ID.
func (r *DisciplinaryRepository) Create(ctx context.Context, rec *models.DisciplinaryRecord) (int64, error) {
	sqlStr, args, err := squirrel.Insert("disciplinary_records").
		Columns("student_id", "staff_id", "incident_type", "description", "action_taken", "severity", "date").
		Values(rec.StudentID, rec.StaffID, rec.IncidentType, rec.Description, rec.ActionTaken, rec.Severity, rec.Date).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", rec.StudentID).Msg("Error executing create disciplinary record query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a disciplinary record by ID.
func (r *DisciplinaryRepository) GetByID(ctx context.Context, id int64) (*models.DisciplinaryRecord, error) {
	sqlStr, args, err := r.selectRecordQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanDisciplinaryRecord(r.DB.QueryRow(ctx, sqlStr, args...))
}

// ListByStudent retrieves all disciplinary records for a student, newest first.
func (r *DisciplinaryRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.DisciplinaryRecord, error) {
	sqlStr, args, err := r.selectRecordQuery().
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list disciplinary records query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.DisciplinaryRecord
	for rows.Next() {
		rec, err := scanDisciplinaryRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// CountByStudent returns the number of disciplinary records a student has.
func (r *DisciplinaryRepository) CountByStudent(ctx context.Context, studentID int64) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM disciplinary_records WHERE student_id = $1", studentID).Scan(&count)
	return count, err
}

// Update persists record field changes.
func (r *DisciplinaryRepository) Update(ctx context.Context, rec *models.DisciplinaryRecord) error {
	sqlStr, args, err := squirrel.Update("disciplinary_records").
		Set("incident_type", rec.IncidentType).
		Set("description", rec.Description).
		Set("action_taken", rec.ActionTaken).
		Set("severity", rec.Severity).
		Set("date", rec.Date).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": rec.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("recordID", rec.ID).Msg("Error executing update disciplinary record query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

// Delete removes a disciplinary record.
func (r *DisciplinaryRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("disciplinary_records").
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
