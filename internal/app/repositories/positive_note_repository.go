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

// PositiveNoteRepository handles database operations for positive notes.
type PositiveNoteRepository struct {
	DB *pgxpool.Pool
}

// NewPositiveNoteRepository creates a new instance of PositiveNoteRepository.
func NewPositiveNoteRepository(db *pgxpool.Pool) *PositiveNoteRepository {
	return &PositiveNoteRepository{DB: db}
}

func (r *PositiveNoteRepository) selectNoteQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "student_id", "staff_id", "note", "category", "date", "created_at", "updated_at",
	).From("positive_notes").
		PlaceholderFormat(squirrel.Dollar)
}

func scanPositiveNote(row pgx.Row) (*models.PositiveNote, error) {
	var n models.PositiveNote
	err := row.Scan(
		&n.ID, &n.StudentID, &n.StaffID, &n.Note, &n.Category, &n.Date, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Msg("Error scanning positive note row")
		return nil, err
	}
	return &n, nil
}

// Create inserts a new positive note and returns its ID.
func (r *PositiveNoteRepository) Create(ctx context.Context, n *models.PositiveNote) (int64, error) {
	sqlStr, args, err := squirrel.Insert("positive_notes").
		Columns("student_id", "staff_id", "note", "category", "date").
		Values(n.StudentID, n.StaffID, n.Note, n.Category, n.Date).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", n.StudentID).Msg("Error executing create positive note query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a positive note by ID.
func (r *PositiveNoteRepository) GetByID(ctx context.Context, id int64) (*models.PositiveNote, error) {
	sqlStr, args, err := r.selectNoteQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPositiveNote(r.DB.QueryRow(ctx, sqlStr, args...))
}

// ListByStudent retrieves all positive notes for a student, newest first.
func (r *PositiveNoteRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.PositiveNote, error) {
	sqlStr, args, err := r.selectNoteQuery().
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list positive notes query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.PositiveNote
	for rows.Next() {
		n, err := scanPositiveNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

// CountByStudent returns the number of positive notes a student has.
func (r *PositiveNoteRepository) CountByStudent(ctx context.Context, studentID int64) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM positive_notes WHERE student_id = $1", studentID).Scan(&count)
	return count, err
}

// Update persists note field changes.
func (r *PositiveNoteRepository) Update(ctx context.Context, n *models.PositiveNote) error {
	sqlStr, args, err := squirrel.Update("positive_notes").
		Set("note", n.Note).
		Set("category", n.Category).
		Set("date", n.Date).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": n.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", n.ID).Msg("Error executing update positive note query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

// Delete removes a positive note.
func (r *PositiveNoteRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("positive_notes").
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
