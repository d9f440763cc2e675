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

// StaffRepository handles database operations for staff members.
type StaffRepository struct {
	DB *pgxpool.Pool
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) selectStaffQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "nip", "name", "position", "division", "user_id", "homeroom_class", "created_at", "updated_at",
	).From("staff").
		PlaceholderFormat(squirrel.Dollar)
}

func scanStaff(row pgx.Row) (*models.Staff, error) {
	var s models.Staff
	err := row.Scan(
		&s.ID, &s.NIP, &s.Name, &s.Position, &s.Division, &s.UserID, &s.HomeroomClass,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Msg("Error scanning staff row")
		return nil, err
	}
	return &s, nil
}

// GetByID retrieves a staff member by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	sqlStr, args, err := r.selectStaffQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanStaff(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetByUserID retrieves the staff record linked to a user account.
func (r *StaffRepository) GetByUserID(ctx context.Context, userID int64) (*models.Staff, error) {
	sqlStr, args, err := r.selectStaffQuery().Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanStaff(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetAll retrieves all staff members ordered by name.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	sqlStr, args, err := r.selectStaffQuery().OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all staff query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Create inserts a new staff member and returns its ID.
func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) (int64, error) {
	sqlStr, args, err := squirrel.Insert("staff").
		Columns("nip", "name", "position", "division", "user_id", "homeroom_class").
		Values(s.NIP, s.Name, s.Position, s.Division, s.UserID, s.HomeroomClass).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("nip", s.NIP).Msg("Error executing create staff query")
		return 0, err
	}
	return id, nil
}

// Update persists staff field changes.
func (r *StaffRepository) Update(ctx context.Context, s *models.Staff) error {
	sqlStr, args, err := squirrel.Update("staff").
		Set("name", s.Name).
		Set("position", s.Position).
		Set("division", s.Division).
		Set("homeroom_class", s.HomeroomClass).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": s.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", s.ID).Msg("Error executing update staff query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// Delete removes a staff member.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("staff").
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
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// GetNamesByIDs returns a staff ID to name lookup for the given IDs.
func (r *StaffRepository) GetNamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	sqlStr, args, err := squirrel.Select("id", "name").
		From("staff").
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

// CountAll returns the total number of staff members.
func (r *StaffRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, "SELECT count(*) FROM staff").Scan(&count)
	return count, err
}
