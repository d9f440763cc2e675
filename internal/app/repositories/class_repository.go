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

// ClassRepository handles database operations for school classes.
type ClassRepository struct {
	DB *pgxpool.Pool
}

// NewClassRepository creates a new instance of ClassRepository.
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) selectClassQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"c.id", "c.name", "c.level", "c.capacity", "c.homeroom_teacher_id", "c.created_at", "c.updated_at",
		"t.name",
	).From("school_classes c").
		LeftJoin("staff t ON c.homeroom_teacher_id = t.id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanClass(row pgx.Row) (*models.SchoolClass, error) {
	var c models.SchoolClass
	var teacherName *string
	err := row.Scan(&c.ID, &c.Name, &c.Level, &c.Capacity, &c.HomeroomTeacherID, &c.CreatedAt, &c.UpdatedAt, &teacherName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassNotFound
		}
		logger.Error().Err(err).Msg("Error scanning school class row")
		return nil, err
	}
	if c.HomeroomTeacherID != nil && teacherName != nil {
		c.HomeroomTeacher = &models.Staff{ID: *c.HomeroomTeacherID, Name: *teacherName}
	}
	return &c, nil
}

// GetAll retrieves all classes ordered by level then name.
func (r *ClassRepository) GetAll(ctx context.Context) ([]*models.SchoolClass, error) {
	sqlStr, args, err := r.selectClassQuery().OrderBy("c.level ASC", "c.name ASC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list classes query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.SchoolClass
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// GetByID retrieves a class by ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.SchoolClass, error) {
	sqlStr, args, err := r.selectClassQuery().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanClass(r.DB.QueryRow(ctx, sqlStr, args...))
}

// Create inserts a new class and returns its ID.
func (r *ClassRepository) Create(ctx context.Context, c *models.SchoolClass) (int64, error) {
	sqlStr, args, err := squirrel.Insert("school_classes").
		Columns("name", "level", "capacity", "homeroom_teacher_id").
		Values(c.Name, c.Level, c.Capacity, c.HomeroomTeacherID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", c.Name).Msg("Error executing create class query")
		return 0, err
	}
	return id, nil
}

// Update persists class field changes.
func (r *ClassRepository) Update(ctx context.Context, c *models.SchoolClass) error {
	sqlStr, args, err := squirrel.Update("school_classes").
		Set("name", c.Name).
		Set("level", c.Level).
		Set("capacity", c.Capacity).
		Set("homeroom_teacher_id", c.HomeroomTeacherID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": c.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classID", c.ID).Msg("Error executing update class query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

// Delete removes a class.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("school_classes").
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
		return apperrors.ErrClassNotFound
	}
	return nil
}

// GetByName retrieves a class by its unique name.
func (r *ClassRepository) GetByName(ctx context.Context, name string) (*models.SchoolClass, error) {
	sqlStr, args, err := r.selectClassQuery().Where(squirrel.Eq{"c.name": name}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanClass(r.DB.QueryRow(ctx, sqlStr, args...))
}

// CountStudents returns the number of active students currently placed in the
// named class.
func (r *ClassRepository) CountStudents(ctx context.Context, className string) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		"SELECT count(*) FROM students WHERE class = $1 AND status = $2",
		className, models.StudentStatusActive).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountAll returns the total number of classes.
func (r *ClassRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRow(ctx, "SELECT count(*) FROM school_classes").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
