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

// AchievementRepository handles database operations for student achievements.
type AchievementRepository struct {
	DB *pgxpool.Pool
}

// NewAchievementRepository creates a new instance of AchievementRepository.
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) selectAchievementQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "student_id", "achievement_type", "achievement_name", "description",
		"date_achieved", "criteria_met", "level", "score_value", "issuing_organization",
		"status", "verified_by", "verified_at", "verification_notes",
		"created_at", "updated_at",
	).From("student_achievements").
		PlaceholderFormat(squirrel.Dollar)
}

func scanAchievement(row pgx.Row) (*models.Achievement, error) {
	var a models.Achievement
	err := row.Scan(
		&a.ID, &a.StudentID, &a.AchievementType, &a.AchievementName, &a.Description,
		&a.DateAchieved, &a.CriteriaMet, &a.Level, &a.ScoreValue, &a.IssuingOrganization,
		&a.Status, &a.VerifiedBy, &a.VerifiedAt, &a.VerificationNotes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAchievementNotFound
		}
		logger.Error().Err(err).Msg("Error scanning achievement row")
		return nil, err
	}
	return &a, nil
}

// Create inserts a new achievement in pending status and returns its ID.
func (r *AchievementRepository) Create(ctx context.Context, a *models.Achievement) (int64, error) {
	sqlStr, args, err := squirrel.Insert("student_achievements").
		Columns(
			"student_id", "achievement_type", "achievement_name", "description",
			"date_achieved", "criteria_met", "level", "score_value", "issuing_organization", "status",
		).
		Values(
			a.StudentID, a.AchievementType, a.AchievementName, a.Description,
			a.DateAchieved, a.CriteriaMet, a.Level, a.ScoreValue, a.IssuingOrganization, a.Status,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", a.StudentID).Msg("Error executing create achievement query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves an achievement by ID.
func (r *AchievementRepository) GetByID(ctx context.Context, id int64) (*models.Achievement, error) {
	sqlStr, args, err := r.selectAchievementQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanAchievement(r.DB.QueryRow(ctx, sqlStr, args...))
}

// ListByStudent retrieves all achievements for a student, most recent first.
func (r *AchievementRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Achievement, error) {
	sqlStr, args, err := r.selectAchievementQuery().
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date_achieved DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryAchievements(ctx, sqlStr, args)
}

// ListPending retrieves every achievement awaiting verification, oldest first
// so the queue is processed in submission order.
func (r *AchievementRepository) ListPending(ctx context.Context) ([]*models.Achievement, error) {
	sqlStr, args, err := r.selectAchievementQuery().
		Where(squirrel.Eq{"status": models.AchievementPending}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryAchievements(ctx, sqlStr, args)
}

func (r *AchievementRepository) queryAchievements(ctx context.Context, sqlStr string, args []interface{}) ([]*models.Achievement, error) {
	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing achievements query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// CountByStudent returns the number of achievements per status for a student.
func (r *AchievementRepository) CountByStudent(ctx context.Context, studentID int64, status models.AchievementStatus) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		"SELECT count(*) FROM student_achievements WHERE student_id = $1 AND status = $2",
		studentID, status).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Update persists achievement field changes.
func (r *AchievementRepository) Update(ctx context.Context, a *models.Achievement) error {
	sqlStr, args, err := squirrel.Update("student_achievements").
		Set("achievement_type", a.AchievementType).
		Set("achievement_name", a.AchievementName).
		Set("description", a.Description).
		Set("date_achieved", a.DateAchieved).
		Set("criteria_met", a.CriteriaMet).
		Set("level", a.Level).
		Set("score_value", a.ScoreValue).
		Set("issuing_organization", a.IssuingOrganization).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": a.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("achievementID", a.ID).Msg("Error executing update achievement query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAchievementNotFound
	}
	return nil
}

// SetVerification records the verification outcome for an achievement.
func (r *AchievementRepository) SetVerification(ctx context.Context, a *models.Achievement) error {
	sqlStr, args, err := squirrel.Update("student_achievements").
		Set("status", a.Status).
		Set("verified_by", a.VerifiedBy).
		Set("verified_at", a.VerifiedAt).
		Set("verification_notes", a.VerificationNotes).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": a.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("achievementID", a.ID).Msg("Error executing verify achievement query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAchievementNotFound
	}
	return nil
}

// Delete removes an achievement.
func (r *AchievementRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("student_achievements").
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
		return apperrors.ErrAchievementNotFound
	}
	return nil
}
