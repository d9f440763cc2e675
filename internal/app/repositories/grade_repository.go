package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/pkg/logger"
)

// GradeRepository handles database operations for recorded student grades.
type GradeRepository struct {
	DB *pgxpool.Pool
}

// NewGradeRepository creates a new instance of GradeRepository.
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{DB: db}
}

// Create inserts a grade row and returns its ID.
func (r *GradeRepository) Create(ctx context.Context, g *models.StudentGrade) (int64, error) {
	sqlStr, args, err := squirrel.Insert("student_grades").
		Columns("student_id", "subject_id", "semester", "score", "assessment_at").
		Values(g.StudentID, g.SubjectID, g.Semester, g.Score, g.AssessmentAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", g.StudentID).Msg("Error executing create grade query")
		return 0, err
	}
	return id, nil
}

// ListByStudent retrieves all grades for a student with subject names, newest
// assessment first.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentGrade, error) {
	sqlStr, args, err := squirrel.Select(
		"g.id", "g.student_id", "g.subject_id", "g.semester", "g.score", "g.assessment_at", "g.created_at",
		"s.name", "s.code",
	).From("student_grades g").
		Join("subjects s ON g.subject_id = s.id").
		Where(squirrel.Eq{"g.student_id": studentID}).
		OrderBy("g.assessment_at DESC", "g.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list grades query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.StudentGrade
	for rows.Next() {
		var g models.StudentGrade
		var subject models.Subject
		err := rows.Scan(
			&g.ID, &g.StudentID, &g.SubjectID, &g.Semester, &g.Score, &g.AssessmentAt, &g.CreatedAt,
			&subject.Name, &subject.Code,
		)
		if err != nil {
			return nil, err
		}
		subject.ID = g.SubjectID
		g.Subject = &subject
		result = append(result, &g)
	}
	return result, rows.Err()
}

// SubjectAverageRow holds one per-subject aggregate for a student.
type SubjectAverageRow struct {
	SubjectID   int64
	SubjectName string
	Average     float64
	GradeCount  int
}

// AveragesByStudent computes per-subject score averages for a student.
func (r *GradeRepository) AveragesByStudent(ctx context.Context, studentID int64) ([]*SubjectAverageRow, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT s.id, s.name, avg(g.score), count(g.id)
		 FROM student_grades g
		 JOIN subjects s ON g.subject_id = s.id
		 WHERE g.student_id = $1
		 GROUP BY s.id, s.name
		 ORDER BY s.name ASC`,
		studentID)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing grade averages query")
		return nil, err
	}
	defer rows.Close()

	var result []*SubjectAverageRow
	for rows.Next() {
		var row SubjectAverageRow
		if err := rows.Scan(&row.SubjectID, &row.SubjectName, &row.Average, &row.GradeCount); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}
