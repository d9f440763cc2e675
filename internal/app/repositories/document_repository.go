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

// DocumentRepository handles database operations for student documents.
type DocumentRepository struct {
	DB *pgxpool.Pool
}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) selectDocumentQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "student_id", "title", "document_type", "file_name", "file_path",
		"file_size", "mime_type", "uploaded_by", "uploaded_at", "description",
	).From("student_documents").
		PlaceholderFormat(squirrel.Dollar)
}

func scanDocument(row pgx.Row) (*models.StudentDocument, error) {
	var d models.StudentDocument
	err := row.Scan(
		&d.ID, &d.StudentID, &d.Title, &d.DocumentType, &d.FileName, &d.FilePath,
		&d.FileSize, &d.MimeType, &d.UploadedBy, &d.UploadedAt, &d.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student document row")
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns its ID.
func (r *DocumentRepository) Create(ctx context.Context, d *models.StudentDocument) (int64, error) {
	sqlStr, args, err := squirrel.Insert("student_documents").
		Columns("student_id", "title", "document_type", "file_name", "file_path", "file_size", "mime_type", "uploaded_by", "description").
		Values(d.StudentID, d.Title, d.DocumentType, d.FileName, d.FilePath, d.FileSize, d.MimeType, d.UploadedBy, d.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", d.StudentID).Msg("Error executing create student document query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a document by ID.
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.StudentDocument, error) {
	sqlStr, args, err := r.selectDocumentQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanDocument(r.DB.QueryRow(ctx, sqlStr, args...))
}

// ListByStudent retrieves all documents for a student, newest upload first.
func (r *DocumentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.StudentDocument, error) {
	sqlStr, args, err := r.selectDocumentQuery().
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("uploaded_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list student documents query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.StudentDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// Delete removes a document row.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("student_documents").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("documentID", id).Msg("Error executing delete student document query")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
