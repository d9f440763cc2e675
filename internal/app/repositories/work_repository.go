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

// WorkRepository handles database operations for work items, teacher work
// progress rows and uploaded work files.
type WorkRepository struct {
	DB *pgxpool.Pool
}

// NewWorkRepository creates a new instance of WorkRepository.
func NewWorkRepository(db *pgxpool.Pool) *WorkRepository {
	return &WorkRepository{DB: db}
}

// GetAllItems retrieves all work items ordered by ID so the documentation
// checklist keeps a stable order.
func (r *WorkRepository) GetAllItems(ctx context.Context) ([]*models.WorkItem, error) {
	sqlStr, args, err := squirrel.Select("id", "name", "description", "created_at", "updated_at").
		From("work_items").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list work items query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.WorkItem
	for rows.Next() {
		var w models.WorkItem
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &w)
	}
	return result, rows.Err()
}

// GetItemByID retrieves a work item by ID.
func (r *WorkRepository) GetItemByID(ctx context.Context, id int64) (*models.WorkItem, error) {
	sqlStr, args, err := squirrel.Select("id", "name", "description", "created_at", "updated_at").
		From("work_items").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var w models.WorkItem
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(&w.ID, &w.Name, &w.Description, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWorkItemNotFound
		}
		return nil, err
	}
	return &w, nil
}

// CreateItem inserts a new work item and returns its ID.
func (r *WorkRepository) CreateItem(ctx context.Context, w *models.WorkItem) (int64, error) {
	sqlStr, args, err := squirrel.Insert("work_items").
		Columns("name", "description").
		Values(w.Name, w.Description).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", w.Name).Msg("Error executing create work item query")
		return 0, err
	}
	return id, nil
}

// UpdateItem persists work item changes.
func (r *WorkRepository) UpdateItem(ctx context.Context, w *models.WorkItem) error {
	sqlStr, args, err := squirrel.Update("work_items").
		Set("name", w.Name).
		Set("description", w.Description).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": w.ID}).
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
		return apperrors.ErrWorkItemNotFound
	}
	return nil
}

// DeleteItem removes a work item.
func (r *WorkRepository) DeleteItem(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("work_items").
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
		return apperrors.ErrWorkItemNotFound
	}
	return nil
}

// EnsureWork inserts a progress row for the staff-subject-item triple if one
// does not already exist, and returns the row.
func (r *WorkRepository) EnsureWork(ctx context.Context, staffID, subjectID, workItemID int64) (*models.TeacherSubjectWork, error) {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO teacher_subject_works (staff_id, subject_id, work_item_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (staff_id, subject_id, work_item_id) DO NOTHING`,
		staffID, subjectID, workItemID)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", staffID).Int64("subjectID", subjectID).Msg("Error ensuring teacher work row")
		return nil, err
	}
	return r.GetWork(ctx, staffID, subjectID, workItemID)
}

// GetWork retrieves one progress row by its natural key.
func (r *WorkRepository) GetWork(ctx context.Context, staffID, subjectID, workItemID int64) (*models.TeacherSubjectWork, error) {
	sqlStr, args, err := squirrel.Select("id", "staff_id", "subject_id", "work_item_id", "drive_folder_id", "created_at", "updated_at").
		From("teacher_subject_works").
		Where(squirrel.Eq{"staff_id": staffID, "subject_id": subjectID, "work_item_id": workItemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var w models.TeacherSubjectWork
	err = r.DB.QueryRow(ctx, sqlStr, args...).Scan(
		&w.ID, &w.StaffID, &w.SubjectID, &w.WorkItemID, &w.DriveFolderID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWorkItemNotFound
		}
		return nil, err
	}
	return &w, nil
}

// ListWorksBySubject retrieves the progress rows of one teacher for one
// subject together with the work item each row covers.
func (r *WorkRepository) ListWorksBySubject(ctx context.Context, staffID, subjectID int64) ([]*models.TeacherSubjectWork, error) {
	sqlStr, args, err := squirrel.Select(
		"w.id", "w.staff_id", "w.subject_id", "w.work_item_id", "w.drive_folder_id", "w.created_at", "w.updated_at",
		"i.name", "i.description",
	).From("teacher_subject_works w").
		Join("work_items i ON w.work_item_id = i.id").
		Where(squirrel.Eq{"w.staff_id": staffID, "w.subject_id": subjectID}).
		OrderBy("i.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", staffID).Msg("Error executing list teacher works query")
		return nil, err
	}
	defer rows.Close()

	var result []*models.TeacherSubjectWork
	for rows.Next() {
		var w models.TeacherSubjectWork
		var item models.WorkItem
		err := rows.Scan(
			&w.ID, &w.StaffID, &w.SubjectID, &w.WorkItemID, &w.DriveFolderID, &w.CreatedAt, &w.UpdatedAt,
			&item.Name, &item.Description,
		)
		if err != nil {
			return nil, err
		}
		item.ID = w.WorkItemID
		w.WorkItem = &item
		result = append(result, &w)
	}
	return result, rows.Err()
}

// SetDriveFolder records the remote folder created for a progress row.
func (r *WorkRepository) SetDriveFolder(ctx context.Context, workID int64, folderID string) error {
	tag, err := r.DB.Exec(ctx,
		"UPDATE teacher_subject_works SET drive_folder_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		folderID, workID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrWorkItemNotFound
	}
	return nil
}

// AddWorkFile inserts a work file row and returns its ID.
func (r *WorkRepository) AddWorkFile(ctx context.Context, f *models.WorkFile) (int64, error) {
	sqlStr, args, err := squirrel.Insert("work_files").
		Columns("work_id", "file_name", "file_path", "file_size", "mime_type").
		Values(f.WorkID, f.FileName, f.FilePath, f.FileSize, f.MimeType).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("workID", f.WorkID).Msg("Error executing add work file query")
		return 0, err
	}
	return id, nil
}

// ListWorkFiles retrieves the files uploaded for a progress row.
func (r *WorkRepository) ListWorkFiles(ctx context.Context, workID int64) ([]*models.WorkFile, error) {
	sqlStr, args, err := squirrel.Select("id", "work_id", "file_name", "file_path", "file_size", "mime_type", "uploaded_at").
		From("work_files").
		Where(squirrel.Eq{"work_id": workID}).
		OrderBy("uploaded_at DESC", "id DESC").
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

	var result []*models.WorkFile
	for rows.Next() {
		var f models.WorkFile
		if err := rows.Scan(&f.ID, &f.WorkID, &f.FileName, &f.FilePath, &f.FileSize, &f.MimeType, &f.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, &f)
	}
	return result, rows.Err()
}

// CountWorkFiles returns the number of files uploaded per progress row for a
// teacher-subject pairing, keyed by work item ID.
func (r *WorkRepository) CountWorkFiles(ctx context.Context, staffID, subjectID int64) (map[int64]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT w.work_item_id, count(f.id)
		 FROM teacher_subject_works w
		 LEFT JOIN work_files f ON f.work_id = w.id
		 WHERE w.staff_id = $1 AND w.subject_id = $2
		 GROUP BY w.work_item_id`,
		staffID, subjectID)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", staffID).Msg("Error executing count work files query")
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var itemID int64
		var count int
		if err := rows.Scan(&itemID, &count); err != nil {
			return nil, err
		}
		counts[itemID] = count
	}
	return counts, rows.Err()
}
