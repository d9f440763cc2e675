package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/sekolahku/sekolahku/internal/app/models"
	appRepos "github.com/sekolahku/sekolahku/internal/app/repositories"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
	"github.com/sekolahku/sekolahku/internal/config"
	pkgAuth "github.com/sekolahku/sekolahku/internal/pkg/auth"
)

// defaultWorkItems is the standard checklist of administrative documents
// every teacher maintains per subject.
var defaultWorkItems = []appModels.WorkItem{
	{Name: "Kalender Pendidikan", Description: strPtr("Academic calendar for the current school year")},
	{Name: "Program Tahunan", Description: strPtr("Annual teaching program")},
	{Name: "Program Semester", Description: strPtr("Semester teaching program")},
	{Name: "Silabus", Description: strPtr("Subject syllabus")},
	{Name: "Rencana Pelaksanaan Pembelajaran", Description: strPtr("Lesson plans")},
	{Name: "Daftar Hadir Siswa", Description: strPtr("Student attendance sheet")},
	{Name: "Daftar Nilai", Description: strPtr("Grade book")},
	{Name: "Analisis Hasil Penilaian", Description: strPtr("Assessment result analysis")},
}

func strPtr(s string) *string { return &s }

// CreateDefaultData provisions the initial admin account and the default
// administrative work items when they do not exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	workRepo := appRepos.NewWorkRepository(dbPool)

	var finalErr error

	// --- Admin account --- //
	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@sekolahku.sch.id")
	_, err := userRepo.GetUserByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		lgr.Debug().Str("email", adminEmail).Msg("Admin account already exists")
	case errors.Is(err, apperrors.ErrUserNotFound):
		adminPassword := config.GetEnv("ADMIN_PASSWORD", "admin123")
		hashed, hashErr := pkgAuth.HashPassword(adminPassword)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, hashErr)
			break
		}

		adminID, createErr := userRepo.CreateUser(ctx, &appModels.User{
			Email:    adminEmail,
			Password: hashed,
			RoleType: appModels.RoleAdmin,
			IsActive: true,
		})
		if createErr != nil {
			lgr.Error().Err(createErr).Msg("Error creating default admin account")
			finalErr = errors.Join(finalErr, createErr)
			break
		}
		lgr.Info().Int64("userID", adminID).Str("email", adminEmail).Msg("Default admin account created")
	default:
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Default work items --- //
	existing, err := workRepo.GetAllItems(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing work items")
		return errors.Join(finalErr, err)
	}

	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[item.Name] = true
	}

	created := 0
	for i := range defaultWorkItems {
		item := defaultWorkItems[i]
		if known[item.Name] {
			continue
		}
		if _, err := workRepo.CreateItem(ctx, &item); err != nil {
			lgr.Error().Err(err).Str("name", item.Name).Msg("Error creating default work item")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}
	if created > 0 {
		lgr.Info().Int("created", created).Msg("Default work items created")
	}

	return finalErr
}
