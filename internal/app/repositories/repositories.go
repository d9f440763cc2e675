package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            *UserRepository
	StaffRepository           *StaffRepository
	StudentRepository         *StudentRepository
	ClassRepository           *ClassRepository
	PositiveNoteRepository    *PositiveNoteRepository
	DisciplinaryRepository    *DisciplinaryRepository
	ExtracurricularRepository *ExtracurricularRepository
	DocumentRepository        *DocumentRepository
	AchievementRepository     *AchievementRepository
	SubjectRepository         *SubjectRepository
	WorkRepository            *WorkRepository
	GradeRepository           *GradeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(db),
		StaffRepository:           NewStaffRepository(db),
		StudentRepository:         NewStudentRepository(db),
		ClassRepository:           NewClassRepository(db),
		PositiveNoteRepository:    NewPositiveNoteRepository(db),
		DisciplinaryRepository:    NewDisciplinaryRepository(db),
		ExtracurricularRepository: NewExtracurricularRepository(db),
		DocumentRepository:        NewDocumentRepository(db),
		AchievementRepository:     NewAchievementRepository(db),
		SubjectRepository:         NewSubjectRepository(db),
		WorkRepository:            NewWorkRepository(db),
		GradeRepository:           NewGradeRepository(db),
	}
}
