package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sekolahku/sekolahku/internal/app/controllers"
	"github.com/sekolahku/sekolahku/internal/app/models"
	"github.com/sekolahku/sekolahku/internal/app/models/dto"
	"github.com/sekolahku/sekolahku/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	recordController *controllers.RecordController,
	extracurricularController *controllers.ExtracurricularController,
	achievementController *controllers.AchievementController,
	documentController *controllers.DocumentController,
	subjectController *controllers.SubjectController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)
	}

	// --- Teacher surface ---
	// Everything here operates on the teacher's own homeroom class or
	// subject assignments; ownership is enforced in the service layer.
	teacher := authenticated.Group("/teacher")
	teacher.Use(authMiddleware.RoleRequired(string(models.RoleTeacher)))
	{
		// Homeroom roster
		students := teacher.Group("/students")
		{
			students.GET("", studentController.GetRoster)
			students.POST("", studentController.CreateStudent)
			students.GET("/:id", studentController.GetStudentDetail)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.RemoveStudent)
			students.GET("/:id/behavior", studentController.GetBehaviorSummary)
			students.GET("/:id/academic", studentController.GetAcademicSummary)

			// Per-student records
			students.POST("/:id/notes", recordController.CreatePositiveNote)
			students.GET("/:id/notes", recordController.ListPositiveNotes)
			students.POST("/:id/disciplinary", recordController.CreateDisciplinaryRecord)
			students.GET("/:id/disciplinary", recordController.ListDisciplinaryRecords)
			students.POST("/:id/extracurriculars", extracurricularController.CreateHistory)
			students.GET("/:id/extracurriculars", extracurricularController.ListHistory)
			students.POST("/:id/achievements", achievementController.CreateAchievement)
			students.GET("/:id/achievements", achievementController.ListAchievements)
			students.POST("/:id/documents", documentController.UploadDocument)
			students.GET("/:id/documents", documentController.ListDocuments)
		}

		// Record mutations addressed by record ID
		teacher.PUT("/notes/:noteId", recordController.UpdatePositiveNote)
		teacher.DELETE("/notes/:noteId", recordController.DeletePositiveNote)
		teacher.PUT("/disciplinary/:recordId", recordController.UpdateDisciplinaryRecord)
		teacher.DELETE("/disciplinary/:recordId", recordController.DeleteDisciplinaryRecord)
		teacher.PUT("/extracurricular-history/:historyId", extracurricularController.UpdateHistory)
		teacher.DELETE("/extracurricular-history/:historyId", extracurricularController.DeleteHistory)
		teacher.PUT("/achievements/:achievementId", achievementController.UpdateAchievement)
		teacher.DELETE("/achievements/:achievementId", achievementController.DeleteAchievement)
		teacher.GET("/documents/:documentId/download", documentController.DownloadDocument)
		teacher.DELETE("/documents/:documentId", documentController.DeleteDocument)

		// Activity catalog (read only on the teacher surface)
		teacher.GET("/extracurriculars", extracurricularController.ListActivities)

		// Subject assignments and administrative work tracking
		subjects := teacher.Group("/subjects")
		{
			subjects.GET("", subjectController.ListMySubjects)
			subjects.GET("/:id", subjectController.GetSubjectDetail)
			subjects.POST("/:id/folders", subjectController.InitWorkFolders)
			subjects.POST("/:id/work/:itemId/files", subjectController.UploadWorkFile)
			subjects.GET("/:id/work/:itemId/files", subjectController.ListWorkFiles)
		}
	}

	// --- Admin surface ---
	admin := authenticated.Group("/admin")
	admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		staff := admin.Group("/staff")
		{
			staff.POST("", adminController.CreateStaff)
			staff.GET("", adminController.ListStaff)
			staff.GET("/:id", adminController.GetStaff)
			staff.PUT("/:id", adminController.UpdateStaff)
			staff.DELETE("/:id", adminController.DeleteStaff)
		}

		classes := admin.Group("/classes")
		{
			classes.POST("", adminController.CreateClass)
			classes.GET("", adminController.ListClasses)
			classes.PUT("/:id", adminController.UpdateClass)
			classes.DELETE("/:id", adminController.DeleteClass)
		}

		subjects := admin.Group("/subjects")
		{
			subjects.POST("", adminController.CreateSubject)
			subjects.GET("", adminController.ListSubjects)
			subjects.PUT("/:id", adminController.UpdateSubject)
			subjects.DELETE("/:id", adminController.DeleteSubject)
			subjects.POST("/:id/assign", adminController.AssignSubject)
			subjects.DELETE("/:id/assign/:staffId", adminController.UnassignSubject)
			subjects.POST("/:id/enroll", adminController.EnrollStudent)
			subjects.DELETE("/:id/enroll/:studentId", adminController.UnenrollStudent)
		}

		extracurriculars := admin.Group("/extracurriculars")
		{
			extracurriculars.POST("", adminController.CreateExtracurricular)
			extracurriculars.GET("", adminController.ListExtracurriculars)
			extracurriculars.PUT("/:id", adminController.UpdateExtracurricular)
			extracurriculars.DELETE("/:id", adminController.DeleteExtracurricular)
		}

		workItems := admin.Group("/work-items")
		{
			workItems.POST("", adminController.CreateWorkItem)
			workItems.GET("", adminController.ListWorkItems)
			workItems.PUT("/:id", adminController.UpdateWorkItem)
			workItems.DELETE("/:id", adminController.DeleteWorkItem)
		}

		students := admin.Group("/students")
		{
			students.POST("", adminController.CreateStudent)
			students.GET("", adminController.ListStudents)
			students.GET("/:id", adminController.GetStudent)
			students.PUT("/:id", adminController.UpdateStudent)
			students.PUT("/:id/homeroom", adminController.AssignHomeroom)
			students.DELETE("/:id", adminController.DeleteStudent)
		}

		achievements := admin.Group("/achievements")
		{
			achievements.GET("/pending", achievementController.ListPendingAchievements)
			achievements.POST("/:achievementId/verify", achievementController.VerifyAchievement)
		}

		admin.GET("/dashboard", adminController.GetDashboardStats)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
