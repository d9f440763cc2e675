package services

// Services defined in this package:
// - AuthService: Handles login and profile resolution
// - StudentService: Handles homeroom roster and student records
// - RecordService: Handles positive notes and disciplinary records
// - ExtracurricularService: Handles activity participation histories
// - AchievementService: Handles achievements and their verification
// - DocumentService: Handles student document storage
// - SubjectService: Handles subject assignments and work documentation
// - AdminService: Handles school-wide administration
