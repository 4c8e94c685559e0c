// file: internals/route/details/academic_routes.go
package details

import (
	ClassesRoutes "escola_backend/internals/features/school/academics/classes/route"
	EnrollmentsRoutes "escola_backend/internals/features/school/academics/enrollments/route"
	EvaluationRoutes "escola_backend/internals/features/school/academics/evaluation/route"
	RoomsRoutes "escola_backend/internals/features/school/academics/rooms/route"
	SubjectsRoutes "escola_backend/internals/features/school/academics/subjects/route"
	TimetableRoutes "escola_backend/internals/features/school/academics/timetable/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== PUBLIC ===================== */
// Read-only endpoints reachable without login
func AcademicPublicRoutes(r fiber.Router, db *gorm.DB) {
	SubjectsRoutes.SubjectPublicRoutes(r, db)
	ClassesRoutes.ClassPublicRoutes(r, db)
	RoomsRoutes.RoomPublicRoutes(r, db)
	TimetableRoutes.LessonPublicRoutes(r, db)
}

/* ===================== ADMIN (PRIVATE) ===================== */
// Admin/teacher token with school scope
func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	SubjectsRoutes.SubjectAdminRoutes(r, db)
	ClassesRoutes.ClassAdminRoutes(r, db)
	RoomsRoutes.RoomAdminRoutes(r, db)
	EnrollmentsRoutes.EnrollmentAdminRoutes(r, db)
	EvaluationRoutes.EvaluationAdminRoutes(r, db)
	TimetableRoutes.LessonAdminRoutes(r, db)
}
