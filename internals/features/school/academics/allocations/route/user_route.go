// file: internals/features/school/academics/allocations/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocctl "sekolahku_backend/internals/features/school/academics/allocations/controller"
)

// AllocationUserRoutes mendaftarkan route untuk USER (read-only).
// Dipakai editor slot untuk menampilkan pilihan mapel + guru tersirat.
func AllocationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := allocctl.New(db, validator.New())

	grp := user.Group("/class-subject-allocations")
	grp.Get("/list", ctl.List) // ?class_id&academic_year&status&subject_id&teacher_id
	grp.Get("/:id", ctl.GetByID)
}
