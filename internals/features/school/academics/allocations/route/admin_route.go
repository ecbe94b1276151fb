// file: internals/features/school/academics/allocations/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocctl "sekolahku_backend/internals/features/school/academics/allocations/controller"
)

// AllocationAdminRoutes mendaftarkan route untuk ADMIN (CRUD penuh)
func AllocationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := allocctl.New(db, validator.New())

	grp := admin.Group("/class-subject-allocations")
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
