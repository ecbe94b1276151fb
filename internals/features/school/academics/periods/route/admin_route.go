// file: internals/features/school/academics/periods/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodctl "sekolahku_backend/internals/features/school/academics/periods/controller"
)

// PeriodAdminRoutes mendaftarkan route untuk ADMIN (CRUD penuh)
func PeriodAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := periodctl.New(db, validator.New())

	grp := admin.Group("/periods")
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
