// file: internals/features/school/timetables/exceptions/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	excctl "sekolahku_backend/internals/features/school/timetables/exceptions/controller"
)

// ExceptionAdminRoutes — seluruh mutasi ledger. Create/patch/delete
// boleh guru maupun admin (guard di controller); approve hanya admin.
func ExceptionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := excctl.New(db, validator.New())

	grp := admin.Group("/timetable-exceptions")
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Post("/:id/approve", ctl.Approve)
	grp.Delete("/:id", ctl.Delete)
}
