// file: internals/features/school/timetables/exceptions/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	excctl "sekolahku_backend/internals/features/school/timetables/exceptions/controller"
)

// ExceptionUserRoutes — read-only listing & detail.
func ExceptionUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := excctl.New(db, validator.New())

	grp := user.Group("/timetable-exceptions")
	grp.Get("/list", ctl.List) // ?timetable_id&class_id&date_from&date_to&is_approved&type
	grp.Get("/:id", ctl.GetByID)
}
