// file: internals/features/school/timetables/timetable/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttctl "sekolahku_backend/internals/features/school/timetables/timetable/controller"
)

// TimetableUserRoutes mendaftarkan route baca timetable & grid (USER).
func TimetableUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := ttctl.New(db, validator.New())

	grp := user.Group("/timetables")
	grp.Get("/by-class/:class_id", ctl.GetByClass)
	grp.Get("/by-class/:class_id/grid", ctl.Grid) // ?academic_year=&date=YYYY-MM-DD
}
