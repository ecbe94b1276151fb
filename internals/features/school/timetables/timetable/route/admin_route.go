// file: internals/features/school/timetables/timetable/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ttctl "sekolahku_backend/internals/features/school/timetables/timetable/controller"
	"sekolahku_backend/internals/middlewares"
)

// TimetableAdminRoutes mendaftarkan route mutasi timetable (ADMIN).
// Mutasi slot dibatasi rate limiter khusus jadwal.
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := ttctl.New(db, validator.New())

	grp := admin.Group("/timetables")
	grp.Post("/", ctl.Create)
	grp.Post("/generated", ctl.CreateGenerated)
	grp.Put("/:id/slots", middlewares.ScheduleMutationRateLimiter(), ctl.UpsertSlot)
	grp.Delete("/:id/slots", middlewares.ScheduleMutationRateLimiter(), ctl.DeleteSlot)
}
