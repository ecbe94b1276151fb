// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocRoute "sekolahku_backend/internals/features/school/academics/allocations/route"
	periodRoute "sekolahku_backend/internals/features/school/academics/periods/route"
	settingRoute "sekolahku_backend/internals/features/school/settings/route"
	excRoute "sekolahku_backend/internals/features/school/timetables/exceptions/route"
	ttRoute "sekolahku_backend/internals/features/school/timetables/timetable/route"
)

// SchoolPublicRoutes — endpoint tanpa token. Saat ini hanya ping per
// fitur; detail sekolah publik menyusul.
func SchoolPublicRoutes(public fiber.Router, db *gorm.DB) {
	public.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
}

// SchoolUserRoutes — butuh login; read-only + pengajuan exception.
func SchoolUserRoutes(user fiber.Router, db *gorm.DB) {
	periodRoute.PeriodUserRoutes(user, db)
	allocRoute.AllocationUserRoutes(user, db)
	settingRoute.SchoolSettingUserRoutes(user, db)
	ttRoute.TimetableUserRoutes(user, db)
	excRoute.ExceptionUserRoutes(user, db)
}

// SchoolAdminRoutes — butuh login; guard admin di masing-masing controller.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	periodRoute.PeriodAdminRoutes(admin, db)
	allocRoute.AllocationAdminRoutes(admin, db)
	settingRoute.SchoolSettingAdminRoutes(admin, db)
	ttRoute.TimetableAdminRoutes(admin, db)
	excRoute.ExceptionAdminRoutes(admin, db)
}
