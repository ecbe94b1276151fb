// file: internals/features/school/settings/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingctl "sekolahku_backend/internals/features/school/settings/controller"
)

// SchoolSettingAdminRoutes mendaftarkan route upsert setting (ADMIN).
func SchoolSettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := settingctl.New(db, validator.New())

	grp := admin.Group("/school-settings")
	grp.Put("/", ctl.Upsert)
}
