// file: internals/features/school/settings/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingctl "sekolahku_backend/internals/features/school/settings/controller"
)

// SchoolSettingUserRoutes mendaftarkan route baca setting (USER).
func SchoolSettingUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := settingctl.New(db, validator.New())

	grp := user.Group("/school-settings")
	grp.Get("/", ctl.Get)
}
