// file: internals/features/school/academics/periods/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodctl "sekolahku_backend/internals/features/school/academics/periods/controller"
)

// PeriodUserRoutes mendaftarkan route untuk USER (read-only)
func PeriodUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := periodctl.New(db, validator.New())

	grp := user.Group("/periods")
	grp.Get("/list", ctl.List) // ?type&is_active&sort_by&order&page&per_page
	grp.Get("/:id", ctl.GetByID)
}
