// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/middlewares"
	middleware "sekolahku_backend/internals/middlewares/auth_school"
	details "sekolahku_backend/internals/route/details"
)

// SetupRoutes menyusun tiga "lapis" route:
//
//	/api/public → tanpa token
//	/api/u      → butuh login (user/guru/admin; guard role di controller)
//	/api/a      → butuh login; mutasi schedule (guard admin di controller)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// DB ikut di locals supaya handler ad-hoc bisa ambil tanpa closure
	api := app.Group("/api", middlewares.DBMiddleware(db))

	public := api.Group("/public")
	details.SchoolPublicRoutes(public, db)

	authed := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := api.Group("/u", authed)
	details.SchoolUserRoutes(user, db)

	admin := api.Group("/a", authed)
	details.SchoolAdminRoutes(admin, db)
}
