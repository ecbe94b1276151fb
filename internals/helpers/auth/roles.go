// file: internals/helpers/auth/roles.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================================================
   Locals keys — dihydrate oleh middleware AuthJWT
   ========================================================= */

const (
	LocUserID         = "user_id"
	LocTeacherID      = "teacher_id"
	LocSchoolID       = "school_id"
	LocActiveSchoolID = "active_school_id"
	LocRolesGlobal    = "roles_global"
	LocSchoolRoles    = "school_roles"
	LocIsOwner        = "is_owner"
)

// Role names (selaras dengan claim "roles_global" / "school_roles")
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

type SchoolRolesEntry struct {
	SchoolID uuid.UUID
	Roles    []string
}

type RolesClaim struct {
	RolesGlobal []string
	SchoolRoles []SchoolRolesEntry
}

/* =========================================================
   Token extractors
   ========================================================= */

func localString(c *fiber.Ctx, key string) string {
	if v := c.Locals(key); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// GetUserIDFromToken mengambil user_id (UUID) dari locals hasil middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := localString(c, LocUserID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

// GetSchoolIDFromToken mengambil school scope aktif dari token.
// Semua row tenant WAJIB memakai id ini, bukan id dari body request.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	s := localString(c, LocActiveSchoolID)
	if s == "" {
		s = localString(c, LocSchoolID)
	}
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school scope tidak ditemukan di token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school_id tidak valid")
	}
	return id, nil
}

// GetTeacherIDFromToken (opsional — hanya terisi untuk akun guru).
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, bool) {
	s := localString(c, LocTeacherID)
	if s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

/* =========================================================
   Role predicates
   ========================================================= */

func rolesClaim(c *fiber.Ctx) RolesClaim {
	if v := c.Locals("roles_claim"); v != nil {
		if rc, ok := v.(RolesClaim); ok {
			return rc
		}
	}
	return RolesClaim{}
}

func hasRole(list []string, role string) bool {
	for _, r := range list {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

func IsOwner(c *fiber.Ctx) bool {
	if v, ok := c.Locals(LocIsOwner).(bool); ok && v {
		return true
	}
	return hasRole(rolesClaim(c).RolesGlobal, RoleOwner)
}

// IsAdmin: admin global atau admin pada school aktif.
func IsAdmin(c *fiber.Ctx) bool {
	rc := rolesClaim(c)
	if hasRole(rc.RolesGlobal, RoleAdmin) || IsOwner(c) {
		return true
	}
	sid, err := GetSchoolIDFromToken(c)
	if err != nil {
		return false
	}
	for _, e := range rc.SchoolRoles {
		if e.SchoolID == sid && hasRole(e.Roles, RoleAdmin) {
			return true
		}
	}
	return false
}

// IsTeacher: guru pada school aktif (atau global).
func IsTeacher(c *fiber.Ctx) bool {
	rc := rolesClaim(c)
	if hasRole(rc.RolesGlobal, RoleTeacher) {
		return true
	}
	sid, err := GetSchoolIDFromToken(c)
	if err != nil {
		return false
	}
	for _, e := range rc.SchoolRoles {
		if e.SchoolID == sid && hasRole(e.Roles, RoleTeacher) {
			return true
		}
	}
	return false
}

// EnsureAdminSchool memastikan caller admin di school tertentu.
func EnsureAdminSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	if IsOwner(c) {
		return nil
	}
	rc := rolesClaim(c)
	if hasRole(rc.RolesGlobal, RoleAdmin) {
		return nil
	}
	for _, e := range rc.SchoolRoles {
		if e.SchoolID == schoolID && hasRole(e.Roles, RoleAdmin) {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "Akses ditolak (bukan admin school ini)")
}

// EnsureAdminOrTeacherSchool memastikan caller admin ATAU guru di school tertentu.
func EnsureAdminOrTeacherSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	if err := EnsureAdminSchool(c, schoolID); err == nil {
		return nil
	}
	rc := rolesClaim(c)
	for _, e := range rc.SchoolRoles {
		if e.SchoolID == schoolID && hasRole(e.Roles, RoleTeacher) {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "Akses ditolak (hanya admin/guru school ini)")
}
