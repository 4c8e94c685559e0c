package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================================================
   Locals keys hydrated by the JWT middleware
   ========================================================= */

const (
	LocUserID         = "user_id"
	LocActiveSchoolID = "active_school_id"
	LocSchoolRoles    = "school_roles"
	LocIsOwner        = "is_owner"
	LocTeacherID      = "teacher_id"
)

/* =========================================================
   Scope resolution
   ========================================================= */

// GetSchoolIDFromToken returns the active school scope of the caller.
// The JWT middleware stores it as a string local; empty means no scope.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocActiveSchoolID)
	s, _ := v.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "School scope not found in token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid school scope in token")
	}
	return id, nil
}

/* =========================================================
   Role guards
   ========================================================= */

func rolesFromLocals(c *fiber.Ctx) []string {
	switch v := c.Locals(LocSchoolRoles).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return strings.Split(v, ",")
	default:
		return nil
	}
}

func hasRole(c *fiber.Ctx, role string) bool {
	for _, r := range rolesFromLocals(c) {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

func IsOwner(c *fiber.Ctx) bool {
	b, _ := c.Locals(LocIsOwner).(bool)
	return b
}

func IsAdmin(c *fiber.Ctx) bool   { return hasRole(c, "admin") }
func IsTeacher(c *fiber.Ctx) bool { return hasRole(c, "teacher") }
