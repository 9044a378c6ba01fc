package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a route on the role hierarchy: admin covers staff,
// staff covers student.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func GetCurrentUserRole(c *fiber.Ctx) string {
	user := GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.Role
}

func IsStaff(c *fiber.Ctx) bool {
	role := GetCurrentUserRole(c)
	return role == "staff" || role == "admin"
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetCurrentUserRole(c) == "admin"
}
