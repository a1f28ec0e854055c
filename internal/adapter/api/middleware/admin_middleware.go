package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"phonedeck/internal/usecase"
)

type AdminMiddleware struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminMiddleware(adminUseCase *usecase.AdminUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		adminUseCase: adminUseCase,
	}
}

// AdminOnly gates a route on the server-side role table: the verified email
// must be the configured super-admin or on the allow-list. Runs after
// Authenticate.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		email, ok := c.Get("email").(string)
		if !ok || email == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		isAdmin, err := m.adminUseCase.IsAdmin(c.Request().Context(), email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if !isAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
