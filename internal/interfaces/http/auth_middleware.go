package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestao-api/internal/application/dto"
	"github.com/jhoicas/gestao-api/pkg/jwt"
)

// Locals keys de la identidad de la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// DefaultSessionCookie nombre de la cookie de sesión si no se configura otro.
const DefaultSessionCookie = "session"

// AuthMiddleware valida el JWT de la sesión y carga UserID, Username y Role en c.Locals.
// El token se toma del header "Authorization: Bearer <token>" o, si no viene, de la cookie de sesión.
func AuthMiddleware(jwtSecret, cookieName string) fiber.Handler {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return func(c *fiber.Ctx) error {
		tokenString, errResp := extractToken(c, cookieName)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		p, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "sessão inválida ou expirada"})
		}
		c.Locals(LocalUserID, p.UserID)
		c.Locals(LocalUsername, p.Username)
		c.Locals(LocalRole, p.Role)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx, cookieName string) (string, *dto.ErrorResponse) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		if tok := strings.TrimSpace(c.Cookies(cookieName)); tok != "" {
			return tok, nil
		}
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "autenticação necessária"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "formato: Bearer <token>"}
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "token vazio"}
	}
	return tok, nil
}

// RequireRole permite el paso solo si el rol de la sesión está en roles.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Error: "sessão sem perfil de acesso"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: "acesso negado para o perfil " + role})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUsername devuelve el username de la sesión.
func GetUsername(c *fiber.Ctx) string {
	return localString(c, LocalUsername)
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
