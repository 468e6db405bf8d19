package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastellanos/terralote-api/internal/application/dto"
	"github.com/jcastellanos/terralote-api/internal/domain/authz"
	"github.com/jcastellanos/terralote-api/internal/domain/entity"
	"github.com/jcastellanos/terralote-api/internal/domain/repository"
	"github.com/jcastellanos/terralote-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalPrincipal = "principal"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// LoadPrincipal arma el authz.Principal del request. Para el rol comercial
// consulta el usuario para traer sus proyectos asignados; un usuario borrado
// con token aún vigente queda con alcance vacío, no rompe la petición.
// Debe usarse DESPUÉS de AuthMiddleware.
func LoadPrincipal(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := authz.Principal{
			UserID: GetUserID(c),
			Role:   GetRole(c),
		}
		if principal.Role == entity.RoleComercial {
			if user, err := userRepo.GetByID(principal.UserID); err == nil {
				principal.AssignedProjectIDs = user.AssignedProjectIDs
			}
		}
		c.Locals(LocalPrincipal, principal)
		return c.Next()
	}
}

// RequireCapability autoriza la ruta solo si el rol del token tiene la
// capacidad seleccionada. Un rol fuera de la tabla responde 401: un token con
// rol inventado equivale a un token inválido.
func RequireCapability(selector func(authz.CapabilitySet) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps, err := authz.Capabilities(GetRole(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNKNOWN_ROLE", Message: "rol no reconocido"})
		}
		if !selector(caps) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene permiso para esta acción"})
		}
		return c.Next()
	}
}

// RequireRole autoriza la ruta solo a los roles listados.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sin rol"})
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a esta ruta"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el Role del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPrincipal devuelve el principal armado por LoadPrincipal.
func GetPrincipal(c *fiber.Ctx) authz.Principal {
	v := c.Locals(LocalPrincipal)
	if v == nil {
		return authz.Principal{UserID: GetUserID(c), Role: GetRole(c)}
	}
	p, _ := v.(authz.Principal)
	return p
}
