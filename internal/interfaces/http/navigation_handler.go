package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ddik-sports/ddik-api/internal/application/dto"
	"github.com/ddik-sports/ddik-api/internal/domain/access"
	"github.com/ddik-sports/ddik-api/pkg/jwt"
)

// NavigationHandler avalia decisões de navegação para o cliente web. É
// público: o token Bearer é opcional, e sem ele a decisão é a de visitante.
type NavigationHandler struct {
	jwtSecret string
}

// NewNavigationHandler constrói o handler.
func NewNavigationHandler(jwtSecret string) *NavigationHandler {
	return &NavigationHandler{jwtSecret: jwtSecret}
}

// Route godoc
// @Summary      Avaliar acesso a uma página
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  true  "Página destino, ex.: /reports"
// @Success      200   {object}  dto.RouteDecisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/navigation/route [get]
func (h *NavigationHandler) Route(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" || !strings.HasPrefix(path, "/") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path é obrigatório e começa com /"})
	}

	role := h.roleFromToken(c)
	decision := access.Route(role, path)

	return c.JSON(dto.RouteDecisionResponse{
		Path:       path,
		Allow:      decision.Allow,
		RedirectTo: decision.RedirectTo,
	})
}

// Home godoc
// @Summary      Página inicial do papel autenticado
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  dto.RouteDecisionResponse
// @Router       /api/navigation/home [get]
func (h *NavigationHandler) Home(c *fiber.Ctx) error {
	role := h.roleFromToken(c)
	home := access.HomePath(role)
	return c.JSON(dto.RouteDecisionResponse{
		Path:       home,
		Allow:      true,
		RedirectTo: home,
	})
}

// roleFromToken extrai o papel do Bearer token se houver um válido; token
// ausente ou inválido vale como visitante (papel vazio).
func (h *NavigationHandler) roleFromToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	_, role, err := jwt.Parse(h.jwtSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return ""
	}
	return role
}
