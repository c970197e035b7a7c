package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/gestao-api/internal/application/dto"
)

// pageFromQuery lee limit/offset (?limit=50&offset=0) y aplica los valores por defecto.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 50), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p
}

// queryDate interpreta un parámetro de fecha (YYYY-MM-DD o RFC 3339). Vacío devuelve nil.
func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s deve estar no formato YYYY-MM-DD", key)
}

// queryBool interpreta ?ativo=true|false. Vacío devuelve nil.
func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s deve ser true ou false", key)
	}
	return &b, nil
}

// requireUUIDParam responde 404 cuando :id no es un UUID; ningún registro puede tener ese id.
func requireUUIDParam(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return notFound(c, "registro não encontrado")
	}
	return c.Next()
}
