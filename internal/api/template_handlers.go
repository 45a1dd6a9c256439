package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/flowforge/internal/catalog"
	"github.com/rxtech-lab/flowforge/internal/models"
)

type templateResponse struct {
	Key         string                    `json:"key"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Status      models.TemplateStatus     `json:"status"`
	Parameters  []models.ParameterSpec    `json:"parameters"`
	Display     catalog.DisplayDescriptor `json:"display"`
}

// handleListTemplates renders the template catalog with resolved display
// descriptors. Template code is not exposed.
func (s *APIServer) handleListTemplates(c *fiber.Ctx) error {
	templates, err := s.templateService.ListTemplates(c.Query("keyword"), c.QueryInt("limit"))
	if err != nil {
		return c.Status(500).JSON(map[string]string{"error": "Failed to list templates"})
	}

	out := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, templateResponse{
			Key:         t.Key,
			Name:        t.Name,
			Description: t.Description,
			Status:      t.Status,
			Parameters:  t.Parameters,
			Display:     catalog.DisplayFor(t.Key),
		})
	}

	return c.JSON(map[string]interface{}{"templates": out})
}
