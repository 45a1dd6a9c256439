package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rxtech-lab/flowforge/internal/wizard"
)

type openWizardRequest struct {
	TemplateKey string `json:"template_key"`
}

type connectWizardRequest struct {
	ConnectorID string `json:"connector_id"`
}

type submitWizardRequest struct {
	Values map[string]string `json:"values"`
}

type wizardResponse struct {
	ID            string          `json:"id"`
	Wizard        wizard.Snapshot `json:"wizard"`
	Notifications []Notification  `json:"notifications,omitempty"`
}

// handleOpenWizard creates a deployment wizard for a template and opens it.
func (s *APIServer) handleOpenWizard(c *fiber.Ctx) error {
	var req openWizardRequest
	if err := c.BodyParser(&req); err != nil || req.TemplateKey == "" {
		return c.Status(400).JSON(map[string]string{"error": "template_key is required"})
	}

	template, err := s.templateService.GetTemplateByKey(req.TemplateKey)
	if err != nil {
		return c.Status(404).JSON(map[string]string{"error": "Template not found"})
	}

	notifier := newNotificationCollector()
	wiz := wizard.New(*template, wizard.Deps{
		Validator: s.validatorService,
		Evm:       s.evmService,
		Wallet:    s.walletService,
		Waiter:    s.waiter,
		Store:     s.deploymentService,
		Notifier:  notifier,
	}, wizard.Config{
		ProgressInterval: s.cfg.ProgressInterval,
		ExplorerBaseURL:  s.cfg.ExplorerBaseURL,
	})

	id := uuid.New().String()
	s.mu.Lock()
	s.wizards[id] = &wizardEntry{wiz: wiz, notifier: notifier}
	s.mu.Unlock()

	snap := wiz.Open(c.Context())
	return c.Status(201).JSON(wizardResponse{ID: id, Wizard: snap})
}

// handleGetWizard renders the current wizard state plus any out-of-band
// notifications raised since the last read.
func (s *APIServer) handleGetWizard(c *fiber.Ctx) error {
	entry, ok := s.wizardByID(c.Params("wizard_id"))
	if !ok {
		return c.Status(404).JSON(map[string]string{"error": "Wizard not found"})
	}

	return c.JSON(wizardResponse{
		ID:            c.Params("wizard_id"),
		Wizard:        entry.wiz.Snapshot(),
		Notifications: entry.notifier.Drain(),
	})
}

// handleReopenWizard resets the wizard to a fresh session.
func (s *APIServer) handleReopenWizard(c *fiber.Ctx) error {
	entry, ok := s.wizardByID(c.Params("wizard_id"))
	if !ok {
		return c.Status(404).JSON(map[string]string{"error": "Wizard not found"})
	}

	snap := entry.wiz.Open(c.Context())
	return c.JSON(wizardResponse{ID: c.Params("wizard_id"), Wizard: snap})
}

func (s *APIServer) handleConnectWizard(c *fiber.Ctx) error {
	entry, ok := s.wizardByID(c.Params("wizard_id"))
	if !ok {
		return c.Status(404).JSON(map[string]string{"error": "Wizard not found"})
	}

	var req connectWizardRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(400).JSON(map[string]string{"error": "Invalid request body"})
	}

	if err := entry.wiz.Connect(c.Context(), req.ConnectorID); err != nil {
		if errors.Is(err, wizard.ErrWrongStep) {
			return c.Status(409).JSON(map[string]string{"error": err.Error()})
		}
		// Connection failure keeps the wizard in no_wallet; render it
		return c.Status(400).JSON(wizardResponse{
			ID:            c.Params("wizard_id"),
			Wizard:        entry.wiz.Snapshot(),
			Notifications: entry.notifier.Drain(),
		})
	}

	return c.JSON(wizardResponse{
		ID:            c.Params("wizard_id"),
		Wizard:        entry.wiz.Snapshot(),
		Notifications: entry.notifier.Drain(),
	})
}

func (s *APIServer) handleSubmitWizard(c *fiber.Ctx) error {
	entry, ok := s.wizardByID(c.Params("wizard_id"))
	if !ok {
		return c.Status(404).JSON(map[string]string{"error": "Wizard not found"})
	}

	var req submitWizardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(map[string]string{"error": "Invalid request body"})
	}

	if err := entry.wiz.Submit(c.Context(), req.Values); err != nil {
		switch {
		case errors.Is(err, wizard.ErrWrongStep):
			return c.Status(409).JSON(map[string]string{"error": err.Error()})
		case errors.Is(err, wizard.ErrWalletNotReady), errors.Is(err, wizard.ErrTemplateUnavailable):
			return c.Status(400).JSON(map[string]string{"error": err.Error()})
		default:
			return c.Status(500).JSON(map[string]string{"error": err.Error()})
		}
	}

	return c.JSON(wizardResponse{
		ID:     c.Params("wizard_id"),
		Wizard: entry.wiz.Snapshot(),
	})
}

func (s *APIServer) handleRetryWizard(c *fiber.Ctx) error {
	entry, ok := s.wizardByID(c.Params("wizard_id"))
	if !ok {
		return c.Status(404).JSON(map[string]string{"error": "Wizard not found"})
	}

	if err := entry.wiz.Retry(); err != nil {
		return c.Status(409).JSON(map[string]string{"error": err.Error()})
	}

	return c.JSON(wizardResponse{
		ID:     c.Params("wizard_id"),
		Wizard: entry.wiz.Snapshot(),
	})
}

// handleCloseWizard abandons the wizard. An already-submitted transaction
// is not cancelled; only local progress tracking stops.
func (s *APIServer) handleCloseWizard(c *fiber.Ctx) error {
	id := c.Params("wizard_id")

	s.mu.Lock()
	entry, ok := s.wizards[id]
	if ok {
		delete(s.wizards, id)
	}
	s.mu.Unlock()

	if !ok {
		return c.Status(404).JSON(map[string]string{"error": "Wizard not found"})
	}

	entry.wiz.Close()
	return c.SendStatus(204)
}
