package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rxtech-lab/flowforge/internal/models"
	"github.com/rxtech-lab/flowforge/internal/utils"
)

type deploymentResponse struct {
	ID                 uint      `json:"id"`
	ContractName       string    `json:"contract_name"`
	ContractAddress    string    `json:"contract_address"`
	DeployerAddress    string    `json:"deployer_address"`
	TransactionHash    string    `json:"transaction_hash,omitempty"`
	ExplorerAddressURL string    `json:"explorer_address_url,omitempty"`
	ExplorerTxURL      string    `json:"explorer_tx_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// handleListDeployments renders the deployment table, newest first.
func (s *APIServer) handleListDeployments(c *fiber.Ctx) error {
	deployments, err := s.deploymentService.ListDeployments()
	if err != nil {
		return c.Status(500).JSON(map[string]string{"error": "Failed to list deployments"})
	}

	return c.JSON(map[string]interface{}{
		"deployments": s.deploymentResponses(deployments),
	})
}

func (s *APIServer) deploymentResponses(deployments []models.Deployment) []deploymentResponse {
	out := make([]deploymentResponse, 0, len(deployments))
	for _, d := range deployments {
		out = append(out, deploymentResponse{
			ID:                 d.ID,
			ContractName:       d.ContractName,
			ContractAddress:    d.ContractAddress,
			DeployerAddress:    d.DeployerAddress,
			TransactionHash:    d.TransactionHash,
			ExplorerAddressURL: utils.ExplorerAddressURL(s.cfg.ExplorerBaseURL, d.ContractAddress),
			ExplorerTxURL:      utils.ExplorerTxURL(s.cfg.ExplorerBaseURL, d.TransactionHash),
			CreatedAt:          d.CreatedAt,
		})
	}
	return out
}
