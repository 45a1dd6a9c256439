package services

import (
	"sync"

	"github.com/rxtech-lab/flowforge/internal/models"
	"gorm.io/gorm"
)

// CreateDeploymentRequest carries the caller-supplied fields of a new
// deployment record. ID and timestamps are assigned by the store.
type CreateDeploymentRequest struct {
	ContractName    string
	ContractAddress string
	DeployerAddress string
	TransactionHash string
}

// DeploymentService is the facade over the persistent deployment store. It
// keeps an in-memory copy of the list for display reads; the cache is
// updated only with authoritative records returned by the store and is left
// unchanged when an operation fails.
type DeploymentService interface {
	// ListDeployments returns all records newest-first and refreshes the cache.
	ListDeployments() ([]models.Deployment, error)
	// CreateDeployment persists a record and returns the stored row,
	// including its generated id and timestamp.
	CreateDeployment(req CreateDeploymentRequest) (*models.Deployment, error)
	// CachedDeployments returns the last known list without touching the store.
	CachedDeployments() []models.Deployment
}

type deploymentService struct {
	db *gorm.DB

	mu    sync.RWMutex
	cache []models.Deployment
}

// NewDeploymentService creates a new DeploymentService
func NewDeploymentService(db *gorm.DB) DeploymentService {
	return &deploymentService{db: db}
}

func (s *deploymentService) ListDeployments() ([]models.Deployment, error) {
	var deployments []models.Deployment
	err := s.db.Order("created_at DESC, id DESC").Find(&deployments).Error
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache = deployments
	s.mu.Unlock()

	return deployments, nil
}

func (s *deploymentService) CreateDeployment(req CreateDeploymentRequest) (*models.Deployment, error) {
	deployment := models.Deployment{
		ContractName:    req.ContractName,
		ContractAddress: req.ContractAddress,
		DeployerAddress: req.DeployerAddress,
		TransactionHash: req.TransactionHash,
	}

	if err := s.db.Create(&deployment).Error; err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache = append([]models.Deployment{deployment}, s.cache...)
	s.mu.Unlock()

	return &deployment, nil
}

func (s *deploymentService) CachedDeployments() []models.Deployment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Deployment, len(s.cache))
	copy(out, s.cache)
	return out
}
