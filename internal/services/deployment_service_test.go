package services

import (
	"testing"
	"time"

	"github.com/rxtech-lab/flowforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestDeploymentService(t *testing.T) {
	// Setup test database
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Deployment{})
	require.NoError(t, err)

	service := NewDeploymentService(db)

	t.Run("EmptyList", func(t *testing.T) {
		deployments, err := service.ListDeployments()
		assert.NoError(t, err)
		assert.Empty(t, deployments)
	})

	t.Run("CreateDeployment", func(t *testing.T) {
		deployment, err := service.CreateDeployment(CreateDeploymentRequest{
			ContractName:    "ERC-20 Token",
			ContractAddress: "0x1111111111111111111111111111111111111111",
			DeployerAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			TransactionHash: "0xtx1",
		})
		require.NoError(t, err)
		assert.NotZero(t, deployment.ID)
		assert.False(t, deployment.CreatedAt.IsZero())
		assert.Equal(t, "ERC-20 Token", deployment.ContractName)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		// Force distinct timestamps so ordering is observable
		older := models.Deployment{
			ContractName:    "Older",
			ContractAddress: "0x2222222222222222222222222222222222222222",
			DeployerAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			CreatedAt:       time.Now().Add(-time.Hour),
		}
		require.NoError(t, db.Create(&older).Error)

		newer, err := service.CreateDeployment(CreateDeploymentRequest{
			ContractName:    "Newer",
			ContractAddress: "0x3333333333333333333333333333333333333333",
			DeployerAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		})
		require.NoError(t, err)

		deployments, err := service.ListDeployments()
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(deployments), 3)
		assert.Equal(t, newer.ID, deployments[0].ID)
		assert.Equal(t, older.ID, deployments[len(deployments)-1].ID)
	})

	t.Run("CacheRefreshedByList", func(t *testing.T) {
		deployments, err := service.ListDeployments()
		require.NoError(t, err)

		cached := service.CachedDeployments()
		require.Len(t, cached, len(deployments))
		assert.Equal(t, deployments[0].ID, cached[0].ID)
	})

	t.Run("CreatePrependsToCache", func(t *testing.T) {
		before := service.CachedDeployments()

		created, err := service.CreateDeployment(CreateDeploymentRequest{
			ContractName:    "Latest",
			ContractAddress: "0x4444444444444444444444444444444444444444",
			DeployerAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			TransactionHash: "0xtx4",
		})
		require.NoError(t, err)

		cached := service.CachedDeployments()
		require.Len(t, cached, len(before)+1)
		assert.Equal(t, created.ID, cached[0].ID)
	})

	t.Run("CacheUnchangedOnFailure", func(t *testing.T) {
		before := service.CachedDeployments()

		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		_, err = service.CreateDeployment(CreateDeploymentRequest{
			ContractName:    "Doomed",
			ContractAddress: "0x5555555555555555555555555555555555555555",
			DeployerAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		})
		assert.Error(t, err)

		after := service.CachedDeployments()
		assert.Equal(t, len(before), len(after))
	})
}
