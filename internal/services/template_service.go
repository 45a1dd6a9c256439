package services

import (
	"github.com/rxtech-lab/flowforge/internal/models"
	"gorm.io/gorm"
)

// TemplateService handles template catalog operations
type TemplateService interface {
	SeedTemplates(templates []models.Template) error
	GetTemplateByKey(key string) (*models.Template, error)
	ListTemplates(keyword string, limit int) ([]models.Template, error)
}

type templateService struct {
	db *gorm.DB
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(db *gorm.DB) TemplateService {
	return &templateService{db: db}
}

// SeedTemplates inserts catalog templates that are not present yet, keyed by
// template key. Existing rows are left untouched: the catalog is static.
func (s *templateService) SeedTemplates(templates []models.Template) error {
	for i := range templates {
		var count int64
		if err := s.db.Model(&models.Template{}).Where("key = ?", templates[i].Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&templates[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetTemplateByKey returns a template by its catalog key
func (s *templateService) GetTemplateByKey(key string) (*models.Template, error) {
	var template models.Template
	err := s.db.Where("key = ?", key).First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// ListTemplates returns templates with optional filtering
func (s *templateService) ListTemplates(keyword string, limit int) ([]models.Template, error) {
	query := s.db.Model(&models.Template{}).Order("id ASC")

	if keyword != "" {
		query = query.Where("name LIKE ? OR description LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	var templates []models.Template
	err := query.Find(&templates).Error
	return templates, err
}
