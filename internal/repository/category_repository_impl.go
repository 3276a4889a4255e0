package repository

import (
	"errors"

	"carepoint-backend/internal/domain/entity"
	domainRepo "carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type categoryRepository struct{}

func NewCategoryRepository() domainRepo.CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) Create(db *gorm.DB, category *entity.Category) error {
	return db.Create(category).Error
}

func (r *categoryRepository) FindAll(db *gorm.DB) ([]entity.Category, error) {
	var categories []entity.Category
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(db *gorm.DB, category *entity.Category) error {
	return db.Omit("Products").Save(category).Error
}

func (r *categoryRepository) Deactivate(db *gorm.DB, id uuid.UUID) (*entity.Category, error) {
	category, err := r.FindByID(db, id)
	if err != nil || category == nil {
		return nil, err
	}
	inactive := false
	category.IsActive = &inactive
	if err := db.Model(category).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	return category, nil
}
