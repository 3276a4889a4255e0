package repository

import (
	"errors"

	"carepoint-backend/internal/domain/entity"
	domainRepo "carepoint-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct{}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindAll(db *gorm.DB, filter *entity.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := db.Model(&entity.Product{})
	if filter != nil {
		if filter.CategoryID != nil {
			query = query.Where("category_id = ?", *filter.CategoryID)
		}
		if filter.InStock != nil {
			query = query.Where("in_stock = ?", *filter.InStock)
		}
		if filter.Name != "" {
			query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.IsActive != nil {
			query = query.Where("is_active = ?", *filter.IsActive)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Category").Limit(limit).Offset(offset).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := db.Preload("Category").Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(db *gorm.DB, product *entity.Product) error {
	return db.Omit("Category").Save(product).Error
}

func (r *productRepository) Deactivate(db *gorm.DB, id uuid.UUID) (*entity.Product, error) {
	product, err := r.FindByID(db, id)
	if err != nil || product == nil {
		return nil, err
	}
	inactive := false
	product.IsActive = &inactive
	if err := db.Model(product).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	return product, nil
}
