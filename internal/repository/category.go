package repository

import (
	"context"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}

type Category struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &Category{db: db}
}

func (c *Category) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category

	db := GetTx(ctx, c.db)
	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
