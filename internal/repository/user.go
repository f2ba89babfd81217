package repository

import (
	"context"
	"errors"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/internal/model"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type User struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &User{db: db}
}

func (u *User) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User

	db := GetTx(ctx, u.db)
	err := db.Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}
