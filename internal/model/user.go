package model

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleSeller UserRole = "seller"
	UserRoleBuyer  UserRole = "buyer"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	ID        int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	FullName  string     `gorm:"column:full_name"`
	Email     string     `gorm:"column:email;uniqueIndex"`
	Role      UserRole   `gorm:"column:role"`
	Status    UserStatus `gorm:"column:status"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
