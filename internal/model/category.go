package model

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Name string `gorm:"column:name;uniqueIndex"`
}
