package model

import "time"

// PostModel mirrors the 'posts' table. Deleting the author cascades.
type PostModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Author *UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
