package model

import "time"

// CommentModel mirrors the 'comments' table. Deleting the post or the author cascades.
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:varchar(1000);not null"`
	PostID    int64     `gorm:"not null;index"`
	AuthorID  int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Post   *PostModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Author *UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
