package sqlite

import (
	"time"

	"github.com/datathon/handouts-api/internal/core/domain"
)

type userRecord struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userRecord) TableName() string { return "users" }

type postRecord struct {
	ID        uint       `gorm:"primaryKey"`
	Title     string     `gorm:"size:120;not null"`
	AuthorID  uint       `gorm:"not null;index"`
	Author    userRecord `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Requested bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (postRecord) TableName() string { return "posts" }

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

func (r *postRecord) toDomain() domain.Post {
	return domain.Post{
		ID:        r.ID,
		Title:     r.Title,
		AuthorID:  r.AuthorID,
		Requested: r.Requested,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func postsToDomain(records []postRecord) []domain.Post {
	out := make([]domain.Post, len(records))
	for i := range records {
		out[i] = records[i].toDomain()
	}
	return out
}
