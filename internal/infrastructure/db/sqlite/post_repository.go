package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/datathon/handouts-api/internal/core/domain"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	rec := postRecord{
		Title:     post.Title,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}
	p := rec.toDomain()
	return &p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	rec, err := findPost(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	p := rec.toDomain()
	return &p, nil
}

// List returns every post ordered by id.
func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	var recs []postRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return postsToDomain(recs), nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID uint) ([]domain.Post, error) {
	var recs []postRecord
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list posts by author %d: %w", authorID, err)
	}
	return postsToDomain(recs), nil
}

func (r *PostRepository) MarkRequested(ctx context.Context, id uint) (*domain.Post, error) {
	var out domain.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := findPost(tx, id)
		if err != nil {
			return err
		}
		if !rec.Requested {
			if err := tx.Model(rec).Update("requested", true).Error; err != nil {
				return fmt.Errorf("update post %d: %w", id, err)
			}
			rec.Requested = true
		}
		out = rec.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func findPost(db *gorm.DB, id uint) (*postRecord, error) {
	var rec postRecord
	if err := db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	return &rec, nil
}
