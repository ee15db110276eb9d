package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "leasehub/internal/errors"
	"leasehub/internal/model"
)

// TemplateRepository defines template persistence operations.
// Every lookup is scoped to the owner; another owner's template reads as not found.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *model.Template) error
	Update(ctx context.Context, tpl *model.Template) error
	FindByID(ctx context.Context, ownerID string, id uuid.UUID) (*model.Template, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Template, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TemplateRepository) error) error
}

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository.
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// Create creates a new template.
func (r *templateRepository) Create(ctx context.Context, tpl *model.Template) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

// Update saves title, subtitle and content of an existing template.
func (r *templateRepository) Update(ctx context.Context, tpl *model.Template) error {
	res := r.db.WithContext(ctx).Model(&model.Template{}).
		Where("id = ? AND owner_id = ?", tpl.ID, tpl.OwnerID).
		Updates(map[string]interface{}{
			"title":    tpl.Title,
			"subtitle": tpl.Subtitle,
			"content":  tpl.Content,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTemplateNotFound
	}
	return nil
}

// FindByID finds a template by ID.
func (r *templateRepository) FindByID(ctx context.Context, ownerID string, id uuid.UUID) (*model.Template, error) {
	var tpl model.Template
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// FindByOwner lists an owner's templates, newest first.
func (r *templateRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Template, error) {
	var tpls []model.Template
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at DESC").Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

// Delete soft-deletes a template.
func (r *templateRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&model.Template{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTemplateNotFound
	}
	return nil
}

// CountByOwner counts an owner's live templates.
func (r *templateRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Template{}).Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

// WithTransaction executes a function within a database transaction.
func (r *templateRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo TemplateRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &templateRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
