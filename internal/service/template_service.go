package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"leasehub/internal/cache"
	"leasehub/internal/model"
	"leasehub/internal/repository"
)

const templateListCacheTTL = 5 * time.Minute

// TemplateInput is the editable part of a template.
type TemplateInput struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

// StarterTemplates seed a new owner's library.
var StarterTemplates = []TemplateInput{
	{Title: "Lease renewal notice", Subtitle: "Sent 60 days before lease end", Content: "Your lease is due for renewal. Please confirm whether you intend to renew."},
	{Title: "Rent reminder", Subtitle: "Friendly reminder before the due date", Content: "This is a reminder that rent is due on the first of the month."},
	{Title: "Maintenance visit", Subtitle: "Entry notice for scheduled work", Content: "A technician will visit your unit for scheduled maintenance."},
	{Title: "Move-out checklist", Subtitle: "Sent after notice to vacate", Content: "Please review the move-out checklist to ensure a full deposit return."},
}

// TemplateService manages an owner's template library.
type TemplateService interface {
	List(ctx context.Context, ownerID string) ([]model.Template, error)
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Template, error)
	Create(ctx context.Context, ownerID string, in TemplateInput) (*model.Template, error)
	Update(ctx context.Context, ownerID string, id uuid.UUID, in TemplateInput) (*model.Template, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
	SeedStarter(ctx context.Context, ownerID string) (int, error)
}

type templateService struct {
	repo  repository.TemplateRepository
	cache cache.Store
}

// NewTemplateService creates a new template service.
func NewTemplateService(repo repository.TemplateRepository, store cache.Store) TemplateService {
	return &templateService{repo: repo, cache: store}
}

func (s *templateService) cacheKey(ownerID string) string {
	return fmt.Sprintf("templates:%s", ownerID)
}

// List returns the owner's templates, newest first, with caching.
func (s *templateService) List(ctx context.Context, ownerID string) ([]model.Template, error) {
	var cached []model.Template
	if found, _ := cache.GetJSON(ctx, s.cache, s.cacheKey(ownerID), &cached); found {
		return cached, nil
	}

	tpls, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	if tpls == nil {
		tpls = []model.Template{}
	}
	_ = cache.SetJSON(ctx, s.cache, s.cacheKey(ownerID), tpls, templateListCacheTTL)
	return tpls, nil
}

// Get returns one template.
func (s *templateService) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Template, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

// Create stores a new template.
func (s *templateService) Create(ctx context.Context, ownerID string, in TemplateInput) (*model.Template, error) {
	tpl := &model.Template{
		OwnerID:  ownerID,
		Title:    strings.TrimSpace(in.Title),
		Subtitle: strings.TrimSpace(in.Subtitle),
		Content:  in.Content,
	}
	if err := s.repo.Create(ctx, tpl); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	s.invalidate(ctx, ownerID)
	return tpl, nil
}

// Update replaces the editable fields of a template.
func (s *templateService) Update(ctx context.Context, ownerID string, id uuid.UUID, in TemplateInput) (*model.Template, error) {
	tpl, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	tpl.Title = strings.TrimSpace(in.Title)
	tpl.Subtitle = strings.TrimSpace(in.Subtitle)
	tpl.Content = in.Content
	if err := s.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return tpl, nil
}

// Delete removes a template.
func (s *templateService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

// SeedStarter adds the starter templates whose titles the owner does not have yet.
func (s *templateService) SeedStarter(ctx context.Context, ownerID string) (int, error) {
	created := 0
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.TemplateRepository) error {
		existing, err := repo.FindByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		have := make(map[string]struct{}, len(existing))
		for _, t := range existing {
			have[t.Title] = struct{}{}
		}
		for _, in := range StarterTemplates {
			if _, ok := have[in.Title]; ok {
				continue
			}
			tpl := &model.Template{OwnerID: ownerID, Title: in.Title, Subtitle: in.Subtitle, Content: in.Content}
			if err := repo.Create(ctx, tpl); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed templates: %w", err)
	}
	s.invalidate(ctx, ownerID)
	return created, nil
}

func (s *templateService) invalidate(ctx context.Context, ownerID string) {
	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
}
