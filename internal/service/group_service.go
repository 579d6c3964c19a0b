package service

import (
	"context"
	"strings"

	"plume/internal/models"
	"plume/internal/repository"
	"plume/internal/validation"
)

type GroupService struct {
	groupRepo repository.GroupRepository
}

type GroupInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) validate(ctx context.Context, in GroupInput, existingID uint) error {
	var errs validation.FieldErrors

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, validation.FieldError{Field: "title", Message: "title is required"})
	} else if len(in.Title) > 200 {
		errs = append(errs, validation.FieldError{Field: "title", Message: "title too long (max 200 characters)"})
	}

	if slugErr := validation.ValidateGroupSlug(in.Slug); slugErr != nil {
		errs = append(errs, validation.FieldError{Field: "slug", Message: slugErr.Error()})
	} else {
		existing, err := s.groupRepo.GetBySlug(ctx, in.Slug)
		if err != nil && !models.IsNotFound(err) {
			return err
		}
		if existing != nil && existing.ID != existingID {
			errs = append(errs, validation.FieldError{Field: "slug", Message: "slug already in use"})
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return groups, nil
}

func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *GroupService) CreateGroup(ctx context.Context, in GroupInput) (*models.Group, error) {
	if err := s.validate(ctx, in, 0); err != nil {
		return nil, err
	}

	group := &models.Group{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateGroup edits a group's title and description. The slug is immutable:
// it is the group's URL id, and changing it would orphan every link to the
// group feed.
func (s *GroupService) UpdateGroup(ctx context.Context, id uint, in GroupInput) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Slug != "" && in.Slug != group.Slug {
		return nil, validation.FieldErrors{{Field: "slug", Message: "slug cannot be changed"}}
	}

	in.Slug = group.Slug
	if err := s.validate(ctx, in, group.ID); err != nil {
		return nil, err
	}

	group.Title = in.Title
	group.Description = in.Description
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	return s.groupRepo.Delete(ctx, id)
}
