package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"content-api/internal/domain"
)

// CreateCategory normalizes, validates and stores a new active category.
func (s *ContentService) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	c.Normalize(nil, s.now())
	c.IsActive = true

	if err := s.validator.ValidateCategory(c); err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory replaces the mutable fields of a category. The slug and
// activity flag are kept.
func (s *ContentService) UpdateCategory(ctx context.Context, id string, c *domain.Category) (*domain.Category, error) {
	prev, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Normalize(prev, s.now())
	c.IsActive = prev.IsActive

	if err := s.validator.ValidateCategory(c); err != nil {
		return nil, err
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeactivateCategory soft-deletes a category.
func (s *ContentService) DeactivateCategory(ctx context.Context, id string) error {
	return s.categories.SetActive(ctx, id, false)
}

// CreateAuthor normalizes, validates and stores a new active author.
func (s *ContentService) CreateAuthor(ctx context.Context, a *domain.Author) (*domain.Author, error) {
	a.Normalize(nil, s.now())
	a.IsActive = true

	if err := s.validator.ValidateAuthor(a); err != nil {
		return nil, err
	}
	if err := s.authors.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateAuthor replaces the mutable fields of an author. The activity flag is kept.
func (s *ContentService) UpdateAuthor(ctx context.Context, id string, a *domain.Author) (*domain.Author, error) {
	prev, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Normalize(prev, s.now())
	a.IsActive = prev.IsActive

	if err := s.validator.ValidateAuthor(a); err != nil {
		return nil, err
	}
	if err := s.authors.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeactivateAuthor soft-deletes an author.
func (s *ContentService) DeactivateAuthor(ctx context.Context, id string) error {
	return s.authors.SetActive(ctx, id, false)
}

// CreateArticle normalizes, validates and stores a new article. Both
// references must name active entities.
func (s *ContentService) CreateArticle(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	a.Normalize(nil, s.now())

	if err := s.validator.ValidateArticle(a); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, a); err != nil {
		return nil, err
	}
	if err := s.articles.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateArticle replaces the article with id. Identity, views, creation time
// and the first publication time are carried over from the stored record.
func (s *ContentService) UpdateArticle(ctx context.Context, id string, a *domain.Article) (*domain.Article, error) {
	prev, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Normalize(prev, s.now())

	if err := s.validator.ValidateArticle(a); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, a); err != nil {
		return nil, err
	}
	if err := s.articles.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteArticle removes an article permanently.
func (s *ContentService) DeleteArticle(ctx context.Context, id string) error {
	return s.articles.Delete(ctx, id)
}

func (s *ContentService) checkReferences(ctx context.Context, a *domain.Article) error {
	if _, err := uuid.Parse(a.CategoryID); err != nil {
		return &domain.ReferenceError{Field: "category", Value: a.CategoryID}
	}
	if _, err := uuid.Parse(a.AuthorID); err != nil {
		return &domain.ReferenceError{Field: "author", Value: a.AuthorID}
	}

	category, err := s.categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ReferenceError{Field: "category", Value: a.CategoryID}
		}
		return fmt.Errorf("check category: %w", err)
	}
	if !category.IsActive {
		return &domain.ReferenceError{Field: "category", Value: a.CategoryID}
	}

	author, err := s.authors.FindByID(ctx, a.AuthorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ReferenceError{Field: "author", Value: a.AuthorID}
		}
		return fmt.Errorf("check author: %w", err)
	}
	if !author.IsActive {
		return &domain.ReferenceError{Field: "author", Value: a.AuthorID}
	}
	return nil
}
