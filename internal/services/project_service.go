package services

import (
	"errors"
	"fmt"

	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/models"
)

// ErrNotFound is returned when a requested item does not exist
var ErrNotFound = errors.New("not found")

// ProjectService handles project-related operations
type ProjectService struct {
	content content.Source
}

// NewProjectService creates a new ProjectService
func NewProjectService(src content.Source) *ProjectService {
	return &ProjectService{content: src}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() ([]models.Project, error) {
	c, err := s.content.Content()
	if err != nil {
		return nil, err
	}
	return c.Projects, nil
}

// Featured returns the projects marked as featured, in document order
func (s *ProjectService) Featured() ([]models.Project, error) {
	all, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	featured := make([]models.Project, 0, len(all))
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	all, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			p := all[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
}
