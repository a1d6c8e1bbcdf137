package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"folio.dev/internal/models"
)

// ErrProjectNotFound is returned when no project matches a slug
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService over one revision's projects
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return len(s.projects)
}

// GetBySlug returns a specific project by its title slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	for i := range s.projects {
		if Slug(s.projects[i].Title) == slug {
			p := s.projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}

// Slug lower-cases a title and joins its words with hyphens
func Slug(title string) string {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "-")
}
