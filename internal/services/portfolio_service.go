package services

import (
	"maps"
	"slices"
	"strings"

	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/models"
	"sagarneeli.dev/internal/textutil"
)

// PortfolioService exposes the static content in the portfolio API shape, so
// this server can act as the profile API of another instance.
type PortfolioService struct {
	content    content.Source
	experience *ExperienceService
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(src content.Source, exp *ExperienceService) *PortfolioService {
	return &PortfolioService{content: src, experience: exp}
}

// Profile returns the hero section as a profile payload
func (s *PortfolioService) Profile() (models.Profile, error) {
	c, err := s.content.Content()
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		Name:         c.Hero.Name,
		Title:        c.Hero.Headline,
		Summary:      c.Hero.Summary,
		Location:     c.Hero.Location,
		Availability: c.Hero.Availability,
		Contact: models.Contact{
			Email:    strings.TrimPrefix(c.Links["email"], "mailto:"),
			LinkedIn: c.Links["linkedin"],
			GitHub:   c.Links["github"],
		},
	}, nil
}

// Experience returns the work history with formatted durations
func (s *PortfolioService) Experience() (models.ExperienceList, error) {
	c, err := s.content.Content()
	if err != nil {
		return models.ExperienceList{}, err
	}

	list := models.ExperienceList{Experience: make([]models.RemoteExperience, 0, len(c.Experience))}
	for _, e := range c.Experience {
		v := s.experience.View(e)
		list.Experience = append(list.Experience, models.RemoteExperience{
			Company:      v.Company,
			Position:     v.Role,
			Duration:     v.DateRange,
			Description:  v.Summary,
			Technologies: v.Tech,
			Achievements: v.Highlights,
		})
	}
	return list, nil
}

// Projects returns the featured projects
func (s *PortfolioService) Projects() (models.RemoteProjectList, error) {
	c, err := s.content.Content()
	if err != nil {
		return models.RemoteProjectList{}, err
	}

	list := models.RemoteProjectList{Projects: make([]models.RemoteProject, 0, len(c.Projects))}
	for _, p := range c.Projects {
		if !p.Featured {
			continue
		}
		list.Projects = append(list.Projects, models.RemoteProject{
			Title:        p.Title,
			Company:      p.Company,
			Description:  p.Description,
			Technologies: p.TechStack,
			Impact:       p.Impact,
			Type:         p.Type,
		})
	}
	return list, nil
}

// Skills returns skills keyed by normalized category name. Categories that
// normalize to the same key are merged.
func (s *PortfolioService) Skills() (models.Skills, error) {
	c, err := s.content.Content()
	if err != nil {
		return nil, err
	}

	skills := make(models.Skills, len(c.Skills))
	for _, name := range slices.Sorted(maps.Keys(c.Skills)) {
		key := textutil.Key(name)
		skills[key] = append(skills[key], c.Skills[name]...)
	}
	return skills, nil
}
