package services

import (
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/dates"
	"sagarneeli.dev/internal/models"
)

// ExperienceView is an experience entry ready for display
type ExperienceView struct {
	Company    string          `json:"company"`
	Role       string          `json:"role"`
	Location   string          `json:"location,omitempty"`
	Start      string          `json:"start,omitempty"`
	End        string          `json:"end,omitempty"`
	Current    bool            `json:"current"`
	DateRange  string          `json:"date_range"`
	Duration   string          `json:"duration,omitempty"`
	Elapsed    *dates.Duration `json:"elapsed,omitempty"`
	Summary    string          `json:"summary,omitempty"`
	Highlights []string        `json:"highlights,omitempty"`
	Tech       []string        `json:"tech,omitempty"`
}

// ExperienceService formats work history entries
type ExperienceService struct {
	content content.Source
	calc    dates.Calculator
	locale  language.Tag
	logger  *slog.Logger
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(src content.Source, calc dates.Calculator, locale language.Tag, logger *slog.Logger) *ExperienceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExperienceService{
		content: src,
		calc:    calc,
		locale:  locale,
		logger:  logger,
	}
}

// List returns the static experience entries as views
func (s *ExperienceService) List() ([]ExperienceView, error) {
	c, err := s.content.Content()
	if err != nil {
		return nil, err
	}
	return s.Views(c.Experience), nil
}

// Views converts entries, keeping document order
func (s *ExperienceService) Views(entries []models.Experience) []ExperienceView {
	views := make([]ExperienceView, 0, len(entries))
	for _, e := range entries {
		views = append(views, s.View(e))
	}
	return views
}

// View converts one entry. Entries whose dates do not parse keep the raw
// text as their date range and get no duration.
func (s *ExperienceService) View(e models.Experience) ExperienceView {
	v := ExperienceView{
		Company:    e.Company,
		Role:       e.Role,
		Location:   e.Location,
		Start:      e.Start,
		End:        e.End,
		Current:    e.IsCurrent(),
		Summary:    e.Summary,
		Highlights: e.Highlights,
		Tech:       e.Tech,
	}

	start, err := dates.Parse(e.Start)
	if err != nil {
		s.logger.Warn("experience entry has invalid start date", "company", e.Company, "error", err)
		v.DateRange = rawRange(e.Start, e.End)
		return v
	}

	var end *dates.CalendarDate
	if !e.IsCurrent() {
		parsed, err := dates.Parse(e.End)
		if err != nil {
			s.logger.Warn("experience entry has invalid end date", "company", e.Company, "error", err)
			v.DateRange = rawRange(e.Start, e.End)
			return v
		}
		end = &parsed
	}

	elapsed := s.calc.Duration(start, end)
	v.DateRange = dates.FormatRange(start, end, s.locale)
	v.Duration = dates.FormatDuration(elapsed)
	v.Elapsed = &elapsed
	return v
}

// RemoteView converts an entry from the portfolio API, whose date text is
// already formatted by the server.
func RemoteView(e models.RemoteExperience) ExperienceView {
	return ExperienceView{
		Company:    e.Company,
		Role:       e.Position,
		Current:    strings.HasSuffix(e.Duration, dates.PresentLabel),
		DateRange:  e.Duration,
		Summary:    e.Description,
		Highlights: e.Achievements,
		Tech:       e.Technologies,
	}
}

func rawRange(start, end string) string {
	if end == "" {
		end = dates.PresentLabel
	}
	return start + " – " + end
}
