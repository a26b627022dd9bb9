package services

import (
	"cmp"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"sagarneeli.dev/internal/content"
	"sagarneeli.dev/internal/models"
	"sagarneeli.dev/internal/profileapi"
	"sagarneeli.dev/internal/render"
	"sagarneeli.dev/internal/textutil"
)

// Source names where a page section came from
type Source string

const (
	SourceStatic Source = "static"
	SourceRemote Source = "remote"
)

// Page sections, used as keys of Page.Sources
const (
	SectionProfile    = "profile"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
)

// RemoteProfile is the optional portfolio API
type RemoteProfile interface {
	Profile(ctx context.Context) profileapi.Result[models.Profile]
	Experience(ctx context.Context) profileapi.Result[[]models.RemoteExperience]
	Projects(ctx context.Context) profileapi.Result[[]models.RemoteProject]
	Skills(ctx context.Context) profileapi.Result[models.Skills]
}

// ProfileView is the hero/about data shown on the page
type ProfileView struct {
	Name         string            `json:"name"`
	Headline     string            `json:"headline"`
	Summary      template.HTML     `json:"summary,omitempty"`
	Location     string            `json:"location,omitempty"`
	Availability string            `json:"availability,omitempty"`
	ResumeURL    string            `json:"resume_url,omitempty"`
	Links        map[string]string `json:"links,omitempty"`
}

// ProjectView is a project ready for display
type ProjectView struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Company     string        `json:"company,omitempty"`
	Description template.HTML `json:"description"`
	Impact      string        `json:"impact,omitempty"`
	Type        string        `json:"type,omitempty"`
	Tech        []string      `json:"tech,omitempty"`
	GitHubURL   string        `json:"github_url,omitempty"`
	LiveURL     string        `json:"live_url,omitempty"`
	Year        int           `json:"year,omitempty"`
	Featured    bool          `json:"featured"`
}

// SkillGroup is one category of skills
type SkillGroup struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Skills []string `json:"skills"`
}

// Page is everything the home page renders
type Page struct {
	Site       models.Site       `json:"site"`
	Profile    ProfileView       `json:"profile"`
	Experience []ExperienceView  `json:"experience"`
	Projects   []ProjectView     `json:"projects"`
	Skills     []SkillGroup      `json:"skills"`
	Sources    map[string]Source `json:"sources"`
}

// PageService assembles the page from static content and the optional
// portfolio API
type PageService struct {
	content    content.Source
	remote     RemoteProfile
	experience *ExperienceService
	markdown   *render.Markdown
	logger     *slog.Logger
}

// NewPageService creates a new PageService. remote may be nil.
func NewPageService(src content.Source, remote RemoteProfile, exp *ExperienceService, md *render.Markdown, logger *slog.Logger) *PageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageService{
		content:    src,
		remote:     remote,
		experience: exp,
		markdown:   md,
		logger:     logger,
	}
}

// Compose builds the page. A content load failure is returned as is; remote
// failures only mean the static section is used.
func (s *PageService) Compose(ctx context.Context) (*Page, error) {
	static, err := s.content.Content()
	if err != nil {
		return nil, err
	}

	page := &Page{
		Site:    static.Site,
		Sources: make(map[string]Source, 4),
	}

	var (
		remoteProfile    profileapi.Result[models.Profile]
		remoteExperience profileapi.Result[[]models.RemoteExperience]
		remoteProjects   profileapi.Result[[]models.RemoteProject]
		remoteSkills     profileapi.Result[models.Skills]
	)
	if s.remote != nil {
		// fetches never fail the group; each failure stays in its Result
		var g errgroup.Group
		g.Go(func() error { remoteProfile = s.remote.Profile(ctx); return nil })
		g.Go(func() error { remoteExperience = s.remote.Experience(ctx); return nil })
		g.Go(func() error { remoteProjects = s.remote.Projects(ctx); return nil })
		g.Go(func() error { remoteSkills = s.remote.Skills(ctx); return nil })
		_ = g.Wait()
	} else {
		remoteProfile.Err = disabled(profileapi.PathProfile)
		remoteExperience.Err = disabled(profileapi.PathExperience)
		remoteProjects.Err = disabled(profileapi.PathProjects)
		remoteSkills.Err = disabled(profileapi.PathSkills)
	}

	s.report(remoteProfile.Err, remoteExperience.Err, remoteProjects.Err, remoteSkills.Err)

	page.Profile, page.Sources[SectionProfile] = choose(
		mapResult(remoteProfile, func(p models.Profile) ProfileView { return s.profileFromRemote(p, static) }),
		s.profileFromStatic(static),
	)
	page.Experience, page.Sources[SectionExperience] = choose(
		mapResult(remoteExperience, remoteExperienceViews),
		s.experience.Views(static.Experience),
	)
	page.Projects, page.Sources[SectionProjects] = choose(
		mapResult(remoteProjects, s.remoteProjectViews),
		s.staticProjectViews(static.Projects),
	)
	page.Skills, page.Sources[SectionSkills] = choose(
		mapResult(remoteSkills, skillGroups),
		skillGroups(static.Skills),
	)

	return page, nil
}

// choose is the fallback policy: remote data wins when it was fetched and is
// not empty, otherwise the static value is used.
func choose[T any](remote profileapi.Result[T], static T) (T, Source) {
	if remote.OK() && !isEmpty(remote.Value) {
		return remote.Value, SourceRemote
	}
	return static, SourceStatic
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case []ExperienceView:
		return len(x) == 0
	case []ProjectView:
		return len(x) == 0
	case []SkillGroup:
		return len(x) == 0
	}
	return false
}

// mapResult converts the value of a successful result and passes errors through.
func mapResult[T, U any](r profileapi.Result[T], f func(T) U) profileapi.Result[U] {
	if !r.OK() {
		return profileapi.Result[U]{Err: r.Err}
	}
	return profileapi.Result[U]{Value: f(r.Value)}
}

func disabled(endpoint string) *profileapi.FetchError {
	return &profileapi.FetchError{Endpoint: endpoint, Err: profileapi.ErrDisabled}
}

// report logs remote failures. A disabled client is not a failure.
func (s *PageService) report(errs ...*profileapi.FetchError) {
	for _, ferr := range errs {
		if ferr == nil || errors.Is(ferr, profileapi.ErrDisabled) {
			continue
		}
		s.logger.Warn("profile api unavailable, using static content",
			"endpoint", ferr.Endpoint,
			"status", ferr.StatusCode,
			"error", ferr.Err,
		)
	}
}

func (s *PageService) profileFromStatic(c *models.SiteContent) ProfileView {
	return ProfileView{
		Name:         c.Hero.Name,
		Headline:     c.Hero.Headline,
		Summary:      s.html(c.Hero.Summary),
		Location:     c.Hero.Location,
		Availability: c.Hero.Availability,
		ResumeURL:    c.Hero.ResumeURL,
		Links:        maps.Clone(c.Links),
	}
}

func (s *PageService) profileFromRemote(p models.Profile, c *models.SiteContent) ProfileView {
	links := maps.Clone(c.Links)
	if links == nil {
		links = make(map[string]string, 3)
	}
	if p.Contact.Email != "" {
		links["email"] = "mailto:" + p.Contact.Email
	}
	if p.Contact.LinkedIn != "" {
		links["linkedin"] = p.Contact.LinkedIn
	}
	if p.Contact.GitHub != "" {
		links["github"] = p.Contact.GitHub
	}

	return ProfileView{
		Name:         p.Name,
		Headline:     p.Title,
		Summary:      s.html(p.Summary),
		Location:     p.Location,
		Availability: p.Availability,
		ResumeURL:    c.Hero.ResumeURL,
		Links:        links,
	}
}

func remoteExperienceViews(entries []models.RemoteExperience) []ExperienceView {
	views := make([]ExperienceView, 0, len(entries))
	for _, e := range entries {
		views = append(views, RemoteView(e))
	}
	return views
}

func (s *PageService) staticProjectViews(projects []models.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectView{
			ID:          p.ID,
			Title:       p.Title,
			Company:     p.Company,
			Description: s.html(p.Description),
			Impact:      p.Impact,
			Type:        p.Type,
			Tech:        p.TechStack,
			GitHubURL:   p.GitHubURL,
			LiveURL:     p.LiveURL,
			Year:        p.Year,
			Featured:    p.Featured,
		})
	}
	return views
}

func (s *PageService) remoteProjectViews(projects []models.RemoteProject) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectView{
			ID:          textutil.Key(p.Title),
			Title:       p.Title,
			Company:     p.Company,
			Description: s.html(p.Description),
			Impact:      p.Impact,
			Type:        p.Type,
			Tech:        p.Technologies,
			// the API only serves featured projects
			Featured: true,
		})
	}
	return views
}

// skillGroups orders categories by normalized key.
func skillGroups(skills models.Skills) []SkillGroup {
	groups := make([]SkillGroup, 0, len(skills))
	for _, name := range slices.Sorted(maps.Keys(skills)) {
		key := textutil.Key(name)
		groups = append(groups, SkillGroup{
			Key:    key,
			Title:  textutil.Title(key),
			Skills: skills[name],
		})
	}
	slices.SortStableFunc(groups, func(a, b SkillGroup) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return groups
}

// html renders markdown, falling back to escaped text if rendering fails.
func (s *PageService) html(src string) template.HTML {
	out, err := s.markdown.Render(src)
	if err != nil {
		s.logger.Warn("failed to render markdown", "error", err)
		return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped
	}
	return out
}
