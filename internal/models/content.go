package models

// SiteContent is the static content document backing the page text
type SiteContent struct {
	Site       Site                `json:"site" yaml:"site"`
	Hero       Hero                `json:"hero" yaml:"hero"`
	Experience []Experience        `json:"experience,omitempty" yaml:"experience,omitempty"`
	Projects   []Project           `json:"projects,omitempty" yaml:"projects,omitempty"`
	Skills     map[string][]string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Links      map[string]string   `json:"links,omitempty" yaml:"links,omitempty"`
}

// Site holds site-wide metadata
type Site struct {
	Title       string `json:"title" yaml:"title"`
	Tagline     string `json:"tagline" yaml:"tagline"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Hero holds the introduction shown at the top of the page
type Hero struct {
	Name         string `json:"name" yaml:"name"`
	Headline     string `json:"headline" yaml:"headline"`
	Summary      string `json:"summary,omitempty" yaml:"summary,omitempty"` // markdown
	Location     string `json:"location,omitempty" yaml:"location,omitempty"`
	Availability string `json:"availability,omitempty" yaml:"availability,omitempty"`
	ResumeURL    string `json:"resume_url,omitempty" yaml:"resume_url,omitempty"`
}

// Experience is a single work history entry. Start and End are kept as
// written in the document; End is empty for the current role.
type Experience struct {
	Company    string   `json:"company" yaml:"company"`
	Role       string   `json:"role" yaml:"role"`
	Location   string   `json:"location,omitempty" yaml:"location,omitempty"`
	Start      string   `json:"start" yaml:"start"`
	End        string   `json:"end,omitempty" yaml:"end,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
	Tech       []string `json:"tech,omitempty" yaml:"tech,omitempty"`
}

// IsCurrent reports whether the entry has no end date
func (e Experience) IsCurrent() bool {
	return e.End == ""
}
