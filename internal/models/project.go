package models

// Project represents a portfolio project
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Company     string   `json:"company,omitempty" yaml:"company,omitempty"`
	Description string   `json:"description" yaml:"description"` // markdown
	Impact      string   `json:"impact,omitempty" yaml:"impact,omitempty"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"` // ai, backend, fullstack, ...
	TechStack   []string `json:"tech" yaml:"tech"`
	GitHubURL   string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	Year        int      `json:"year,omitempty" yaml:"year,omitempty"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

