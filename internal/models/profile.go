package models

// Profile is the profile payload of the portfolio API
type Profile struct {
	Name         string  `json:"name" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Summary      string  `json:"summary"`
	Location     string  `json:"location"`
	Availability string  `json:"availability"`
	Contact      Contact `json:"contact"`
}

// Contact holds the profile's contact channels
type Contact struct {
	Email    string `json:"email" validate:"omitempty,email"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
	GitHub   string `json:"github" validate:"omitempty,url"`
}

// RemoteExperience is an experience entry as served by the portfolio API.
// Duration is preformatted by the server, e.g. "Mar 2021–Jan 2023".
type RemoteExperience struct {
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

// ExperienceList wraps the experience endpoint payload
type ExperienceList struct {
	Experience []RemoteExperience `json:"experience" validate:"dive"`
}

// RemoteProject is a project entry as served by the portfolio API
type RemoteProject struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Impact       string   `json:"impact"`
	Type         string   `json:"type"`
}

// RemoteProjectList wraps the projects endpoint payload
type RemoteProjectList struct {
	Projects []RemoteProject `json:"projects" validate:"dive"`
}

// Skills maps a normalized category key to skill names
type Skills map[string][]string
