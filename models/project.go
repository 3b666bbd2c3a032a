package models

// Project represents a case study shown in the work gallery
type Project struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Year        string   `json:"year" yaml:"year"`
}

// ProjectList wraps the array of projects as it appears in a catalog file
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
