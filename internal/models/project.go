package models

// Project represents a portfolio project card
type Project struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImgSrc      string `json:"imgSrc" yaml:"imgSrc"`
	Href        string `json:"href" yaml:"href"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// Revision is one authored version of the project list
type Revision struct {
	Number   int       `json:"number" yaml:"number"`
	Projects []Project `json:"projects" yaml:"projects"`
}
