package model

// Project represents a showcased club project.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tech        string `json:"tech"`
	RepoLink    string `json:"repoLink"`
}
