package service

import (
	"context"

	"clubapi/internal/model"
	"clubapi/internal/repository"
)

// ProjectInput carries the client-supplied fields for a new project.
type ProjectInput struct {
	Title       string
	Description string
	Tech        string
	RepoLink    string
}

// ProjectService defines the use cases for projects.
type ProjectService interface {
	Create(ctx context.Context, in ProjectInput) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo repository.ProjectRepository
}

// NewProjectService constructs a ProjectService.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) Create(ctx context.Context, in ProjectInput) (*model.Project, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.RepoLink == "" {
		in.RepoLink = "#"
	}
	return s.repo.Create(ctx, &model.Project{
		Title:       in.Title,
		Description: in.Description,
		Tech:        in.Tech,
		RepoLink:    in.RepoLink,
	})
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
