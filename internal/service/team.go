package service

import (
	"context"
	"errors"

	"clubapi/internal/model"
	"clubapi/internal/repository"
)

// ErrNameRequired rejects team member creation without a name.
var ErrNameRequired = errors.New("name is required")

// TeamInput carries the client-supplied fields for a new team member. Photo
// is a reference path from the upload pipeline, or empty.
type TeamInput struct {
	Name  string
	Role  string
	Dept  string
	Photo string
}

// TeamService defines the use cases for team members.
type TeamService interface {
	Create(ctx context.Context, in TeamInput) (*model.TeamMember, error)
	List(ctx context.Context) ([]model.TeamMember, error)
	Delete(ctx context.Context, id int64) error
}

type teamService struct {
	repo repository.TeamRepository
}

// NewTeamService constructs a TeamService.
func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (s *teamService) Create(ctx context.Context, in TeamInput) (*model.TeamMember, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Create(ctx, &model.TeamMember{
		Name:  in.Name,
		Role:  in.Role,
		Dept:  in.Dept,
		Photo: in.Photo,
	})
}

func (s *teamService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.List(ctx)
}

func (s *teamService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
