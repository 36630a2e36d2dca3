package service

import (
	"context"
	"database/sql"
	"testing"

	"clubapi/internal/model"
	"clubapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing title rejected before the repository is touched", func(t *testing.T) {
		repo := new(mocks.MockEventRepository)
		svc := NewEventService(repo)

		_, err := svc.Create(ctx, EventInput{Date: "2026-09-01"})

		assert.ErrorIs(t, err, ErrTitleRequired)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("defaults fill empty link and nil images", func(t *testing.T) {
		repo := new(mocks.MockEventRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(ev *model.Event) bool {
			return ev.Link == "#" && ev.Images != nil && len(ev.Images) == 0
		})).Return(&model.Event{ID: 7, Title: "Hack Night", Link: "#", Images: []string{}}, nil)
		svc := NewEventService(repo)

		ev, err := svc.Create(ctx, EventInput{Title: "Hack Night"})

		require.NoError(t, err)
		assert.Equal(t, int64(7), ev.ID)
		repo.AssertExpectations(t)
	})

	t.Run("image references pass through untouched", func(t *testing.T) {
		images := []string{"/uploads/1-poster.png", "/uploads/2-venue.webp"}
		repo := new(mocks.MockEventRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(ev *model.Event) bool {
			return len(ev.Images) == 2 && ev.Images[0] == images[0]
		})).Return(&model.Event{ID: 8, Title: "Demo Day", Images: images}, nil)
		svc := NewEventService(repo)

		ev, err := svc.Create(ctx, EventInput{Title: "Demo Day", Link: "https://example.com", Images: images})

		require.NoError(t, err)
		assert.Equal(t, images, ev.Images)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockEventRepository)
	repo.On("Delete", ctx, int64(99)).Return(sql.ErrNoRows)
	svc := NewEventService(repo)

	assert.ErrorIs(t, svc.Delete(ctx, 99), sql.ErrNoRows)
}

func TestTeamService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing name rejected", func(t *testing.T) {
		repo := new(mocks.MockTeamRepository)
		svc := NewTeamService(repo)

		_, err := svc.Create(ctx, TeamInput{Role: "Lead"})

		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("fields forwarded as given", func(t *testing.T) {
		repo := new(mocks.MockTeamRepository)
		repo.On("Create", ctx, &model.TeamMember{Name: "Ada", Role: "Lead", Dept: "Software", Photo: "/uploads/3-ada.jpg"}).
			Return(&model.TeamMember{ID: 1, Name: "Ada", Role: "Lead", Dept: "Software", Photo: "/uploads/3-ada.jpg"}, nil)
		svc := NewTeamService(repo)

		tm, err := svc.Create(ctx, TeamInput{Name: "Ada", Role: "Lead", Dept: "Software", Photo: "/uploads/3-ada.jpg"})

		require.NoError(t, err)
		assert.Equal(t, "Ada", tm.Name)
		repo.AssertExpectations(t)
	})
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing title rejected", func(t *testing.T) {
		repo := new(mocks.MockProjectRepository)
		svc := NewProjectService(repo)

		_, err := svc.Create(ctx, ProjectInput{Description: "a bot"})

		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("empty repo link defaults", func(t *testing.T) {
		repo := new(mocks.MockProjectRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(p *model.Project) bool {
			return p.RepoLink == "#"
		})).Return(&model.Project{ID: 4, Title: "Bot", RepoLink: "#"}, nil)
		svc := NewProjectService(repo)

		p, err := svc.Create(ctx, ProjectInput{Title: "Bot"})

		require.NoError(t, err)
		assert.Equal(t, "#", p.RepoLink)
	})
}

func TestSettingService_GformsLink(t *testing.T) {
	ctx := context.Background()

	t.Run("unset key falls back to the default link", func(t *testing.T) {
		repo := new(mocks.MockSettingRepository)
		repo.On("Get", ctx, "gformsLink").Return("", sql.ErrNoRows)
		svc := NewSettingService(repo)

		link, err := svc.GformsLink(ctx)

		require.NoError(t, err)
		assert.Equal(t, "#", link)
	})

	t.Run("stored value wins", func(t *testing.T) {
		repo := new(mocks.MockSettingRepository)
		repo.On("Get", ctx, "gformsLink").Return("https://forms.example/join", nil)
		svc := NewSettingService(repo)

		link, err := svc.GformsLink(ctx)

		require.NoError(t, err)
		assert.Equal(t, "https://forms.example/join", link)
	})

	t.Run("set writes through", func(t *testing.T) {
		repo := new(mocks.MockSettingRepository)
		repo.On("Upsert", ctx, "gformsLink", "https://forms.example/new").Return(nil)
		svc := NewSettingService(repo)

		require.NoError(t, svc.SetGformsLink(ctx, "https://forms.example/new"))
		repo.AssertExpectations(t)
	})
}
