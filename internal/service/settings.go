package service

import (
	"context"
	"database/sql"
	"errors"

	"clubapi/internal/repository"
)

// gformsLinkKey is the single setting the site currently uses: the signup
// form URL shown on the public pages.
const gformsLinkKey = "gformsLink"

// defaultGformsLink is served until an admin configures a real URL.
const defaultGformsLink = "#"

// SettingService defines the use cases for site settings.
type SettingService interface {
	// GformsLink returns the configured signup link, or its default when
	// unset.
	GformsLink(ctx context.Context) (string, error)
	SetGformsLink(ctx context.Context, url string) error
}

type settingService struct {
	repo repository.SettingRepository
}

// NewSettingService constructs a SettingService.
func NewSettingService(repo repository.SettingRepository) SettingService {
	return &settingService{repo: repo}
}

func (s *settingService) GformsLink(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, gformsLinkKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return defaultGformsLink, nil
		}
		return "", err
	}
	return value, nil
}

func (s *settingService) SetGformsLink(ctx context.Context, url string) error {
	return s.repo.Upsert(ctx, gformsLinkKey, url)
}
