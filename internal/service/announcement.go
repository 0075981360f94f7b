package service

import (
	"context"
	"strings"

	"github.com/confcentral/confcentral/internal/domain"
	"github.com/confcentral/confcentral/internal/repository"
	"github.com/confcentral/confcentral/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Fixed cache keys for the two derived announcements.
const (
	CacheKeyAnnouncements = "RECENT_ANNOUNCEMENTS"
	CacheKeySpeakers      = "SPEAKER_ANNOUNCEMENTS"
)

const (
	nearCapacityPrefix = "Last chance to attend! The following conferences are nearly sold out: "
	featuredPrefix     = "Featured speakers presenting the most sessions: "
)

// AnnouncementService recomputes the two derived announcements from store
// state and writes them through to the cache. Both jobs are idempotent and
// safe to run concurrently with registrations and session creation; the
// cache is allowed to go stale between refreshes.
type AnnouncementService struct {
	repo   *repository.Repository
	cache  ports.Cache
	logger logger.Logger
}

func NewAnnouncementService(repo *repository.Repository, cache ports.Cache, log logger.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, cache: cache, logger: log}
}

// RefreshConferences recomputes the near-capacity announcement. No
// qualifying conferences is a normal path that clears the cache entry.
func (s *AnnouncementService) RefreshConferences(ctx context.Context) (string, error) {
	confs, err := s.repo.NearCapacityConferences(ctx)
	if err != nil {
		return "", err
	}
	if len(confs) == 0 {
		s.cache.Delete(CacheKeyAnnouncements)
		return "", nil
	}

	names := make([]string, len(confs))
	for i, c := range confs {
		names[i] = c.Name
	}
	announcement := nearCapacityPrefix + strings.Join(names, ", ")
	s.cache.Set(CacheKeyAnnouncements, announcement)

	s.logger.Debug("near-capacity announcement refreshed",
		logger.Int("conferences", len(confs)),
	)
	return announcement, nil
}

// RefreshSpeakers recomputes the featured-speaker announcement: every
// speaker tied for the maximum session count.
func (s *AnnouncementService) RefreshSpeakers(ctx context.Context) (string, error) {
	speakers, err := s.repo.SpeakersBySessionCount(ctx)
	if err != nil {
		return "", err
	}

	var featured []*domain.Speaker
	for _, sp := range speakers {
		if len(featured) > 0 && sp.SessionCount != featured[0].SessionCount {
			break
		}
		featured = append(featured, sp)
	}

	if len(featured) == 0 {
		s.cache.Delete(CacheKeySpeakers)
		return "", nil
	}

	names := make([]string, len(featured))
	for i, sp := range featured {
		names[i] = sp.DisplayName
	}
	announcement := featuredPrefix + strings.Join(names, ", ")
	s.cache.Set(CacheKeySpeakers, announcement)

	s.logger.Debug("featured-speaker announcement refreshed",
		logger.Int("speakers", len(featured)),
	)
	return announcement, nil
}

// Announcement returns the cached near-capacity announcement, or "" when
// none is set.
func (s *AnnouncementService) Announcement() string {
	v, _ := s.cache.Get(CacheKeyAnnouncements)
	return v
}

// SpeakerAnnouncement returns the cached featured-speaker announcement, or
// "" when none is set.
func (s *AnnouncementService) SpeakerAnnouncement() string {
	v, _ := s.cache.Get(CacheKeySpeakers)
	return v
}
