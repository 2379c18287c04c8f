package usecase

import (
	"context"
	"sync"
	"time"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/internal/infrastructure/telemetry"
)

type DiscoveryUseCase struct {
	profileRepo repository.ProfileRepository
	metrics     *telemetry.Metrics
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*SearchSession
}

func NewDiscoveryUseCase(profileRepo repository.ProfileRepository, metrics *telemetry.Metrics) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		profileRepo: profileRepo,
		metrics:     metrics,
		now:         time.Now,
		sessions:    make(map[string]*SearchSession),
	}
}

// Search matches sellers whose stored city equals the normalized query.
// A blank query issues no request and reports ran=false.
func (uc *DiscoveryUseCase) Search(ctx context.Context, city string) (results []*entity.Profile, ran bool, err error) {
	city = entity.NormalizeCity(city)
	if city == "" {
		uc.metrics.SearchCompleted("skipped")
		return nil, false, nil
	}

	results, err = uc.profileRepo.FindByCity(ctx, entity.RoleSeller, city)
	if err != nil {
		return nil, true, err
	}
	if results == nil {
		results = []*entity.Profile{}
	}

	if len(results) == 0 {
		uc.metrics.SearchCompleted("empty")
	} else {
		uc.metrics.SearchCompleted("hit")
	}
	return results, true, nil
}

// SessionFor returns the user's search session, creating it on first use.
func (uc *DiscoveryUseCase) SessionFor(uid string) *SearchSession {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[uid]
	if !ok {
		s = NewSearchSession(uc)
		uc.sessions[uid] = s
	}
	s.lastUsed = uc.now()
	return s
}

// CleanupSessions drops sessions not used within maxIdle.
func (uc *DiscoveryUseCase) CleanupSessions(maxIdle time.Duration) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	dropped := 0
	for uid, s := range uc.sessions {
		if now.Sub(s.lastUsed) > maxIdle {
			delete(uc.sessions, uid)
			dropped++
		}
	}
	return dropped
}

func (uc *DiscoveryUseCase) StartSessionCleanup(ctx context.Context, every, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				uc.CleanupSessions(maxIdle)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// SearchSession remembers the last result set the way the search screen
// does: a blank query leaves it unchanged.
type SearchSession struct {
	discovery *DiscoveryUseCase
	lastUsed  time.Time

	mu   sync.Mutex
	last []*entity.Profile
}

func NewSearchSession(discovery *DiscoveryUseCase) *SearchSession {
	return &SearchSession{
		discovery: discovery,
		last:      []*entity.Profile{},
	}
}

func (s *SearchSession) Search(ctx context.Context, city string) (results []*entity.Profile, skipped bool, err error) {
	results, ran, err := s.discovery.Search(ctx, city)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		return nil, false, err
	}
	if !ran {
		return s.last, true, nil
	}

	s.last = results
	return results, false, nil
}

func (s *SearchSession) Last() []*entity.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
