// File: services/coach/service.go
package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gamecoach/config"
	"gamecoach/models"
	"gamecoach/services/availability"
	"gamecoach/utils"

	"go.uber.org/zap"
)

const profileCachePrefix = "coachProfile:"

// GetProfile returns the coach's full booking view, served from the Redis
// cache when fresh. Cache failures fall through to Mongo.
func (s *DefaultCoachService) GetProfile(ctx context.Context, username string) (*models.CoachProfile, error) {
	logger := utils.GetLogger()
	cacheClient := utils.GetCacheClient()
	key := profileCachePrefix + username

	if cached, err := cacheClient.Get(ctx, key).Result(); err == nil {
		var profile models.CoachProfile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
		logger.Warn("corrupt cached profile, refetching", zap.String("coach", username))
	}

	profile, err := s.Repo.GetProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(profile); err == nil {
		ttl := time.Duration(config.AppConfig.ProfileCacheTTLSecs) * time.Second
		if err := cacheClient.Set(ctx, key, data, ttl).Err(); err != nil {
			logger.Warn("failed to cache coach profile", zap.String("coach", username), zap.Error(err))
		}
	}
	return profile, nil
}

func (s *DefaultCoachService) RegisterCoach(ctx context.Context, coach *models.Coach) error {
	if coach.Username == "" {
		return fmt.Errorf("username is required")
	}
	if coach.Email == "" {
		return fmt.Errorf("email is required")
	}
	return s.Repo.CreateCoach(ctx, coach)
}

func (s *DefaultCoachService) CreateService(ctx context.Context, svc *models.CoachService) error {
	if svc.CoachUsername == "" {
		return fmt.Errorf("coachUsername is required")
	}
	if svc.Title == "" {
		return fmt.Errorf("title is required")
	}
	if _, err := s.Repo.GetByUsername(ctx, svc.CoachUsername); err != nil {
		return err
	}
	if err := s.Repo.CreateService(ctx, svc); err != nil {
		return err
	}
	s.invalidateProfile(ctx, svc.CoachUsername)
	return nil
}

// SetWeeklyAvailability validates and replaces the coach's weekly windows.
// The resolver tolerates bad windows by skipping them, but the planning flow
// rejects them outright so coaches see the mistake.
func (s *DefaultCoachService) SetWeeklyAvailability(ctx context.Context, username string, windows []models.WeeklyAvailability) error {
	for i, w := range windows {
		startHour, startMin, ok := availability.ParseClock(w.StartTime)
		if !ok {
			return fmt.Errorf("window %d: invalid startTime %q", i+1, w.StartTime)
		}
		endHour, endMin, ok := availability.ParseClock(w.EndTime)
		if !ok {
			return fmt.Errorf("window %d: invalid endTime %q", i+1, w.EndTime)
		}
		if endHour*60+endMin <= startHour*60+startMin {
			return fmt.Errorf("window %d: endTime must be after startTime", i+1)
		}
		if w.Price < 0 {
			return fmt.Errorf("window %d: price must not be negative", i+1)
		}
	}

	if err := s.Repo.ReplaceWeeklyAvailability(ctx, username, windows); err != nil {
		return err
	}
	s.invalidateProfile(ctx, username)
	return nil
}

// SetServiceSlots validates and replaces one service's explicit per-date and
// weekly recurring slots.
func (s *DefaultCoachService) SetServiceSlots(ctx context.Context, username, serviceID string, explicit []models.ExplicitServiceSlot, weekly []models.WeeklyServiceSlot) error {
	for i, slot := range explicit {
		if _, ok := availability.ParseLocalDate(slot.Date); !ok {
			return fmt.Errorf("slot %d: invalid date %q", i+1, slot.Date)
		}
		if _, _, ok := availability.ParseClock(slot.Time); !ok {
			return fmt.Errorf("slot %d: invalid time %q", i+1, slot.Time)
		}
		if slot.Capacity < 1 {
			return fmt.Errorf("slot %d: capacity must be at least 1; got %d", i+1, slot.Capacity)
		}
	}
	for i, slot := range weekly {
		if _, _, ok := availability.ParseClock(slot.Time); !ok {
			return fmt.Errorf("weekly slot %d: invalid time %q", i+1, slot.Time)
		}
		if slot.Capacity < 1 {
			return fmt.Errorf("weekly slot %d: capacity must be at least 1; got %d", i+1, slot.Capacity)
		}
	}

	if err := s.Repo.ReplaceServiceSlots(ctx, username, serviceID, explicit, weekly); err != nil {
		return err
	}
	s.invalidateProfile(ctx, username)
	return nil
}

func (s *DefaultCoachService) invalidateProfile(ctx context.Context, username string) {
	if err := utils.GetCacheClient().Del(ctx, profileCachePrefix+username).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate profile cache",
			zap.String("coach", username), zap.Error(err))
	}
}
