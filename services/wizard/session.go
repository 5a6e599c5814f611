// File: services/wizard/session.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"rane/models"
	"rane/utils"
)

func (s *DefaultWizardService) sessionKey(sessionID string) string {
	return utils.SessionCachePrefix + sessionID
}

func (s *DefaultWizardService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return utils.SessionCacheTTL
}

// loadSession fetches and decodes a session from the cache.
func (s *DefaultWizardService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Cache.Get(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

// saveSession encodes and stores a session, refreshing its TTL.
func (s *DefaultWizardService) saveSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Cache.Set(ctx, s.sessionKey(session.SessionID), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

// StartSession creates a fresh session at the topic step. A deep-linked
// practitioner id is honored only when it resolves against the reference
// list; unknown ids are ignored silently.
func (s *DefaultWizardService) StartSession(preselectedPractitionerID, deviceID, userAgent string) (*models.WizardSession, error) {
	ctx := context.Background()

	session := &models.WizardSession{
		SessionID:   uuid.New().String(),
		CurrentStep: models.StepTopic,
		DeviceID:    deviceID,
		UserAgent:   userAgent,
		CreatedAt:   time.Now(),
	}

	if preselectedPractitionerID != "" {
		if p, err := s.Refs.GetPractitionerByID(ctx, preselectedPractitionerID); err == nil && p != nil {
			session.TherapistID = p.ID
		}
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current session state.
func (s *DefaultWizardService) GetSession(sessionID string) (*models.WizardSession, error) {
	return s.loadSession(context.Background(), sessionID)
}

// CancelSession deletes the session; in-flight state needs no cleanup beyond
// releasing the cache entry.
func (s *DefaultWizardService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}

// Restart resets a session to a blank state under the same id.
func (s *DefaultWizardService) Restart(sessionID string) (*models.WizardSession, error) {
	ctx := context.Background()
	old, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Reset, not mutate: downstream callers never see a half-cleared state.
	session := &models.WizardSession{
		SessionID:   old.SessionID,
		CurrentStep: models.StepTopic,
		DeviceID:    old.DeviceID,
		UserAgent:   old.UserAgent,
		CreatedAt:   time.Now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
