package storage

import (
	"time"

	"playtrack/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		ID:          m.ID,
		PlayerID:    m.PlayerID,
		DisplayName: m.DisplayName,
		Activity:    m.Activity,
		StartedAt:   m.StartedAt.UTC(),
		Duration:    time.Duration(m.Duration),
		Active:      m.Active,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		ID:          s.ID,
		PlayerID:    s.PlayerID,
		DisplayName: s.DisplayName,
		Activity:    s.Activity,
		StartedAt:   s.StartedAt.UTC(),
		Duration:    int64(s.Duration),
		Active:      s.Active,
	}
}
