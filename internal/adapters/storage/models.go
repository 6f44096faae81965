package storage

import "time"

// SessionModel is the GORM model for the sessions table. Duration is stored
// in nanoseconds so closing a session banks exactly the elapsed time.
type SessionModel struct {
	Active      bool   `gorm:"not null;default:false;index:idx_active"`
	Activity    string `gorm:"not null;index:idx_activity"`
	CreatedAt   time.Time
	DisplayName string `gorm:"not null;default:''"`
	Duration    int64  `gorm:"not null;default:0"`
	ID          string `gorm:"primaryKey"`
	PlayerID    string `gorm:"not null;index:idx_player_id"`
	StartedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }
