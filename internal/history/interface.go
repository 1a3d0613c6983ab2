package history

import "time"

//go:generate mockgen -destination=../mock/history/mock_history.go -package=mock_history . Repo,Service

// Record represents one completed version bump
type Record struct {
	ID         string `gorm:"primaryKey"`
	Project    string
	OldVersion string
	NewVersion string
	Action     string
	Committed  bool
	Tagged     bool
	CreatedAt  time.Time
}

// Repo interface representing access to stored bump records
type Repo interface {
	GetAllRecords() ([]*Record, error)
	GetLatestRecord() (*Record, error)
	AddRecord(record *Record) (*Record, error)
}

// Service interface for recording and listing bumps
type Service interface {
	Recorded() ([]*Record, error)
	Latest() (*Record, error)
	Record(record *Record) error
}
