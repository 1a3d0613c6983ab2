package history

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/robgonnella/bumpver/internal/logger"
)

// LedgerService represents our history.Service implementation
type LedgerService struct {
	repo Repo
	log  logger.Logger
}

// NewService returns a new instance of LedgerService
func NewService(repo Repo) *LedgerService {
	return &LedgerService{
		repo: repo,
		log:  logger.New(),
	}
}

// Recorded returns all recorded bumps, newest first
func (s *LedgerService) Recorded() ([]*Record, error) {
	return s.repo.GetAllRecords()
}

// Latest returns the most recent recorded bump
func (s *LedgerService) Latest() (*Record, error) {
	return s.repo.GetLatestRecord()
}

// Record stores a completed bump, assigning id and timestamp
func (s *LedgerService) Record(record *Record) error {
	if record == nil {
		return errors.New("cannot record nil bump")
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now()

	_, err := s.repo.AddRecord(record)

	if err != nil {
		return err
	}

	s.log.Debug().
		Str("project", record.Project).
		Str("version", record.NewVersion).
		Msg("recorded bump")

	return nil
}
