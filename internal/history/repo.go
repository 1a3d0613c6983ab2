package history

import (
	"errors"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/robgonnella/bumpver/internal/exception"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new repo instance for the given db connection
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// NewSqliteDatabase opens the ledger database at the path shared via viper
// and returns a repo for it
func NewSqliteDatabase() (*SqliteRepo, error) {
	filepath := viper.Get("database-file")

	dbFile, ok := filepath.(string)

	if !ok {
		return nil, errors.New("failed to find database file path config")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}

	return &SqliteRepo{db: db}, nil
}

// GetAllRecords returns all bump records, newest first
func (r *SqliteRepo) GetAllRecords() ([]*Record, error) {
	records := []*Record{}

	if result := r.db.Order("created_at desc").Find(&records); result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// GetLatestRecord returns the most recent bump record
func (r *SqliteRepo) GetLatestRecord() (*Record, error) {
	record := Record{}

	if result := r.db.Order("created_at desc").First(&record); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &record, nil
}

// AddRecord stores a bump record
func (r *SqliteRepo) AddRecord(record *Record) (*Record, error) {
	if result := r.db.Create(record); result.Error != nil {
		return nil, result.Error
	}

	return record, nil
}
