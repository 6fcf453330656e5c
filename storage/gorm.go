package storage

import (
	"errors"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one persisted key-value pair.
type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (Entry) TableName() string { return "kv_entries" }

// GormStore persists entries in a local SQLite database so session and
// cart state survive restarts of the client.
type GormStore struct {
	db *gorm.DB
}

func OpenGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) (string, bool) {
	var e Entry
	err := s.db.First(&e, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: read %q failed: %v", key, err)
		}
		return "", false
	}
	return e.Value, true
}

func (s *GormStore) Set(key, value string) {
	// Save upserts on the primary key. Write failures are logged, not
	// surfaced: the in-memory containers stay authoritative for the
	// running process and the contract has no error channel.
	if err := s.db.Save(&Entry{Key: key, Value: value}).Error; err != nil {
		log.Printf("storage: write %q failed: %v", key, err)
	}
}

func (s *GormStore) Remove(key string) {
	if err := s.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		log.Printf("storage: remove %q failed: %v", key, err)
	}
}
