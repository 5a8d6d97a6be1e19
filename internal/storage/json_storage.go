// Package storage persists the publication log: what was posted where and
// when, plus the per-day counters derived from it. A JSON file is the
// default backend; Postgres is used when DATABASE_URL is set.
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/domain"
	"github.com/Tech-Aware/TechAware.social-media-automator/internal/core/ports"
)

const dateLayout = "2006-01-02"

// JSONStorage keeps the publication log in a single JSON file.
type JSONStorage struct {
	FilePath string
	mu       sync.RWMutex
	Data     storageData
}

type storageData struct {
	Publications []domain.PublicationRecord `json:"publications"`
	DailyCount   map[string]int             `json:"daily_count"`
	LastPostDate map[string]string          `json:"last_post_date"`
}

func NewJSONStorage(filePath string) (*JSONStorage, error) {
	s := &JSONStorage{
		FilePath: filePath,
		Data: storageData{
			DailyCount:   make(map[string]int),
			LastPostDate: make(map[string]string),
		},
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, err
	}
	if err := s.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

var _ ports.Storage = (*JSONStorage)(nil)

func (s *JSONStorage) loadFromFile() error {
	file, err := os.ReadFile(s.FilePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(file, &s.Data); err != nil {
		return err
	}
	if s.Data.DailyCount == nil {
		s.Data.DailyCount = make(map[string]int)
	}
	if s.Data.LastPostDate == nil {
		s.Data.LastPostDate = make(map[string]string)
	}
	return nil
}

func (s *JSONStorage) saveToFile() error {
	data, err := json.MarshalIndent(s.Data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.FilePath, data, 0644)
}

func (s *JSONStorage) RecordPublication(_ context.Context, rec domain.PublicationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Data.Publications = append(s.Data.Publications, rec)

	platform := string(rec.Platform)
	date := rec.PostedAt.Format(dateLayout)
	if s.Data.LastPostDate[platform] != date {
		s.Data.DailyCount[platform] = 1
		s.Data.LastPostDate[platform] = date
	} else {
		s.Data.DailyCount[platform]++
	}
	return s.saveToFile()
}

func (s *JSONStorage) Stats(_ context.Context, platform domain.Platform) (int, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Data.DailyCount[string(platform)], s.Data.LastPostDate[string(platform)], nil
}
