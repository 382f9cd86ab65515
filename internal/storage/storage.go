package storage

import (
	"sync"

	"github.com/lehigh-university-libraries/harvester/internal/records"
)

// RecordStore holds descriptive records keyed by their object identifier.
// When an export carries duplicate identifiers, the last record set wins.
type RecordStore struct {
	records map[string]records.Record
	mu      sync.RWMutex
}

func New() *RecordStore {
	return &RecordStore{
		records: make(map[string]records.Record),
	}
}

func (s *RecordStore) Get(objectID string) (records.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, exists := s.records[objectID]
	return record, exists
}

func (s *RecordStore) Set(objectID string, record records.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[objectID] = record
}

func (s *RecordStore) GetAll() map[string]records.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]records.Record, len(s.records))
	for k, v := range s.records {
		result[k] = v
	}
	return result
}

func (s *RecordStore) Delete(objectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, objectID)
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
