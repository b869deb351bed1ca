package memstore

import (
	"sync"

	"notifeed/internal/common"
)

// Store is the in-memory notification collection. A single RWMutex
// guards the slice and index so commands, the sweeper and the ingest
// workers can share it.
type Store struct {
	mu      sync.RWMutex
	records []common.NotificationRecord
	index   map[string]int
}

func New() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

var _ common.NotificationStore = (*Store)(nil)

func (s *Store) Insert(record common.NotificationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, ok := s.index[record.ID]; ok {
		s.records[pos] = record
		return
	}

	s.index[record.ID] = len(s.records)
	s.records = append(s.records, record)
}

func (s *Store) Get(id string) (common.NotificationRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return common.NotificationRecord{}, false
	}
	return s.records[pos], true
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []common.NotificationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]common.NotificationRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Replace(id string, update func(*common.NotificationRecord)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return false
	}

	update(&s.records[pos])
	return true
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return false
	}

	s.records = append(s.records[:pos], s.records[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.records); i++ {
		s.index[s.records[i].ID] = i
	}
	return true
}

// UnreadCount counts records that are neither read nor dismissed.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, record := range s.records {
		if !record.Read && !record.Dismissed {
			count++
		}
	}
	return count
}

func (s *Store) UndismissedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, record := range s.records {
		if !record.Dismissed {
			count++
		}
	}
	return count
}

func (s *Store) HasNotifications() bool {
	return s.UnreadCount() > 0
}

// HasUnreadMessages reports whether any comment-type record is still
// unread. Comment type stands in for direct messages here; the chat
// service publishes its events with that type.
func (s *Store) HasUnreadMessages() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.Type == common.CommentType && !record.Read && !record.Dismissed {
			return true
		}
	}
	return false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
