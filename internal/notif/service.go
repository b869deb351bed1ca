package notif

import (
	"fmt"
	"log"
	"sync"
	"time"

	"notifeed/internal/common"

	"github.com/google/uuid"
)

// Counts is the badge payload the presentation layer polls.
type Counts struct {
	Unread            int  `json:"unread"`
	Undismissed       int  `json:"undismissed"`
	HasNotifications  bool `json:"has_notifications"`
	HasUnreadMessages bool `json:"has_unread_messages"`
	NewContent        bool `json:"new_content"`
}

// Service owns the engine state: the store, the current filter and
// search query, and the new-content signal. All lifecycle commands go
// through it.
type Service struct {
	store    common.NotificationStore
	prefs    *PreferenceStore
	pipeline *Pipeline
	sweeper  *Sweeper

	mu         sync.RWMutex
	filters    common.FilterSpec
	query      string
	newContent bool

	// prefMu serializes preference patches with the sweeper restart
	// they trigger, so the sweeper never reflects a stale patch.
	prefMu sync.Mutex

	now func() time.Time
}

func NewService(
	store common.NotificationStore,
	prefs *PreferenceStore,
	pipeline *Pipeline,
) *Service {
	s := &Service{
		store:    store,
		prefs:    prefs,
		pipeline: pipeline,
		filters:  common.DefaultFilterSpec(),
		now:      time.Now,
	}

	pipeline.Subscribe(NewNewContentObserver(s.raiseNewContent))
	pipeline.Subscribe(NewChannelObserver(common.ChannelPush, prefs))
	pipeline.Subscribe(NewChannelObserver(common.ChannelEmail, prefs))

	return s
}

// AttachSweeper hands the service the sweeper it restarts when the
// auto-dismiss settings change.
func (s *Service) AttachSweeper(sweeper *Sweeper) {
	s.sweeper = sweeper
}

// CreateNotification validates the producer spec, assigns id and
// timestamp, and stores the record synchronously. Every accepted event
// is recorded in-app regardless of the matching in-app toggle; the
// per-channel preference gating applies to the push and email
// observers only.
func (s *Service) CreateNotification(spec common.NotificationSpec) (string, error) {
	record, err := s.newRecord(spec)
	if err != nil {
		return "", err
	}

	s.pipeline.Deliver(record)

	log.Printf("Notification created: id=%s type=%s", record.ID, record.Type)
	return record.ID, nil
}

// SubmitNotification is the asynchronous sibling of CreateNotification
// used by periodic producers. The returned id is assigned before the
// record is enqueued; the insert happens on an ingest worker.
func (s *Service) SubmitNotification(spec common.NotificationSpec) (string, error) {
	record, err := s.newRecord(spec)
	if err != nil {
		return "", err
	}

	s.pipeline.Submit(record)
	return record.ID, nil
}

func (s *Service) newRecord(spec common.NotificationSpec) (common.NotificationRecord, error) {
	if err := common.ValidateSpec(spec); err != nil {
		return common.NotificationRecord{}, fmt.Errorf("invalid notification spec: %w", err)
	}

	return common.NotificationRecord{
		ID:        uuid.NewString(),
		Type:      spec.Type,
		Category:  spec.Category,
		Priority:  spec.Priority,
		Title:     spec.Title,
		Message:   spec.Message,
		Content:   spec.Content,
		Actor:     spec.Actor,
		Actors:    spec.Actors,
		Timestamp: s.now(),
		Read:      false,
		Dismissed: false,
		Actions:   spec.Actions,
		Metadata:  spec.Metadata,
	}, nil
}

func (s *Service) Get(id string) (common.NotificationRecord, error) {
	record, ok := s.store.Get(id)
	if !ok {
		return common.NotificationRecord{}, fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}
	return record, nil
}

func (s *Service) MarkAsRead(id string) error {
	ok := s.store.Replace(id, func(record *common.NotificationRecord) {
		record.Read = true
	})
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}
	return nil
}

func (s *Service) MarkAllAsRead() {
	for _, record := range s.store.All() {
		s.store.Replace(record.ID, func(record *common.NotificationRecord) {
			record.Read = true
		})
	}
}

// Dismiss hides the record from the active feed. Dismissal always
// implies having been seen, so Read is forced true as well. Dismissing
// an already-dismissed record is a no-op.
func (s *Service) Dismiss(id string) error {
	ok := s.store.Replace(id, func(record *common.NotificationRecord) {
		record.Dismissed = true
		record.Read = true
	})
	if !ok {
		return fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}
	return nil
}

func (s *Service) DismissAll() {
	for _, record := range s.store.All() {
		s.store.Replace(record.ID, func(record *common.NotificationRecord) {
			record.Dismissed = true
			record.Read = true
		})
	}
}

// Delete removes the record permanently. There is no tombstone.
func (s *Service) Delete(id string) error {
	if !s.store.Remove(id) {
		return fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}
	return nil
}

// Archive currently shares dismiss semantics; the data model has no
// separate archived state. Kept as its own command because the UI
// exposes it as a distinct affordance.
func (s *Service) Archive(id string) error {
	return s.Dismiss(id)
}

// Filtered computes the feed view with the engine's current filter
// state.
func (s *Service) Filtered() []common.NotificationRecord {
	s.mu.RLock()
	filters := s.filters
	query := s.query
	s.mu.RUnlock()

	return FilteredNotifications(s.store.All(), filters, query, s.now())
}

// Visible returns the raw undismissed set in storage order.
func (s *Service) Visible() []common.NotificationRecord {
	return VisibleNotifications(s.store.All())
}

func (s *Service) Counts() Counts {
	unread := s.store.UnreadCount()

	s.mu.RLock()
	newContent := s.newContent
	s.mu.RUnlock()

	return Counts{
		Unread:            unread,
		Undismissed:       s.store.UndismissedCount(),
		HasNotifications:  unread > 0,
		HasUnreadMessages: s.store.HasUnreadMessages(),
		NewContent:        newContent,
	}
}

func (s *Service) SetFilters(patch common.FilterPatch) common.FilterSpec {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Category != nil {
		s.filters.Category = *patch.Category
	}
	if patch.Priority != nil {
		s.filters.Priority = *patch.Priority
	}
	if patch.Read != nil {
		s.filters.Read = *patch.Read
	}
	if patch.DateRange != nil {
		s.filters.DateRange = *patch.DateRange
	}

	return s.filters
}

func (s *Service) Filters() common.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *Service) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

func (s *Service) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// MarkVisited resets the new-content signal.
func (s *Service) MarkVisited() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newContent = false
}

func (s *Service) HasNewContent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.newContent
}

func (s *Service) raiseNewContent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newContent = true
}

// UpdatePreferences merges the patch and restarts the sweeper when the
// auto-dismiss settings changed, so timers never accumulate.
func (s *Service) UpdatePreferences(patch common.PreferencePatch) (common.PreferenceSet, error) {
	s.prefMu.Lock()
	defer s.prefMu.Unlock()

	before := s.prefs.Get().AutoDismiss

	updated, err := s.prefs.Update(patch)
	if err != nil {
		return common.PreferenceSet{}, err
	}

	if s.sweeper != nil && updated.AutoDismiss != before {
		s.sweeper.Apply(updated.AutoDismiss)
	}

	return updated, nil
}

func (s *Service) Preferences() common.PreferenceSet {
	return s.prefs.Get()
}

func (s *Service) Shutdown() {
	s.pipeline.Shutdown()
	log.Println("Notification service shutdown complete")
}
