package common

// NotificationStore is the authoritative collection of notification
// records. Insertion order is the canonical storage order; display
// order is computed by the filter engine. Implementations must be safe
// for concurrent use: commands, the sweeper and the ingest workers all
// touch the store from their own goroutines.
type NotificationStore interface {
	Insert(record NotificationRecord)
	Get(id string) (NotificationRecord, bool)
	All() []NotificationRecord
	// Replace applies update to the record under the store lock.
	// Returns false when id is not present.
	Replace(id string, update func(*NotificationRecord)) bool
	Remove(id string) bool

	// Derived counters, recomputed on every call.
	UnreadCount() int
	UndismissedCount() int
	HasNotifications() bool
	HasUnreadMessages() bool
}

// Observer receives every record the ingest pipeline delivers.
type Observer interface {
	Name() string
	Update(record NotificationRecord) error
}

// Router is the external navigation collaborator. The action
// dispatcher hands it a URL after a short delay when a performed
// action carries a related URL.
type Router interface {
	Navigate(url string)
}
