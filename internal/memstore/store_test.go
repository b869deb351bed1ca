package memstore

import (
	"testing"
	"time"

	"notifeed/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(id string, t common.NotificationType) common.NotificationRecord {
	return common.NotificationRecord{
		ID:        id,
		Type:      t,
		Category:  common.CategorySocial,
		Priority:  common.PriorityMedium,
		Title:     "Test notification",
		Message:   "Something happened",
		Timestamp: time.Now(),
	}
}

func TestStore_InsertAndGet(t *testing.T) {
	store := New()

	store.Insert(testRecord("n1", common.LikeType))

	record, ok := store.Get("n1")
	require.True(t, ok)
	assert.Equal(t, "n1", record.ID)
	assert.Equal(t, common.LikeType, record.Type)
	assert.False(t, record.Read)
	assert.False(t, record.Dismissed)
}

func TestStore_GetMissing(t *testing.T) {
	store := New()

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestStore_AllPreservesInsertionOrder(t *testing.T) {
	store := New()

	store.Insert(testRecord("n1", common.LikeType))
	store.Insert(testRecord("n2", common.CommentType))
	store.Insert(testRecord("n3", common.FollowType))

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "n1", all[0].ID)
	assert.Equal(t, "n2", all[1].ID)
	assert.Equal(t, "n3", all[2].ID)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := New()
	store.Insert(testRecord("n1", common.LikeType))

	all := store.All()
	all[0].Read = true

	record, _ := store.Get("n1")
	assert.False(t, record.Read)
}

func TestStore_Replace(t *testing.T) {
	store := New()
	store.Insert(testRecord("n1", common.LikeType))

	ok := store.Replace("n1", func(record *common.NotificationRecord) {
		record.Read = true
	})
	require.True(t, ok)

	record, _ := store.Get("n1")
	assert.True(t, record.Read)
}

func TestStore_ReplaceMissingIsNoOp(t *testing.T) {
	store := New()
	store.Insert(testRecord("n1", common.LikeType))

	ok := store.Replace("nope", func(record *common.NotificationRecord) {
		record.Read = true
	})

	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Remove(t *testing.T) {
	store := New()
	store.Insert(testRecord("n1", common.LikeType))
	store.Insert(testRecord("n2", common.CommentType))
	store.Insert(testRecord("n3", common.FollowType))

	require.True(t, store.Remove("n2"))
	assert.False(t, store.Remove("n2"))

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "n1", all[0].ID)
	assert.Equal(t, "n3", all[1].ID)

	// Index still resolves records behind the removed slot.
	record, ok := store.Get("n3")
	require.True(t, ok)
	assert.Equal(t, "n3", record.ID)
}

func TestStore_Counters(t *testing.T) {
	store := New()
	store.Insert(testRecord("n1", common.LikeType))
	store.Insert(testRecord("n2", common.CommentType))
	store.Insert(testRecord("n3", common.FollowType))

	assert.Equal(t, 3, store.UnreadCount())
	assert.Equal(t, 3, store.UndismissedCount())
	assert.True(t, store.HasNotifications())
	assert.True(t, store.HasUnreadMessages())

	store.Replace("n2", func(record *common.NotificationRecord) {
		record.Read = true
	})

	assert.Equal(t, 2, store.UnreadCount())
	assert.Equal(t, 3, store.UndismissedCount())
	assert.False(t, store.HasUnreadMessages())

	store.Replace("n1", func(record *common.NotificationRecord) {
		record.Read = true
		record.Dismissed = true
	})

	assert.Equal(t, 1, store.UnreadCount())
	assert.Equal(t, 2, store.UndismissedCount())
}

func TestStore_HasNotificationsEmpty(t *testing.T) {
	store := New()
	assert.False(t, store.HasNotifications())
	assert.False(t, store.HasUnreadMessages())
}

func TestStore_HasUnreadMessagesIgnoresDismissedComments(t *testing.T) {
	store := New()
	store.Insert(testRecord("n1", common.CommentType))

	store.Replace("n1", func(record *common.NotificationRecord) {
		record.Read = true
		record.Dismissed = true
	})

	assert.False(t, store.HasUnreadMessages())
}
