package notif

import (
	"testing"

	"notifeed/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	for _, nt := range common.NotificationTypes {
		assert.True(t, prefs.InApp[nt], "in-app should default on for %s", nt)
	}

	assert.False(t, prefs.Push[common.MentionType])
	assert.False(t, prefs.Push[common.ContentType])
	assert.True(t, prefs.Push[common.LikeType])

	assert.True(t, prefs.Email[common.AchievementType])
	assert.True(t, prefs.Email[common.SystemType])
	assert.True(t, prefs.Email[common.PaymentType])
	assert.True(t, prefs.Email[common.ContentType])
	assert.False(t, prefs.Email[common.LikeType])

	assert.Equal(t, common.FrequencyInstant, prefs.Frequency)
	assert.True(t, prefs.AutoDismiss.Enabled)
	assert.Equal(t, 300, prefs.AutoDismiss.DelaySeconds)
}

func TestPreferenceStore_GetReturnsCopy(t *testing.T) {
	store := NewPreferenceStore()

	got := store.Get()
	got.InApp[common.LikeType] = false

	assert.True(t, store.Get().InApp[common.LikeType])
}

func TestPreferenceStore_UpdateMergesShallow(t *testing.T) {
	store := NewPreferenceStore()

	freq := common.FrequencyDaily
	group := false
	updated, err := store.Update(common.PreferencePatch{
		Frequency:    &freq,
		GroupSimilar: &group,
	})
	require.NoError(t, err)

	assert.Equal(t, common.FrequencyDaily, updated.Frequency)
	assert.False(t, updated.GroupSimilar)
	// Untouched keys keep their values.
	assert.True(t, updated.ShowPreviews)
	assert.True(t, updated.InApp[common.LikeType])
}

func TestPreferenceStore_UpdateReplacesChannelMapWhole(t *testing.T) {
	store := NewPreferenceStore()

	updated, err := store.Update(common.PreferencePatch{
		Push: common.ChannelToggles{common.LikeType: true},
	})
	require.NoError(t, err)

	assert.True(t, updated.Push[common.LikeType])
	// Types missing from the replacement map are off.
	assert.False(t, updated.Push[common.CommentType])
	// Other channels untouched.
	assert.True(t, updated.InApp[common.CommentType])
}

func TestPreferenceStore_UpdateRejectsUnknownType(t *testing.T) {
	store := NewPreferenceStore()

	_, err := store.Update(common.PreferencePatch{
		InApp: common.ChannelToggles{"poke": true},
	})

	assert.ErrorIs(t, err, common.ErrInvalidPreference)
	// Store state unchanged on rejection.
	assert.True(t, store.Get().InApp[common.LikeType])
}

func TestPreferenceStore_UpdateRejectsUnknownFrequency(t *testing.T) {
	store := NewPreferenceStore()

	bad := common.Frequency("fortnightly")
	_, err := store.Update(common.PreferencePatch{Frequency: &bad})

	assert.ErrorIs(t, err, common.ErrInvalidPreference)
}

func TestPreferenceStore_UpdateAcceptsNegativeDelay(t *testing.T) {
	store := NewPreferenceStore()

	updated, err := store.Update(common.PreferencePatch{
		AutoDismiss: &common.AutoDismiss{Enabled: true, DelaySeconds: -10},
	})

	require.NoError(t, err)
	assert.Equal(t, -10, updated.AutoDismiss.DelaySeconds)
}

func TestPreferenceStore_ShouldDeliver(t *testing.T) {
	store := NewPreferenceStore()

	assert.True(t, store.ShouldDeliver(common.LikeType, common.ChannelInApp))
	assert.True(t, store.ShouldDeliver(common.LikeType, common.ChannelPush))
	assert.False(t, store.ShouldDeliver(common.MentionType, common.ChannelPush))
	assert.False(t, store.ShouldDeliver(common.LikeType, common.ChannelEmail))
	assert.True(t, store.ShouldDeliver(common.PaymentType, common.ChannelEmail))
	assert.False(t, store.ShouldDeliver(common.LikeType, common.Channel("sms")))
}
