package notif

import (
	"fmt"
	"sync"

	"notifeed/internal/common"
)

// PreferenceStore holds the per-channel toggles and global settings.
// Update merges a partial patch shallowly per top-level key.
type PreferenceStore struct {
	mu    sync.RWMutex
	prefs common.PreferenceSet
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{
		prefs: DefaultPreferences(),
	}
}

// DefaultPreferences builds the out-of-the-box preference set. In-app
// is on for every type; push skips mentions and content digests; email
// is opt-in for the types people actually want in their inbox.
func DefaultPreferences() common.PreferenceSet {
	inApp := make(common.ChannelToggles, len(common.NotificationTypes))
	push := make(common.ChannelToggles, len(common.NotificationTypes))
	email := make(common.ChannelToggles, len(common.NotificationTypes))

	for _, t := range common.NotificationTypes {
		inApp[t] = true
		push[t] = t != common.MentionType && t != common.ContentType
		email[t] = t == common.AchievementType || t == common.SystemType ||
			t == common.PaymentType || t == common.ContentType
	}

	return common.PreferenceSet{
		InApp:        inApp,
		Push:         push,
		Email:        email,
		Frequency:    common.FrequencyInstant,
		GroupSimilar: true,
		ShowPreviews: true,
		QuietHours: common.QuietHours{
			Enabled: false,
			Start:   "22:00",
			End:     "08:00",
		},
		AutoDismiss: common.AutoDismiss{
			Enabled:      true,
			DelaySeconds: 300,
		},
	}
}

// Get returns a copy; the channel maps are cloned so callers cannot
// mutate the stored set.
func (p *PreferenceStore) Get() common.PreferenceSet {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clonePreferences(p.prefs)
}

// Update merges patch into the current set and returns the result.
// A non-nil channel map replaces the stored map whole. Unknown
// notification types or frequencies are rejected with
// ErrInvalidPreference; a negative auto-dismiss delay is accepted and
// left for the sweeper to clamp.
func (p *PreferenceStore) Update(patch common.PreferencePatch) (common.PreferenceSet, error) {
	if err := validatePatch(patch); err != nil {
		return common.PreferenceSet{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if patch.InApp != nil {
		p.prefs.InApp = cloneToggles(patch.InApp)
	}
	if patch.Push != nil {
		p.prefs.Push = cloneToggles(patch.Push)
	}
	if patch.Email != nil {
		p.prefs.Email = cloneToggles(patch.Email)
	}
	if patch.Frequency != nil {
		p.prefs.Frequency = *patch.Frequency
	}
	if patch.GroupSimilar != nil {
		p.prefs.GroupSimilar = *patch.GroupSimilar
	}
	if patch.ShowPreviews != nil {
		p.prefs.ShowPreviews = *patch.ShowPreviews
	}
	if patch.QuietHours != nil {
		p.prefs.QuietHours = *patch.QuietHours
	}
	if patch.AutoDismiss != nil {
		p.prefs.AutoDismiss = *patch.AutoDismiss
	}

	return clonePreferences(p.prefs), nil
}

// ShouldDeliver is the channel gating policy point. A type missing
// from a channel map counts as toggled off.
func (p *PreferenceStore) ShouldDeliver(t common.NotificationType, channel common.Channel) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch channel {
	case common.ChannelInApp:
		return p.prefs.InApp[t]
	case common.ChannelPush:
		return p.prefs.Push[t]
	case common.ChannelEmail:
		return p.prefs.Email[t]
	default:
		return false
	}
}

func validatePatch(patch common.PreferencePatch) error {
	for _, toggles := range []common.ChannelToggles{patch.InApp, patch.Push, patch.Email} {
		for t := range toggles {
			if !common.ValidType(t) {
				return fmt.Errorf("%w: unknown notification type %q", common.ErrInvalidPreference, t)
			}
		}
	}

	if patch.Frequency != nil && !common.ValidFrequency(*patch.Frequency) {
		return fmt.Errorf("%w: unknown frequency %q", common.ErrInvalidPreference, *patch.Frequency)
	}

	return nil
}

func clonePreferences(prefs common.PreferenceSet) common.PreferenceSet {
	out := prefs
	out.InApp = cloneToggles(prefs.InApp)
	out.Push = cloneToggles(prefs.Push)
	out.Email = cloneToggles(prefs.Email)
	return out
}

func cloneToggles(toggles common.ChannelToggles) common.ChannelToggles {
	out := make(common.ChannelToggles, len(toggles))
	for t, enabled := range toggles {
		out[t] = enabled
	}
	return out
}
