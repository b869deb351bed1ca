package common

import (
	"time"
)

type NotificationType string

const (
	LikeType        NotificationType = "like"
	CommentType     NotificationType = "comment"
	FollowType      NotificationType = "follow"
	MentionType     NotificationType = "mention"
	ShareType       NotificationType = "share"
	AchievementType NotificationType = "achievement"
	SystemType      NotificationType = "system"
	PaymentType     NotificationType = "payment"
	ContentType     NotificationType = "content"
)

// NotificationTypes lists every valid type, in declaration order.
var NotificationTypes = []NotificationType{
	LikeType, CommentType, FollowType, MentionType, ShareType,
	AchievementType, SystemType, PaymentType, ContentType,
}

type Category string

const (
	CategorySocial     Category = "social"
	CategoryEngagement Category = "engagement"
	CategoryBusiness   Category = "business"
	CategorySystem     Category = "system"
	CategoryContent    Category = "content"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type ActionType string

const (
	ActionLike    ActionType = "like"
	ActionFollow  ActionType = "follow"
	ActionReply   ActionType = "reply"
	ActionShare   ActionType = "share"
	ActionView    ActionType = "view"
	ActionAccept  ActionType = "accept"
	ActionDecline ActionType = "decline"
)

type ContentKind string

const (
	ContentPost    ContentKind = "post"
	ContentVideo   ContentKind = "video"
	ContentImage   ContentKind = "image"
	ContentArticle ContentKind = "article"
)

type ActorTier string

const (
	TierBasic ActorTier = "basic"
	TierPro   ActorTier = "pro"
	TierElite ActorTier = "elite"
)

type Channel string

const (
	ChannelInApp Channel = "in_app"
	ChannelPush  Channel = "push"
	ChannelEmail Channel = "email"
)

type Frequency string

const (
	FrequencyInstant Frequency = "instant"
	FrequencyHourly  Frequency = "hourly"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
)

type Actor struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar,omitempty"`
	Verified bool      `json:"verified"`
	Tier     ActorTier `json:"tier"`
}

type ContentRef struct {
	Type      ContentKind `json:"type"`
	Preview   string      `json:"preview,omitempty"`
	Thumbnail string      `json:"thumbnail,omitempty"`
}

type Action struct {
	ID      string     `json:"id"`
	Type    ActionType `json:"type"`
	Label   string     `json:"label"`
	Primary bool       `json:"primary,omitempty"`
}

type Metadata struct {
	Count       int     `json:"count,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Achievement string  `json:"achievement,omitempty"`
	ContentID   string  `json:"content_id,omitempty"`
	RelatedURL  string  `json:"related_url,omitempty"`
}

// NotificationRecord is a single trackable event with lifecycle state.
// ID and Timestamp never change after creation; Dismissed implies Read.
type NotificationRecord struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Category  Category         `json:"category"`
	Priority  Priority         `json:"priority"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Content   *ContentRef      `json:"content,omitempty"`
	Actor     *Actor           `json:"actor,omitempty"`
	Actors    []Actor          `json:"actors,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
	Dismissed bool             `json:"dismissed"`
	Actions   []Action         `json:"actions,omitempty"`
	Metadata  *Metadata        `json:"metadata,omitempty"`
}

// NotificationSpec is what producers submit; the engine assigns
// ID, Timestamp and the lifecycle flags on ingestion.
type NotificationSpec struct {
	Type     NotificationType `json:"type"`
	Category Category         `json:"category"`
	Priority Priority         `json:"priority"`
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Content  *ContentRef      `json:"content,omitempty"`
	Actor    *Actor           `json:"actor,omitempty"`
	Actors   []Actor          `json:"actors,omitempty"`
	Actions  []Action         `json:"actions,omitempty"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}

type CategoryFilter string

const (
	FilterCategoryAll        CategoryFilter = "all"
	FilterCategorySocial     CategoryFilter = "social"
	FilterCategoryEngagement CategoryFilter = "engagement"
	FilterCategoryBusiness   CategoryFilter = "business"
	FilterCategorySystem     CategoryFilter = "system"
	FilterCategoryContent    CategoryFilter = "content"
)

type PriorityFilter string

const (
	FilterPriorityAll    PriorityFilter = "all"
	FilterPriorityHigh   PriorityFilter = "high"
	FilterPriorityMedium PriorityFilter = "medium"
	FilterPriorityLow    PriorityFilter = "low"
)

type ReadFilter string

const (
	FilterReadAll    ReadFilter = "all"
	FilterReadOnly   ReadFilter = "read"
	FilterUnreadOnly ReadFilter = "unread"
)

type DateRangeFilter string

const (
	FilterDateAll   DateRangeFilter = "all"
	FilterDateToday DateRangeFilter = "today"
	FilterDateWeek  DateRangeFilter = "week"
	FilterDateMonth DateRangeFilter = "month"
)

type FilterSpec struct {
	Category  CategoryFilter  `json:"category"`
	Priority  PriorityFilter  `json:"priority"`
	Read      ReadFilter      `json:"read"`
	DateRange DateRangeFilter `json:"date_range"`
}

// DefaultFilterSpec returns the all-pass filter state.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Category:  FilterCategoryAll,
		Priority:  FilterPriorityAll,
		Read:      FilterReadAll,
		DateRange: FilterDateAll,
	}
}

// FilterPatch carries a partial filter update; nil fields keep the
// current value.
type FilterPatch struct {
	Category  *CategoryFilter  `json:"category,omitempty"`
	Priority  *PriorityFilter  `json:"priority,omitempty"`
	Read      *ReadFilter      `json:"read,omitempty"`
	DateRange *DateRangeFilter `json:"date_range,omitempty"`
}

type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type AutoDismiss struct {
	Enabled      bool `json:"enabled"`
	DelaySeconds int  `json:"delay_seconds"`
}

type ChannelToggles map[NotificationType]bool

// PreferenceSet holds per-channel delivery toggles plus global settings.
type PreferenceSet struct {
	InApp        ChannelToggles `json:"in_app"`
	Push         ChannelToggles `json:"push"`
	Email        ChannelToggles `json:"email"`
	Frequency    Frequency      `json:"frequency"`
	GroupSimilar bool           `json:"group_similar"`
	ShowPreviews bool           `json:"show_previews"`
	QuietHours   QuietHours     `json:"quiet_hours"`
	AutoDismiss  AutoDismiss    `json:"auto_dismiss"`
}

// PreferencePatch is a partial PreferenceSet. Merge is shallow per
// top-level key: a non-nil channel map replaces the stored one whole.
type PreferencePatch struct {
	InApp        ChannelToggles `json:"in_app,omitempty"`
	Push         ChannelToggles `json:"push,omitempty"`
	Email        ChannelToggles `json:"email,omitempty"`
	Frequency    *Frequency     `json:"frequency,omitempty"`
	GroupSimilar *bool          `json:"group_similar,omitempty"`
	ShowPreviews *bool          `json:"show_previews,omitempty"`
	QuietHours   *QuietHours    `json:"quiet_hours,omitempty"`
	AutoDismiss  *AutoDismiss   `json:"auto_dismiss,omitempty"`
}
