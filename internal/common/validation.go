package common

import (
	"errors"
	"strings"
)

var validTypes = map[NotificationType]bool{
	LikeType: true, CommentType: true, FollowType: true, MentionType: true,
	ShareType: true, AchievementType: true, SystemType: true,
	PaymentType: true, ContentType: true,
}

var validCategories = map[Category]bool{
	CategorySocial: true, CategoryEngagement: true, CategoryBusiness: true,
	CategorySystem: true, CategoryContent: true,
}

var validPriorities = map[Priority]bool{
	PriorityHigh: true, PriorityMedium: true, PriorityLow: true,
}

var validFrequencies = map[Frequency]bool{
	FrequencyInstant: true, FrequencyHourly: true,
	FrequencyDaily: true, FrequencyWeekly: true,
}

var validActionTypes = map[ActionType]bool{
	ActionLike: true, ActionFollow: true, ActionReply: true,
	ActionShare: true, ActionView: true, ActionAccept: true,
	ActionDecline: true,
}

var validContentKinds = map[ContentKind]bool{
	ContentPost: true, ContentVideo: true,
	ContentImage: true, ContentArticle: true,
}

var validTiers = map[ActorTier]bool{
	TierBasic: true, TierPro: true, TierElite: true,
}

func ValidType(t NotificationType) bool {
	return validTypes[t]
}

func ValidCategory(c Category) bool {
	return validCategories[c]
}

func ValidPriority(p Priority) bool {
	return validPriorities[p]
}

func ValidFrequency(f Frequency) bool {
	return validFrequencies[f]
}

func ValidActionType(t ActionType) bool {
	return validActionTypes[t]
}

func ValidContentKind(k ContentKind) bool {
	return validContentKinds[k]
}

func ValidTier(t ActorTier) bool {
	return validTiers[t]
}

// ValidateSpec checks a producer-submitted spec before the engine
// turns it into a record. Action ids must be unique within the spec;
// duplicates are rejected rather than normalized.
func ValidateSpec(spec NotificationSpec) error {
	if strings.TrimSpace(spec.Title) == "" {
		return errors.New("title is required")
	}

	if strings.TrimSpace(spec.Message) == "" {
		return errors.New("message is required")
	}

	if !ValidType(spec.Type) {
		return errors.New("unknown notification type: " + string(spec.Type))
	}

	if !ValidCategory(spec.Category) {
		return errors.New("unknown category: " + string(spec.Category))
	}

	if !ValidPriority(spec.Priority) {
		return errors.New("unknown priority: " + string(spec.Priority))
	}

	if spec.Content != nil && !ValidContentKind(spec.Content.Type) {
		return errors.New("unknown content type: " + string(spec.Content.Type))
	}

	if spec.Actor != nil && !ValidTier(spec.Actor.Tier) {
		return errors.New("unknown actor tier: " + string(spec.Actor.Tier))
	}
	for _, actor := range spec.Actors {
		if !ValidTier(actor.Tier) {
			return errors.New("unknown actor tier: " + string(actor.Tier))
		}
	}

	seen := make(map[string]bool, len(spec.Actions))
	for _, action := range spec.Actions {
		if action.ID == "" {
			return errors.New("action id is required")
		}
		if seen[action.ID] {
			return errors.New("duplicate action id: " + action.ID)
		}
		if !ValidActionType(action.Type) {
			return errors.New("unknown action type: " + string(action.Type))
		}
		seen[action.ID] = true
	}

	return nil
}
