package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSpec() NotificationSpec {
	return NotificationSpec{
		Type:     LikeType,
		Category: CategorySocial,
		Priority: PriorityLow,
		Title:    "New like",
		Message:  "Emma liked your post",
	}
}

func TestValidateSpec_Valid(t *testing.T) {
	assert.NoError(t, ValidateSpec(validSpec()))
}

func TestValidateSpec_RequiredFields(t *testing.T) {
	spec := validSpec()
	spec.Title = "  "
	assert.Error(t, ValidateSpec(spec))

	spec = validSpec()
	spec.Message = ""
	assert.Error(t, ValidateSpec(spec))
}

func TestValidateSpec_Enums(t *testing.T) {
	spec := validSpec()
	spec.Type = "poke"
	assert.Error(t, ValidateSpec(spec))

	spec = validSpec()
	spec.Category = "misc"
	assert.Error(t, ValidateSpec(spec))

	spec = validSpec()
	spec.Priority = "urgent"
	assert.Error(t, ValidateSpec(spec))
}

func TestValidateSpec_NestedEnums(t *testing.T) {
	spec := validSpec()
	spec.Actions = []Action{{ID: "a1", Type: "bogus-type", Label: "Do"}}
	assert.ErrorContains(t, ValidateSpec(spec), "unknown action type")

	spec = validSpec()
	spec.Content = &ContentRef{Type: "hologram"}
	assert.ErrorContains(t, ValidateSpec(spec), "unknown content type")

	spec = validSpec()
	spec.Actor = &Actor{ID: "u-1", Name: "Emma Wilson", Tier: "platinum"}
	assert.ErrorContains(t, ValidateSpec(spec), "unknown actor tier")

	spec = validSpec()
	spec.Actors = []Actor{
		{ID: "u-1", Name: "Emma Wilson", Tier: TierPro},
		{ID: "u-2", Name: "Marcus Chen", Tier: "platinum"},
	}
	assert.ErrorContains(t, ValidateSpec(spec), "unknown actor tier")
}

func TestValidateSpec_NestedEnumsValid(t *testing.T) {
	spec := validSpec()
	spec.Content = &ContentRef{Type: ContentVideo, Preview: "clip"}
	spec.Actor = &Actor{ID: "u-1", Name: "Emma Wilson", Tier: TierElite}
	spec.Actions = []Action{{ID: "view", Type: ActionView, Label: "View"}}

	assert.NoError(t, ValidateSpec(spec))
}

func TestValidateSpec_DuplicateActionIDs(t *testing.T) {
	spec := validSpec()
	spec.Actions = []Action{
		{ID: "a1", Type: ActionLike, Label: "Like"},
		{ID: "a1", Type: ActionView, Label: "View"},
	}

	err := ValidateSpec(spec)
	assert.ErrorContains(t, err, "duplicate action id")
}

func TestValidateSpec_EmptyActionID(t *testing.T) {
	spec := validSpec()
	spec.Actions = []Action{{ID: "", Type: ActionLike, Label: "Like"}}

	assert.Error(t, ValidateSpec(spec))
}

func TestValidEnumHelpers(t *testing.T) {
	assert.True(t, ValidType(CommentType))
	assert.False(t, ValidType("poke"))
	assert.True(t, ValidCategory(CategoryBusiness))
	assert.False(t, ValidCategory("misc"))
	assert.True(t, ValidPriority(PriorityHigh))
	assert.False(t, ValidPriority("urgent"))
	assert.True(t, ValidFrequency(FrequencyDaily))
	assert.False(t, ValidFrequency("monthly"))
	assert.True(t, ValidActionType(ActionAccept))
	assert.False(t, ValidActionType("bogus-type"))
	assert.True(t, ValidContentKind(ContentArticle))
	assert.False(t, ValidContentKind("hologram"))
	assert.True(t, ValidTier(TierBasic))
	assert.False(t, ValidTier("platinum"))
}
