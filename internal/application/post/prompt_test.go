package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"postcraft/internal/domain/entity"
)

func testProfile() *entity.ProfileContext {
	return &entity.ProfileContext{
		Name:     "Ada Lovelace",
		Headline: "Building eval tooling",
		Title:    "Staff Engineer",
		Company:  "Analytical Engines",
		Skills:   []string{"Go", "LLMs", "Evaluation"},
	}
}

func TestBuildSystemPrompt_ContainsEveryOptionLabel(t *testing.T) {
	for _, tone := range []entity.Tone{entity.ToneProfessional, entity.ToneFriendly, entity.ToneBold, entity.ToneInspiring, entity.ToneAnalytical, entity.ToneStorytelling} {
		for _, goal := range []entity.Goal{entity.GoalAwareness, entity.GoalEngagement, entity.GoalLeadGen, entity.GoalHiring, entity.GoalEventPromo, entity.GoalProductLaunch} {
			opts := entity.DefaultGenerationOptions()
			opts.Tone = tone
			opts.Goal = goal
			opts.Audience = "platform teams & SREs"

			got := BuildSystemPrompt(opts, nil)
			assert.Contains(t, got, "Match the tone: "+string(tone)+".")
			assert.Contains(t, got, "Optimize for the goal: "+string(goal)+".")
			assert.Contains(t, got, "Target audience: platform teams & SREs.")
		}
	}
}

func TestBuildSystemPrompt_EmojiAndHashtagDensity(t *testing.T) {
	opts := entity.DefaultGenerationOptions()

	opts.IncludeEmojis, opts.MinifyHashtags = true, false
	got := BuildSystemPrompt(opts, nil)
	assert.Contains(t, got, "tasteful emojis, and descriptive hashtags")

	opts.IncludeEmojis, opts.MinifyHashtags = false, true
	got = BuildSystemPrompt(opts, nil)
	assert.Contains(t, got, "no emojis, and minimal hashtags")
}

func TestBuildSystemPrompt_ProfileLine(t *testing.T) {
	opts := entity.DefaultGenerationOptions()
	opts.UseProfileContext = true

	got := BuildSystemPrompt(opts, testProfile())
	assert.Contains(t, got, "User profile: Ada Lovelace, Staff Engineer @ Analytical Engines. Headline: Building eval tooling. Skills: Go, LLMs, Evaluation.")
	assert.True(t, strings.HasSuffix(got, styleGuidance))
}

func TestBuildSystemPrompt_ProfileDisabledOmitsEveryField(t *testing.T) {
	opts := entity.DefaultGenerationOptions()
	opts.UseProfileContext = false
	p := testProfile()

	got := BuildSystemPrompt(opts, p)
	for _, field := range []string{p.Name, p.Headline, p.Title, p.Company, "Go, LLMs", "User profile"} {
		assert.NotContains(t, got, field)
	}
	assert.Equal(t, 2, strings.Count(got, "\n")+1, "persona line and style guidance only")
}

func TestBuildSystemPrompt_NoProfileSupplied(t *testing.T) {
	opts := entity.DefaultGenerationOptions()
	opts.UseProfileContext = true

	got := BuildSystemPrompt(opts, nil)
	assert.NotContains(t, got, "User profile")
}

func TestBuildSystemPrompt_SparseProfileNeverRendersPlaceholders(t *testing.T) {
	opts := entity.DefaultGenerationOptions()
	opts.Audience = ""

	got := BuildSystemPrompt(opts, &entity.ProfileContext{Name: "Ada"})
	assert.Contains(t, got, "User profile: Ada. Headline: . Skills: .")
	for _, bad := range []string{"undefined", "null", "<nil>", "[]"} {
		assert.NotContains(t, got, bad)
	}
}

func TestBuildSystemPrompt_Deterministic(t *testing.T) {
	opts := entity.DefaultGenerationOptions()
	assert.Equal(t, BuildSystemPrompt(opts, testProfile()), BuildSystemPrompt(opts, testProfile()))
}

func TestBuildUserPrompt(t *testing.T) {
	conv := entity.NewConversation([]entity.ChatMessage{
		entity.NewChatMessage(entity.RoleUser, "first topic"),
		entity.NewChatMessage(entity.RoleAssistant, "a draft"),
		entity.NewChatMessage(entity.RoleUser, "Launching our agent SDK"),
		entity.NewChatMessage(entity.RoleAssistant, "another draft"),
	})
	opts := entity.DefaultGenerationOptions()
	opts.Length = entity.LengthShort

	got := BuildUserPrompt(conv, opts)
	assert.Equal(t, "Draft a LinkedIn post (50–90 words). Topic: Launching our agent SDK. Provide the post body only, no preface. Then propose 3–6 hashtags.", got)
}

func TestBuildUserPrompt_NoUserMessage(t *testing.T) {
	opts := entity.DefaultGenerationOptions()

	for _, conv := range []*entity.Conversation{
		nil,
		entity.NewConversation(nil),
		entity.NewConversation([]entity.ChatMessage{entity.NewChatMessage(entity.RoleAssistant, "hi")}),
	} {
		got := BuildUserPrompt(conv, opts)
		assert.Contains(t, got, "Topic: . Provide")
		assert.NotContains(t, got, "<nil>")
	}
}

func TestLengthBand(t *testing.T) {
	assert.Equal(t, "50–90 words", LengthBand(entity.LengthShort))
	assert.Equal(t, "110–160 words", LengthBand(entity.LengthMedium))
	assert.Equal(t, "180–260 words", LengthBand(entity.LengthLong))
	assert.Equal(t, "180–260 words", LengthBand(entity.Length("Epic")))
}
