package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGenerationOptions(t *testing.T) {
	def := DefaultGenerationOptions()
	assert.Equal(t, ToneProfessional, def.Tone)
	assert.Equal(t, GoalAwareness, def.Goal)
	assert.Equal(t, "AI engineers, PMs, founders", def.Audience)
	assert.True(t, def.IncludeEmojis)
	assert.False(t, def.MinifyHashtags)
	assert.Equal(t, LengthMedium, def.Length)
	assert.True(t, def.UseProfileContext)
}

func TestParseGoal_Spellings(t *testing.T) {
	for in, want := range map[string]Goal{
		"Lead Gen":       GoalLeadGen,
		"LeadGen":        GoalLeadGen,
		"lead_gen":       GoalLeadGen,
		"event-promo":    GoalEventPromo,
		"ProductLaunch":  GoalProductLaunch,
		" awareness ":    GoalAwareness,
		"Product Launch": GoalProductLaunch,
	} {
		got, err := ParseGoal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseGoal("Virality")
	assert.Error(t, err)
}

func TestParseToneAndLength(t *testing.T) {
	tone, err := ParseTone("storytelling")
	require.NoError(t, err)
	assert.Equal(t, ToneStorytelling, tone)

	length, err := ParseLength("SHORT")
	require.NoError(t, err)
	assert.Equal(t, LengthShort, length)

	_, err = ParseTone("Snarky")
	assert.Error(t, err)
	_, err = ParseLength("Tweet")
	assert.Error(t, err)
}

func TestGenerationOptions_Normalize(t *testing.T) {
	got, err := GenerationOptions{Audience: "devs", MinifyHashtags: true}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, ToneProfessional, got.Tone)
	assert.Equal(t, GoalAwareness, got.Goal)
	assert.Equal(t, LengthMedium, got.Length)
	assert.Equal(t, "devs", got.Audience)
	assert.True(t, got.MinifyHashtags)

	got, err = GenerationOptions{Tone: "bold", Goal: "EventPromo", Length: "long"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, ToneBold, got.Tone)
	assert.Equal(t, GoalEventPromo, got.Goal)
	assert.Equal(t, LengthLong, got.Length)

	_, err = GenerationOptions{Tone: "Angry"}.Normalize()
	assert.Error(t, err)
}

func TestParseWorkspaceKey(t *testing.T) {
	for _, k := range []WorkspaceKey{WorkspaceKeyMessages, WorkspaceKeyProfile, WorkspaceKeyOptions, WorkspaceKeyDraft} {
		got, err := ParseWorkspaceKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseWorkspaceKey("secrets")
	assert.Error(t, err)
	assert.Equal(t, []WorkspaceKey{WorkspaceKeyMessages, WorkspaceKeyDraft}, ResetKeys)
}
