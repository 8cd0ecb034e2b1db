package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "case sensitive, order preserving", in: "Loving the #AI wave, #ai here too", want: []string{"#AI", "#ai"}},
		{name: "dedup", in: "#go #rust #go", want: []string{"#go", "#rust"}},
		{name: "underscore and digits", in: "#build_in_public #web3!", want: []string{"#build_in_public", "#web3"}},
		{name: "bare hash ignored", in: "# heading and C#", want: []string{}},
		{name: "non ascii stops token", in: "#café", want: []string{"#caf"}},
		{name: "empty", in: "", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractHashtags(tt.in))
		})
	}
}

func TestExtractHashtags_Idempotent(t *testing.T) {
	inputs := []string{
		"Loving the #AI wave, #ai here too",
		"#one #two #one #three_3",
		"nothing here",
	}
	for _, in := range inputs {
		first := ExtractHashtags(in)
		assert.Equal(t, first, ExtractHashtags(strings.Join(first, " ")))
	}
}

func TestParse(t *testing.T) {
	got := Parse("Great post.\n\n#one #two")
	assert.Equal(t, "Great post.", got.Body)
	assert.Equal(t, []string{"#one", "#two"}, got.Hashtags)
}

func TestParse_InlineFallback(t *testing.T) {
	got := Parse("Great post #inline only")
	assert.Equal(t, "Great post #inline only", got.Body)
	assert.Equal(t, []string{"#inline"}, got.Hashtags)
}

func TestParse_TrailerWithoutTagsFallsBackToWholeText(t *testing.T) {
	got := Parse("Shipping #evals today.\n\nWhat would you measure first?")
	assert.Equal(t, "Shipping #evals today.", got.Body)
	assert.Equal(t, []string{"#evals"}, got.Hashtags)
}

func TestParse_TrailerTagsWinOverBodyTags(t *testing.T) {
	got := Parse("Body mentions #inline.\n\n#trailer")
	assert.Equal(t, []string{"#trailer"}, got.Hashtags)
}

func TestParse_BlankLineWithWhitespace(t *testing.T) {
	got := Parse("  Hook line.\nSecond line.\n \t\n\n#a #b\n\nextra")
	assert.Equal(t, "Hook line.\nSecond line.", got.Body)
	assert.Equal(t, []string{"#a", "#b"}, got.Hashtags)
}

func TestParse_LeadingBlankLines(t *testing.T) {
	got := Parse("\n\nBody first.\n\n#x")
	assert.Equal(t, "Body first.", got.Body)
	assert.Equal(t, []string{"#x"}, got.Hashtags)
}

func TestParse_Empty(t *testing.T) {
	got := Parse("")
	assert.Equal(t, "", got.Body)
	assert.Empty(t, got.Hashtags)
	assert.NotNil(t, got.Hashtags)
}

func TestFallbacksReturnCopies(t *testing.T) {
	a := FallbackHashtags(true)
	a[0] = "#mutated"
	assert.Equal(t, []string{"#ai", "#product", "#buildinpublic"}, FallbackHashtags(true))
	assert.Equal(t, []string{"#ArtificialIntelligence", "#ProductManagement", "#BuildInPublic"}, FallbackHashtags(false))

	s := Suggestions()
	assert.Len(t, s, 3)
	s[0] = ""
	assert.NotEmpty(t, Suggestions()[0])
}
