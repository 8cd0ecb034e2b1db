package entity

import (
	"fmt"
	"strings"
)

// Tone 语气
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneBold         Tone = "Bold"
	ToneInspiring    Tone = "Inspiring"
	ToneAnalytical   Tone = "Analytical"
	ToneStorytelling Tone = "Storytelling"
)

// Goal 帖子目标，取值即渲染到提示词中的标签
type Goal string

const (
	GoalAwareness     Goal = "Awareness"
	GoalEngagement    Goal = "Engagement"
	GoalLeadGen       Goal = "Lead Gen"
	GoalHiring        Goal = "Hiring"
	GoalEventPromo    Goal = "Event Promo"
	GoalProductLaunch Goal = "Product Launch"
)

// Length 篇幅
type Length string

const (
	LengthShort  Length = "Short"
	LengthMedium Length = "Medium"
	LengthLong   Length = "Long"
)

var (
	allTones   = []Tone{ToneProfessional, ToneFriendly, ToneBold, ToneInspiring, ToneAnalytical, ToneStorytelling}
	allGoals   = []Goal{GoalAwareness, GoalEngagement, GoalLeadGen, GoalHiring, GoalEventPromo, GoalProductLaunch}
	allLengths = []Length{LengthShort, LengthMedium, LengthLong}
)

// GenerationOptions 风格选项，完全决定提示词形态
type GenerationOptions struct {
	Tone              Tone   `json:"tone"`
	Goal              Goal   `json:"goal"`
	Audience          string `json:"audience"`
	IncludeEmojis     bool   `json:"includeEmojis"`
	MinifyHashtags    bool   `json:"minifyHashtags"`
	Length            Length `json:"length"`
	UseProfileContext bool   `json:"useProfileContext"`
}

// DefaultGenerationOptions 与前端初始选项一致
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		Tone:              ToneProfessional,
		Goal:              GoalAwareness,
		Audience:          "AI engineers, PMs, founders",
		IncludeEmojis:     true,
		MinifyHashtags:    false,
		Length:            LengthMedium,
		UseProfileContext: true,
	}
}

// ParseTone 解析语气，大小写不敏感
func ParseTone(s string) (Tone, error) {
	key := normalizeLabel(s)
	for _, t := range allTones {
		if normalizeLabel(string(t)) == key {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// ParseGoal 解析目标，接受 "Lead Gen" 与 "LeadGen" 两种写法
func ParseGoal(s string) (Goal, error) {
	key := normalizeLabel(s)
	for _, g := range allGoals {
		if normalizeLabel(string(g)) == key {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// ParseLength 解析篇幅
func ParseLength(s string) (Length, error) {
	key := normalizeLabel(s)
	for _, l := range allLengths {
		if normalizeLabel(string(l)) == key {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown length %q", s)
}

// Normalize 填充空枚举字段的默认值并规范化写法
func (o GenerationOptions) Normalize() (GenerationOptions, error) {
	def := DefaultGenerationOptions()
	var err error

	if strings.TrimSpace(string(o.Tone)) == "" {
		o.Tone = def.Tone
	} else if o.Tone, err = ParseTone(string(o.Tone)); err != nil {
		return o, err
	}
	if strings.TrimSpace(string(o.Goal)) == "" {
		o.Goal = def.Goal
	} else if o.Goal, err = ParseGoal(string(o.Goal)); err != nil {
		return o, err
	}
	if strings.TrimSpace(string(o.Length)) == "" {
		o.Length = def.Length
	} else if o.Length, err = ParseLength(string(o.Length)); err != nil {
		return o, err
	}
	return o, nil
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, "-", "")
}
