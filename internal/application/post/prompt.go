package post

import (
	"strings"

	"postcraft/internal/domain/entity"
)

const styleGuidance = "Write in natural, non-repetitive language. Keep it scannable. Always include a clear CTA when appropriate."

// lengthBands 目标字数区间，仅作为提示词中的指引，不做程序校验
var lengthBands = map[entity.Length]string{
	entity.LengthShort:  "50–90 words",
	entity.LengthMedium: "110–160 words",
	entity.LengthLong:   "180–260 words",
}

// BuildSystemPrompt 渲染系统指令：人设行、可选的资料行、固定风格指引。
// 纯函数，不会失败；缺失的可选字段被省略或渲染为空串。
func BuildSystemPrompt(opts entity.GenerationOptions, profile *entity.ProfileContext) string {
	emojis := "no emojis"
	if opts.IncludeEmojis {
		emojis = "tasteful emojis"
	}
	density := "descriptive"
	if opts.MinifyHashtags {
		density = "minimal"
	}

	var b strings.Builder
	b.WriteString("You are an expert LinkedIn copywriter who writes crisp, high-signal posts with strong hooks, ")
	b.WriteString(emojis)
	b.WriteString(", and ")
	b.WriteString(density)
	b.WriteString(" hashtags. Match the tone: ")
	b.WriteString(string(opts.Tone))
	b.WriteString(". Optimize for the goal: ")
	b.WriteString(string(opts.Goal))
	b.WriteString(". Target audience: ")
	b.WriteString(opts.Audience)
	b.WriteString(".")

	if opts.UseProfileContext && profile != nil {
		b.WriteString("\n")
		b.WriteString(profileLine(profile))
	}

	b.WriteString("\n")
	b.WriteString(styleGuidance)
	return b.String()
}

func profileLine(p *entity.ProfileContext) string {
	var b strings.Builder
	b.WriteString("User profile: ")
	b.WriteString(p.Name)
	if strings.TrimSpace(p.Title) != "" {
		b.WriteString(", ")
		b.WriteString(p.Title)
	}
	if strings.TrimSpace(p.Company) != "" {
		b.WriteString(" @ ")
		b.WriteString(p.Company)
	}
	b.WriteString(". Headline: ")
	b.WriteString(p.Headline)
	b.WriteString(". Skills: ")
	b.WriteString(strings.Join(p.Skills, ", "))
	b.WriteString(".")
	return b.String()
}

// BuildUserPrompt 渲染用户指令。主题取最近一条 user 消息，没有时为空串。
func BuildUserPrompt(conv *entity.Conversation, opts entity.GenerationOptions) string {
	var b strings.Builder
	b.WriteString("Draft a LinkedIn post (")
	b.WriteString(LengthBand(opts.Length))
	b.WriteString("). Topic: ")
	b.WriteString(conv.Topic())
	b.WriteString(". Provide the post body only, no preface. Then propose 3–6 hashtags.")
	return b.String()
}

// LengthBand 返回篇幅对应的字数区间；未知取值按 Long 处理
func LengthBand(l entity.Length) string {
	if band, ok := lengthBands[l]; ok {
		return band
	}
	return lengthBands[entity.LengthLong]
}
