package post

import (
	"regexp"
	"strings"
)

var (
	hashtagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)
	// blankLineRun 第一段连续空行（允许行内空白）
	blankLineRun = regexp.MustCompile(`\n\s*\n`)
)

// Parsed 模型回复解析结果
type Parsed struct {
	Body     string
	Hashtags []string
}

// ExtractHashtags 按首次出现顺序返回去重后的话题标签，大小写敏感
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Parse 在第一段空行处把回复切成正文与尾部。
// 话题标签优先从尾部提取；尾部没有时回退到整段文本，覆盖模型把标签写进正文的情况。
func Parse(raw string) Parsed {
	// 前导空行不算分隔，否则正文会是空串
	text := strings.TrimLeft(raw, " \t\r\n")

	body, rest := text, ""
	if loc := blankLineRun.FindStringIndex(text); loc != nil {
		body, rest = text[:loc[0]], text[loc[1]:]
	}

	tags := ExtractHashtags(rest)
	if len(tags) == 0 {
		tags = ExtractHashtags(raw)
	}
	return Parsed{
		Body:     strings.TrimSpace(body),
		Hashtags: tags,
	}
}
