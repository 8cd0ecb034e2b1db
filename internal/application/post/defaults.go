package post

// FailureNotice 生成失败时界面展示的通用可重试提示
const FailureNotice = "Sorry — generation failed. Please try again."

var (
	// minimalFallbackHashtags minifyHashtags=true 且模型未给出标签时使用
	minimalFallbackHashtags = []string{"#ai", "#product", "#buildinpublic"}
	// descriptiveFallbackHashtags minifyHashtags=false 且模型未给出标签时使用
	descriptiveFallbackHashtags = []string{"#ArtificialIntelligence", "#ProductManagement", "#BuildInPublic"}

	// staticSuggestions 固定的改进建议，与生成内容无关
	staticSuggestions = []string{
		"Tighten the first sentence for a stronger hook",
		"Add a concrete outcome or metric",
		"End with a question to invite comments",
	}
)

// FallbackHashtags 返回兜底标签的副本
func FallbackHashtags(minify bool) []string {
	if minify {
		return clone(minimalFallbackHashtags)
	}
	return clone(descriptiveFallbackHashtags)
}

// Suggestions 返回固定建议的副本
func Suggestions() []string {
	return clone(staticSuggestions)
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
