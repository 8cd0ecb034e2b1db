package entity

// ProfileContext 用户资料上下文，只读输入
type ProfileContext struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline,omitempty"`
	Title    string   `json:"title,omitempty"`
	Company  string   `json:"company,omitempty"`
	Industry string   `json:"industry,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	URL      string   `json:"url,omitempty"`
}
