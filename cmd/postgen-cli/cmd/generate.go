package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"postcraft/internal/application/post"
	"postcraft/internal/config"
	"postcraft/internal/domain/entity"
	"postcraft/internal/infrastructure/llm"
	einoobs "postcraft/internal/observability/eino"
	apperrors "postcraft/pkg/errors"
	"postcraft/pkg/logger"
)

type generator interface {
	Generate(ctx context.Context, conv *entity.Conversation, opts entity.GenerationOptions, profile *entity.ProfileContext) (*entity.GeneratedPost, error)
}

// newGenerator 由配置构建生成服务，测试中替换
var newGenerator = func(ctx context.Context, cfg *config.Config) (generator, error) {
	einoobs.Init()
	m, err := llm.NewChatModel(ctx, &cfg.LLM)
	if err != nil {
		return nil, err
	}
	return post.NewService(llm.NewChatInvoker(m, &cfg.LLM)), nil
}

type generateFlags struct {
	topic    string
	tone     string
	goal     string
	audience string
	emojis   bool
	minify   bool
	length   string
	asJSON   bool

	profileName     string
	profileHeadline string
	profileTitle    string
	profileCompany  string
	profileSkills   []string
	noProfile       bool
}

func newGenerateCmd() *cobra.Command {
	def := entity.DefaultGenerationOptions()
	f := &generateFlags{}

	c := &cobra.Command{
		Use:   "generate",
		Short: "Draft a post for a topic",
		Example: `  postgen generate --topic "Shipping our eval harness" --tone Bold --length Short
  postgen generate --topic "We're hiring" --goal "Lead Gen" --minify --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("config-dir")
			return runGenerate(cmd, dir, f)
		},
	}

	fs := c.Flags()
	fs.StringVarP(&f.topic, "topic", "t", "", "post topic (required)")
	fs.StringVar(&f.tone, "tone", string(def.Tone), "Professional|Friendly|Bold|Inspiring|Analytical|Storytelling")
	fs.StringVar(&f.goal, "goal", string(def.Goal), "Awareness|Engagement|Lead Gen|Hiring|Event Promo|Product Launch")
	fs.StringVar(&f.audience, "audience", def.Audience, "target audience")
	fs.BoolVar(&f.emojis, "emojis", def.IncludeEmojis, "allow a few tasteful emojis")
	fs.BoolVar(&f.minify, "minify", def.MinifyHashtags, "prefer short hashtags")
	fs.StringVar(&f.length, "length", string(def.Length), "Short|Medium|Long")
	fs.BoolVar(&f.asJSON, "json", false, "print the full result as JSON")
	fs.StringVar(&f.profileName, "profile-name", "", "author name; enables profile context")
	fs.StringVar(&f.profileHeadline, "profile-headline", "", "author headline")
	fs.StringVar(&f.profileTitle, "profile-title", "", "author title")
	fs.StringVar(&f.profileCompany, "profile-company", "", "author company")
	fs.StringSliceVar(&f.profileSkills, "profile-skills", nil, "comma separated skills")
	fs.BoolVar(&f.noProfile, "no-profile", false, "do not personalize with the profile")
	_ = c.MarkFlagRequired("topic")

	return c
}

func runGenerate(cmd *cobra.Command, configDir string, f *generateFlags) error {
	if strings.TrimSpace(f.topic) == "" {
		return fmt.Errorf("--topic must not be empty")
	}

	opts, err := entity.GenerationOptions{
		Tone:              entity.Tone(f.tone),
		Goal:              entity.Goal(f.goal),
		Audience:          f.audience,
		IncludeEmojis:     f.emojis,
		MinifyHashtags:    f.minify,
		Length:            entity.Length(f.length),
		UseProfileContext: !f.noProfile,
	}.Normalize()
	if err != nil {
		return err
	}

	var profile *entity.ProfileContext
	if name := strings.TrimSpace(f.profileName); name != "" {
		profile = &entity.ProfileContext{
			Name:     name,
			Headline: f.profileHeadline,
			Title:    f.profileTitle,
			Company:  f.profileCompany,
			Skills:   f.profileSkills,
		}
	}

	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.InitWithWriter(cmd.ErrOrStderr(), cfg.Observability.Logging.Level, "text")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.LLM.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LLM.Timeout)
		defer cancel()
	}

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	conv := entity.NewConversation([]entity.ChatMessage{entity.NewChatMessage(entity.RoleUser, f.topic)})
	result, err := gen.Generate(ctx, conv, opts, profile)
	if err != nil {
		if appErr := apperrors.AsAppError(err); appErr != nil && appErr.Detail != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), appErr.Detail)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	fmt.Fprintln(out, result.DraftText())
	if len(result.Suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	return nil
}
