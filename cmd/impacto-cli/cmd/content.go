package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/impacto/site/cmd/impacto-cli/internal/output"
	"github.com/impacto/site/internal/content"
	"github.com/impacto/site/internal/logging"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the content collections",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Load every post and site.yaml and report all problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent(cmd, args)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), store)
		return nil
	},
}

var postsFormat string

var contentPostsCmd = &cobra.Command{
	Use:   "posts [dir]",
	Short: "List blog posts, drafts included",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(postsFormat)
		if err != nil {
			return err
		}
		store, err := loadContent(cmd, args)
		if err != nil {
			return err
		}
		return printPosts(cmd.OutOrStdout(), store.AllPosts(), format)
	},
}

func init() {
	contentPostsCmd.Flags().StringVarP(&postsFormat, "output", "o", "table", "output format (table|json)")
	contentCmd.AddCommand(contentValidateCmd, contentPostsCmd)
	rootCmd.AddCommand(contentCmd)
}

// loadContent opens the directory named by args, falling back to the
// content-dir setting and then to the embedded defaults.
func loadContent(cmd *cobra.Command, args []string) (*content.Store, error) {
	dir := viper.GetString(keyContentDir)
	if len(args) > 0 {
		dir = args[0]
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "text", "warn")
	store := content.NewStore(content.OpenFS(dir), logger)
	if err := store.Load(); err != nil {
		where := dir
		if where == "" {
			where = "embedded defaults"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ Content in %s is invalid:\n", where)
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(cmd.ErrOrStderr(), "   %s\n", line)
		}
		return nil, fmt.Errorf("content validation failed")
	}
	return store, nil
}

func printSummary(w io.Writer, store *content.Store) {
	all := store.AllPosts()
	drafts := len(all) - len(store.Posts())
	site := store.Site()

	fmt.Fprintln(w, "✅ Content is valid")
	fmt.Fprintf(w, "   Site:         %s\n", site.Name)
	fmt.Fprintf(w, "   Posts:        %d (%d drafts)\n", len(all), drafts)
	fmt.Fprintf(w, "   Hero slides:  %d\n", len(site.Hero))
	fmt.Fprintf(w, "   Testimonials: %d\n", len(site.Testimonials))
	fmt.Fprintf(w, "   Features:     %d\n", len(site.Features))
}

type postRow struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	PublishedAt string   `json:"publishedAt"`
	Draft       bool     `json:"draft"`
	Tags        []string `json:"tags"`
}

func printPosts(w io.Writer, posts []*content.Post, format output.Format) error {
	rows := make([]postRow, len(posts))
	for i, p := range posts {
		rows[i] = postRow{
			Slug:        p.Slug,
			Title:       p.Title,
			PublishedAt: p.PublishedAt.Format("2006-01-02"),
			Draft:       p.Draft,
			Tags:        p.Tags,
		}
	}

	if format == output.FormatJSON {
		return output.JSON(w, struct {
			Posts []postRow `json:"posts"`
			Count int       `json:"count"`
		}{Posts: rows, Count: len(rows)})
	}

	table := make([][]string, len(rows))
	for i, r := range rows {
		draft := "-"
		if r.Draft {
			draft = "yes"
		}
		table[i] = []string{r.Slug, output.Truncate(r.Title, 40), r.PublishedAt, draft, strings.Join(r.Tags, ",")}
	}
	return output.Table(w, []string{"SLUG", "TITLE", "PUBLISHED", "DRAFT", "TAGS"}, table, "No posts found")
}
