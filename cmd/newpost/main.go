// newpost scaffolds a new blog post markdown file with YAML front matter.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alibstrd/dzulfikar-ali/post"
)

// frontMatter mirrors the keys the post loader reads.
type frontMatter struct {
	Title      string   `yaml:"title"`
	Date       string   `yaml:"date"`
	Categories []string `yaml:"category,omitempty"`
	Cover      string   `yaml:"cover,omitempty"`
	Thumb      string   `yaml:"thumb,omitempty"`
	Draft      bool     `yaml:"draft,omitempty"`
}

var (
	dir        string
	date       string
	categories []string
	cover      string
	thumb      string
	draft      bool
)

var rootCmd = &cobra.Command{
	Use:   "newpost <title>",
	Short: "Scaffold a new blog post",
	Long:  `Creates a markdown file with YAML front matter in the posts folder, named after the slug of the given title.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		slug := post.Slug(title)
		if slug == "" {
			return fmt.Errorf("cannot derive a slug from %q", title)
		}
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		fm := frontMatter{
			Title:      title,
			Date:       date,
			Categories: categories,
			Cover:      cover,
			Thumb:      thumb,
			Draft:      draft,
		}
		b, err := yaml.Marshal(fm)
		if err != nil {
			return fmt.Errorf("newpost: %w", err)
		}
		name := filepath.Join(dir, slug+".md")
		if _, err := os.Stat(name); err == nil {
			return fmt.Errorf("%s already exists", name)
		}
		content := "---\n" + string(b) + "---\n\nWrite your post here.\n"
		err = os.WriteFile(name, []byte(content), 0644)
		if err != nil {
			return fmt.Errorf("newpost: %w", err)
		}
		fmt.Printf("Created %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&dir, "dir", "posts", "Folder to create the post in.")
	rootCmd.Flags().StringVar(&date, "date", "", "Publication date (defaults to today).")
	rootCmd.Flags().StringSliceVar(&categories, "category", nil, "Category labels.")
	rootCmd.Flags().StringVar(&cover, "cover", "", "Cover image path.")
	rootCmd.Flags().StringVar(&thumb, "thumb", "", "Thumbnail image path.")
	rootCmd.Flags().BoolVar(&draft, "draft", false, "Create the post as a draft.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
