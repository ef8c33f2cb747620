package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"nexusai-site/internal/domain"
)

const postDateLayout = "2006-01-02"

type postFrontMatter struct {
	Slug       string        `yaml:"slug"`
	Title      string        `yaml:"title"`
	Excerpt    string        `yaml:"excerpt"`
	CoverImage string        `yaml:"coverImage"`
	Date       string        `yaml:"date"`
	Author     domain.Author `yaml:"author"`
	Category   string        `yaml:"category"`
	Tags       []string      `yaml:"tags"`
	ReadTime   string        `yaml:"readTime"`
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// loadPosts reads every markdown file under dir. File names sort into authoring order.
func loadPosts(fsys fs.FS, dir string) ([]domain.Post, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	md := newMarkdown()
	posts := make([]domain.Post, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		post, err := parsePost(md, name, raw)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[post.Slug]; ok {
			return nil, invalid("duplicate post slug %q in %s and %s", post.Slug, prev, name)
		}
		seen[post.Slug] = name
		posts = append(posts, post)
	}
	return posts, nil
}

func parsePost(md goldmark.Markdown, name string, raw []byte) (domain.Post, error) {
	var fm postFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return domain.Post{}, invalid("%s: front matter: %v", name, err)
	}
	if fm.Slug == "" {
		fm.Slug = slugFromFilename(name)
	}
	if strings.TrimSpace(fm.Title) == "" || strings.TrimSpace(fm.Category) == "" {
		return domain.Post{}, invalid("%s: title and category are required", name)
	}

	var date time.Time
	if fm.Date != "" {
		date, err = time.Parse(postDateLayout, fm.Date)
		if err != nil {
			return domain.Post{}, invalid("%s: date %q: use YYYY-MM-DD", name, fm.Date)
		}
	}

	var html bytes.Buffer
	if err := md.Convert(body, &html); err != nil {
		return domain.Post{}, fmt.Errorf("render %s: %w", name, err)
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Post{
		Slug:       fm.Slug,
		Title:      fm.Title,
		Excerpt:    fm.Excerpt,
		CoverImage: fm.CoverImage,
		Date:       date,
		Author:     fm.Author,
		Category:   fm.Category,
		Tags:       tags,
		ReadTime:   fm.ReadTime,
		Markdown:   string(body),
		HTML:       html.String(),
	}, nil
}

// slugFromFilename turns "01-some-post.md" into "some-post".
func slugFromFilename(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if i := strings.IndexByte(base, '-'); i > 0 && strings.Trim(base[:i], "0123456789") == "" {
		base = base[i+1:]
	}
	return base
}
