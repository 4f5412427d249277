package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the fallback for unknown locales and the on-screen text.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds every UI message for each available locale.
type Catalog struct {
	builder *catalog.Builder
	tags    []language.Tag
	keys    map[language.Tag][]string
	matcher language.Matcher
}

// Load returns the embedded catalog.
func Load() (*Catalog, error) {
	return LoadFS(embeddedFS)
}

// LoadFS reads locales/*.yaml from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	c := &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(base)),
		keys:    map[language.Tag][]string{},
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if err := c.add(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := c.keys[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	// base first so the matcher falls back to it
	sort.SliceStable(c.tags, func(i, j int) bool { return c.tags[i] == base })
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(p string, file catalogFile) error {
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if file.Locale != name {
		return fmt.Errorf("%s: locale %q must match file name", p, file.Locale)
	}
	tag, err := language.Parse(file.Locale)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("%s: no messages", p)
	}

	keys := make([]string, 0, len(file.Messages))
	for key, msg := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("%s: blank message key", p)
		}
		if err := c.builder.SetString(tag, key, strings.TrimRight(msg, "\n")); err != nil {
			return fmt.Errorf("%s: %s: %w", p, key, err)
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	c.tags = append(c.tags, tag)
	c.keys[tag] = keys
	return nil
}

// Locales returns the available locale tags, base locale first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Keys returns the sorted message keys defined for locale.
func (c *Catalog) Keys(locale string) []string {
	return c.keys[language.Make(locale)]
}

// Printer returns a printer for the best available match of locale.
func (c *Catalog) Printer(locale string) *message.Printer {
	_, idx, conf := c.matcher.Match(language.Make(locale))
	tag := c.tags[0]
	if conf != language.No {
		tag = c.tags[idx]
	}
	return message.NewPrinter(tag, message.Catalog(c.builder))
}
