package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"impl-tracker/core/utils"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrMissingTranslation is returned when a key is not present in any bundle.
var ErrMissingTranslation = errors.New("i18n: missing translation")

//go:embed locales/*.yaml
var embedded embed.FS

// Translator maps a language key to display text for the current locale.
// Positional arguments replace {0}, {1}, ... placeholders.
type Translator interface {
	Translate(key string, args ...any) (string, error)
}

// Catalog is an in-memory Translator backed by YAML bundles.
type Catalog struct {
	locale   language.Tag
	messages map[string]string
	fallback map[string]string
}

// Load builds a catalog from the configured bundle directory, or from the
// embedded bundles when no directory is configured.
func Load(cfg Config) (*Catalog, error) {
	var fsys fs.FS
	dir := "locales"
	if cfg.Path != "" {
		fsys = os.DirFS(cfg.Path)
		dir = "."
	} else {
		fsys = embedded
	}

	bundles, err := readBundles(fsys, dir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(cfg.Locale, cfg.Fallback, bundles)
}

// NewCatalog builds a catalog from bundles keyed by locale. The requested
// locale is matched against the available ones (e.g., de-AT selects de).
func NewCatalog(locale, fallback string, bundles map[string]map[string]string) (*Catalog, error) {
	if len(bundles) == 0 {
		return nil, fmt.Errorf("i18n: no bundles available")
	}

	names := make([]string, 0, len(bundles))
	for name := range bundles {
		names = append(names, name)
	}
	sort.Strings(names)

	tags := make([]language.Tag, 0, len(names))
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("i18n: invalid bundle locale %q: %w", name, err)
		}
		tags = append(tags, tag)
	}

	matcher := language.NewMatcher(tags)
	pick := func(requested string) (language.Tag, map[string]string) {
		if requested == "" {
			return language.Und, nil
		}
		_, idx, conf := matcher.Match(language.Make(requested))
		if conf == language.No {
			return language.Und, nil
		}
		return tags[idx], bundles[names[idx]]
	}

	tag, messages := pick(locale)
	_, fb := pick(fallback)
	if messages == nil && fb == nil {
		return nil, fmt.Errorf("i18n: no bundle matches locale %q", locale)
	}

	return &Catalog{locale: tag, messages: messages, fallback: fb}, nil
}

// Locale returns the matched locale of the catalog.
func (c *Catalog) Locale() string {
	return c.locale.String()
}

// Translate returns the text for key with positional arguments substituted.
// A key missing from both the locale and the fallback bundle yields
// ErrMissingTranslation.
func (c *Catalog) Translate(key string, args ...any) (string, error) {
	msg, ok := c.messages[key]
	if !ok {
		msg, ok = c.fallback[key]
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingTranslation, key)
	}
	return substitute(msg, args), nil
}

func substitute(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", utils.ToString(arg))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

func readBundles(fsys fs.FS, dir string) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: failed to read bundles: %w", err)
	}

	bundles := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: failed to read %s: %w", entry.Name(), err)
		}
		var messages map[string]string
		if err := yaml.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("i18n: failed to parse %s: %w", entry.Name(), err)
		}
		bundles[strings.TrimSuffix(entry.Name(), ".yaml")] = messages
	}
	return bundles, nil
}
