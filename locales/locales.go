// Package locales embeds the translations of user facing messages and
// installs them into gotext.
package locales

import (
	"embed"
	"io/fs"
	"path"

	"github.com/leonelquinteros/gotext"
)

//go:embed */default.po
var files embed.FS

const (
	DefaultLanguage = "en_GB"
	Domain          = "default"
)

// Has reports whether translations exist for lang
func Has(lang string) bool {
	_, err := fs.Stat(files, path.Join(gotext.SimplifiedLocale(lang), Domain+".po"))
	return err == nil
}

// Languages returns the embedded languages
func Languages() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	return langs
}

// Load installs the translations for lang as the global gotext locale and
// returns the language actually loaded. Unknown languages fall back to
// DefaultLanguage.
func Load(lang string) string {
	lang = gotext.SimplifiedLocale(lang)
	if lang == "" || !Has(lang) {
		lang = DefaultLanguage
	}

	l := gotext.NewLocaleFS(lang, files)
	l.AddDomain(Domain)
	gotext.SetLocales([]*gotext.Locale{l})

	return lang
}
