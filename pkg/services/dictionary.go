package services

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// messageFiles is the static dispatch table from locale to message file.
// Every member of Locales must have an entry; InitDictionaries fails loudly
// otherwise.
var messageFiles = map[Locale]string{
	LocaleEN: "active.en.toml",
	LocaleFR: "active.fr.toml",
	LocaleJA: "active.ja.toml",
}

// pageMessageIDs is the fixed set of strings templates render. Each
// dictionary resolves all of them once at first use.
var pageMessageIDs = []string{
	"NavHome",
	"NavBlog",
	"BlogTitle",
	"ProjectsTitle",
	"ReadMore",
	"PreviousPost",
	"NextPost",
	"MinuteRead",
	"TaggedWith",
	"ExternalPost",
	"EmptyBlog",
	"NotFoundTitle",
	"NotFoundBody",
}

// Dictionary is the immutable per-locale translation table.
type Dictionary struct {
	Locale    Locale
	Strings   map[string]string
	localizer *i18n.Localizer
}

// T localizes a message ID, falling back to the ID itself when the
// message is absent from every loaded file.
func (d *Dictionary) T(messageID string) string {
	msg, err := d.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID, Other: messageID},
	})
	if err != nil {
		return messageID
	}
	return msg
}

var (
	dictMutex    sync.Mutex
	dictBundle   *i18n.Bundle
	dictionaries = map[Locale]*Dictionary{}
)

// InitDictionaries loads one TOML message file per supported locale from
// dir into a single bundle. Call once at startup, before serving requests.
func InitDictionaries(dir string) error {
	dictMutex.Lock()
	defer dictMutex.Unlock()

	bundle := i18n.NewBundle(language.Make(string(DefaultLocale)))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, locale := range Locales {
		file, ok := messageFiles[locale]
		if !ok {
			return fmt.Errorf("locale %s has no message file entry", locale)
		}
		if _, err := bundle.LoadMessageFile(filepath.Join(dir, file)); err != nil {
			return fmt.Errorf("load messages for %s: %w", locale, err)
		}
	}

	dictBundle = bundle
	dictionaries = map[Locale]*Dictionary{}
	return nil
}

// GetDictionary returns the dictionary for a locale. Unknown codes fall
// back to the default locale's dictionary so a manipulated URL never
// breaks a page. Results are cached per locale for the process lifetime;
// the locale set is closed, so no invalidation path exists.
func GetDictionary(locale Locale) *Dictionary {
	if !IsLocale(string(locale)) {
		locale = DefaultLocale
	}

	dictMutex.Lock()
	defer dictMutex.Unlock()

	if d, ok := dictionaries[locale]; ok {
		return d
	}

	// Called before InitDictionaries: serve message IDs from an empty
	// bundle instead of panicking.
	if dictBundle == nil {
		dictBundle = i18n.NewBundle(language.Make(string(DefaultLocale)))
	}

	localizer := i18n.NewLocalizer(dictBundle, string(locale), string(DefaultLocale))
	d := &Dictionary{
		Locale:    locale,
		Strings:   make(map[string]string, len(pageMessageIDs)),
		localizer: localizer,
	}
	for _, id := range pageMessageIDs {
		d.Strings[id] = d.T(id)
	}

	dictionaries[locale] = d
	return d
}
