package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDictionaries(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDictionaries("testdata/locales"))
}

func TestGetDictionary_Localizes(t *testing.T) {
	initTestDictionaries(t)

	en := GetDictionary(LocaleEN)
	fr := GetDictionary(LocaleFR)

	assert.Equal(t, "Home", en.Strings["NavHome"])
	assert.Equal(t, "Accueil", fr.Strings["NavHome"])
	assert.Equal(t, "Page not found", en.Strings["NotFoundTitle"])
}

func TestGetDictionary_CacheConsistency(t *testing.T) {
	initTestDictionaries(t)

	first := GetDictionary(LocaleJA)
	second := GetDictionary(LocaleJA)

	assert.Same(t, first, second)
	assert.Equal(t, first.Strings, second.Strings)
}

func TestGetDictionary_UnknownLocaleFallsBack(t *testing.T) {
	initTestDictionaries(t)

	dict := GetDictionary(Locale("de"))
	assert.Equal(t, DefaultLocale, dict.Locale)
	assert.Equal(t, GetDictionary(DefaultLocale).Strings, dict.Strings)
}

func TestDictionary_MissingMessageFallsBackToID(t *testing.T) {
	initTestDictionaries(t)

	dict := GetDictionary(LocaleEN)
	assert.Equal(t, "NoSuchMessage", dict.T("NoSuchMessage"))
}

func TestEveryPageMessageResolvesInEveryLocale(t *testing.T) {
	initTestDictionaries(t)

	for _, locale := range Locales {
		dict := GetDictionary(locale)
		require.Len(t, dict.Strings, len(pageMessageIDs))
		for _, id := range pageMessageIDs {
			assert.NotEmpty(t, dict.Strings[id], "locale %s message %s", locale, id)
		}
	}
}

func TestGetDictionary_BeforeInitServesMessageIDs(t *testing.T) {
	dictMutex.Lock()
	dictBundle = nil
	dictionaries = map[Locale]*Dictionary{}
	dictMutex.Unlock()

	dict := GetDictionary(LocaleEN)
	assert.Equal(t, "NavHome", dict.Strings["NavHome"])
	assert.Equal(t, "NotFoundTitle", dict.T("NotFoundTitle"))
}

func TestEveryLocaleHasMessageFile(t *testing.T) {
	for _, locale := range Locales {
		_, ok := messageFiles[locale]
		assert.True(t, ok, "locale %s has no message file entry", locale)
	}
}
