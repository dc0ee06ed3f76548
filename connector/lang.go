package connector

import (
	"golang.org/x/text/language"
)

// BestText picks entry of a localized list best matching preferred
// languages. Entries without lang are English. Returns false for empty list.
// Without preferences the first entry wins.
func BestText(list []LocalizedText, prefs ...language.Tag) (LocalizedText, bool) {
	if len(list) == 0 {
		return LocalizedText{}, false
	}
	if len(prefs) == 0 {
		return list[0], true
	}
	supported := make([]language.Tag, len(list))
	for i, l := range list {
		supported[i] = entryTag(l.Lang)
	}
	_, idx, conf := language.NewMatcher(supported).Match(prefs...)
	if conf == language.No {
		return list[0], true
	}
	return list[idx], true
}

func entryTag(lang string) language.Tag {
	if lang == "" {
		return language.English
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und
	}
	return tag
}
