package config

import (
	"os"
	"strings"

	"github.com/gosimple/slug"
)

const badFileName = "_bad_file_name_"

// CleanFileName removes characters not allowed in file names on this
// platform. Leading dots are dropped so results never become hidden files.
func CleanFileName(in string) string {
	forbidden := forbiddenChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		out = badFileName
	}
	return out
}

// OutputName builds file name for extracted descriptor from base (module name
// or archive name without extension).
func (conf *ArchiveConfig) OutputName(base, ext string) string {
	if conf.FileNameTransliterate {
		base = slug.Make(base)
	}
	return CleanFileName(base) + ext
}
