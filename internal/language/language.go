package language

import (
	"strings"

	xlang "golang.org/x/text/language"
)

// Auto is the sentinel tag meaning language detection was left to the
// recognition engine.
const Auto = "auto"

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "hindi")
}

var languages = []entry{
	{"hi", "hin", "Hindi", []string{"hindi"}},
	{"sa", "san", "Sanskrit", []string{"sanskrit"}},
	{"mr", "mar", "Marathi", []string{"marathi"}},
	{"ne", "nep", "Nepali", []string{"nepali"}},
	{"en", "eng", "English", []string{"english"}},
	{"es", "spa", "Spanish", []string{"spanish"}},
	{"fr", "fra", "French", []string{"french"}},
	{"de", "deu", "German", []string{"german"}},
	{"pt", "por", "Portuguese", []string{"portuguese"}},
	{"ru", "rus", "Russian", []string{"russian"}},
	{"ja", "jpn", "Japanese", []string{"japanese"}},
	{"ko", "kor", "Korean", []string{"korean"}},
	{"zh", "zho", "Chinese", []string{"chinese"}},
	{"ar", "ara", "Arabic", []string{"arabic"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages))
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// Normalize converts any recognized language code, word, or BCP-47 tag to
// the canonical 2-letter form used throughout the pipeline. Empty input
// and "auto" normalize to Auto; unrecognized input passes through trimmed
// and lowercased so engine-specific tags survive.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == Auto {
		return Auto
	}
	if e := lookup(code); e != nil {
		return e.code2
	}
	if tag, err := xlang.Parse(code); err == nil {
		if base, conf := tag.Base(); conf >= xlang.High {
			if e := lookup(base.String()); e != nil {
				return e.code2
			}
			return base.String()
		}
	}
	return code
}

// DisplayName returns a human-readable name for any recognized code.
// "auto" reports as Auto-detected; unrecognized codes are uppercased.
func DisplayName(code string) string {
	normalized := Normalize(code)
	if normalized == Auto {
		return "Auto-detected"
	}
	if e := lookup(normalized); e != nil {
		return e.display
	}
	return strings.ToUpper(normalized)
}
