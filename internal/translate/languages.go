package translate

import "strings"

// Language is a target the synthesis model can speak.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages mirrors what the multilingual TTS model handles.
// Order is what the UI shows.
var SupportedLanguages = []Language{
	{"en", "English"},
	{"tr", "Turkish"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"ru", "Russian"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
	{"zh", "Chinese"},
	{"ar", "Arabic"},
	{"nl", "Dutch"},
	{"pl", "Polish"},
	{"sv", "Swedish"},
	{"hi", "Hindi"},
	{"cs", "Czech"},
	{"da", "Danish"},
	{"fi", "Finnish"},
	{"el", "Greek"},
	{"hu", "Hungarian"},
	{"id", "Indonesian"},
	{"no", "Norwegian"},
	{"ro", "Romanian"},
	{"sk", "Slovak"},
	{"uk", "Ukrainian"},
	{"vi", "Vietnamese"},
	{"th", "Thai"},
	{"bg", "Bulgarian"},
}

var supported = func() map[string]string {
	m := make(map[string]string, len(SupportedLanguages))
	for _, l := range SupportedLanguages {
		m[l.Code] = l.Name
	}
	return m
}()

func IsSupported(code string) bool {
	_, ok := supported[code]
	return ok
}

// LanguageName returns the display name for code, or the upper-cased
// code when unknown.
func LanguageName(code string) string {
	if name, ok := supported[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}
