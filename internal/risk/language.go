package risk

// Language is an alert language code.
type Language string

const (
	LangEnglish  Language = "en"
	LangHindi    Language = "hi"
	LangAssamese Language = "as"
	LangBengali  Language = "bn"
)

// DefaultLanguage is the tab selected when a report is first shown.
const DefaultLanguage = LangEnglish

// Languages lists the alert tabs in display order.
var Languages = []Language{LangEnglish, LangHindi, LangAssamese, LangBengali}

// SpeechRate is the utterance rate used for voice alerts.
const SpeechRate = 0.9

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LangEnglish, LangHindi, LangAssamese, LangBengali:
		return true
	}
	return false
}

// Label is the tab caption.
func (l Language) Label() string {
	switch l {
	case LangHindi:
		return "हिन्दी"
	case LangAssamese:
		return "অসমীয়া"
	case LangBengali:
		return "বাংলা"
	default:
		return "English"
	}
}

// VoiceTag returns the BCP 47 tag handed to the speech synthesizer.
// Assamese voices are rarely installed, so it borrows the Bengali voice.
func (l Language) VoiceTag() string {
	switch l {
	case LangEnglish:
		return "en-IN"
	case LangHindi:
		return "hi-IN"
	case LangAssamese, LangBengali:
		return "bn-IN"
	default:
		return "en-US"
	}
}

// VoiceTags maps every language to its voice tag.
func VoiceTags() map[Language]string {
	out := make(map[Language]string, len(Languages))
	for _, l := range Languages {
		out[l] = l.VoiceTag()
	}
	return out
}
