package csf

// LanguageID identifies the language a string table is localized for.
type LanguageID int32

// Language ids defined by the CSF format. The valid on-disk range is
// [-1, 9]; anything else loads as LanguageUnknown.
const (
	LanguageIndependent  LanguageID = -1
	LanguageEnglishUS    LanguageID = 0
	LanguageEnglishUK    LanguageID = 1
	LanguageGerman       LanguageID = 2
	LanguageFrench       LanguageID = 3
	LanguageSpanish      LanguageID = 4
	LanguageItalian      LanguageID = 5
	LanguageJapanese     LanguageID = 6
	LanguageJabberwockie LanguageID = 7
	LanguageKorean       LanguageID = 8
	LanguageChinese      LanguageID = 9
	LanguageUnknown      LanguageID = 10
)

// LanguageFromInt maps a raw language id from a file header to a LanguageID.
// Values outside [-1, 9] map to LanguageUnknown.
func LanguageFromInt(v int32) LanguageID {
	if v < int32(LanguageIndependent) || v > int32(LanguageChinese) {
		return LanguageUnknown
	}
	return LanguageID(v)
}

// String returns a human-readable name for the language id.
func (l LanguageID) String() string {
	switch l {
	case LanguageIndependent:
		return "Language Independent"
	case LanguageEnglishUS:
		return "English (US)"
	case LanguageEnglishUK:
		return "English (UK)"
	case LanguageGerman:
		return "German"
	case LanguageFrench:
		return "French"
	case LanguageSpanish:
		return "Spanish"
	case LanguageItalian:
		return "Italian"
	case LanguageJapanese:
		return "Japanese"
	case LanguageJabberwockie:
		return "Jabberwockie"
	case LanguageKorean:
		return "Korean"
	case LanguageChinese:
		return "Chinese"
	default:
		return "Unknown"
	}
}
