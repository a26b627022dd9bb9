package dates

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// PresentLabel is shown in place of a missing end date.
const PresentLabel = "Present"

// monthNames holds stand-alone month names per supported language.
var monthNames = map[language.Tag][12]string{
	language.English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	language.Spanish: {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	language.French: {
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	language.German: {
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	language.Portuguese: {
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	},
}

// English must stay first: the matcher falls back to the first tag.
var supportedLocales = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
	language.Portuguese,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// SupportedLocales returns the languages FormatDateIn has month names for.
func SupportedLocales() []language.Tag {
	out := make([]language.Tag, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// matchLocale maps tag to one of the supported base languages.
func matchLocale(tag language.Tag) language.Tag {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supportedLocales[idx]
}

// FormatDate renders d as "<Month> <Year>" in English, e.g. "December 2023".
func FormatDate(d CalendarDate) string {
	return FormatDateIn(d, language.English)
}

// FormatDateIn renders d as "<Month> <Year>" using month names for tag.
// Unsupported languages fall back to English.
func FormatDateIn(d CalendarDate, tag language.Tag) string {
	names := monthNames[matchLocale(tag)]
	if d.Month < time.January || d.Month > time.December {
		return strconv.Itoa(d.Year)
	}
	return names[d.Month-1] + " " + strconv.Itoa(d.Year)
}

// FormatDateString parses s and formats it with FormatDate.
func FormatDateString(s string) (string, error) {
	d, err := Parse(s)
	if err != nil {
		return "", err
	}
	return FormatDate(d), nil
}

// FormatRange renders "January 2021 – March 2023", or "January 2021 – Present"
// when end is nil.
func FormatRange(start CalendarDate, end *CalendarDate, tag language.Tag) string {
	to := PresentLabel
	if end != nil {
		to = FormatDateIn(*end, tag)
	}
	return FormatDateIn(start, tag) + " – " + to
}
