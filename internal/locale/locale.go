// Package locale holds the user-facing strings that differ between languages.
package locale

import "strings"

type Messages struct {
	Lang          string
	SubmitThanks  string
	ExportHeaders []string
	Yes           string
	No            string
}

var catalog = map[string]Messages{
	"en": {
		Lang:          "en",
		SubmitThanks:  "Thank you, response saved.",
		ExportHeaders: []string{"ID", "Date/Time", "Full Name", "Planning to Attend"},
		Yes:           "Yes",
		No:            "No",
	},
	"ru": {
		Lang:          "ru",
		SubmitThanks:  "Спасибо! Ответ сохранён.",
		ExportHeaders: []string{"ID", "Дата/время", "Имя и фамилия", "Планирует присутствовать"},
		Yes:           "Да",
		No:            "Нет",
	},
}

// For returns the messages for lang, falling back to English.
func For(lang string) Messages {
	if m, ok := catalog[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return m
	}
	return catalog["en"]
}

func (m Messages) YesNo(v bool) string {
	if v {
		return m.Yes
	}
	return m.No
}
