package models

// Text is a bilingual paired field: the same logical attribute stored in
// English and Arabic side by side. Either half may be empty; there is no
// canonical language between them.
type Text struct {
	EN string `json:"en,omitempty"`
	AR string `json:"ar,omitempty"`
}

// Resolve returns the value for the requested locale, falling back to the
// other language when the requested one is empty.
func (t Text) Resolve(locale string) string {
	if locale == "ar" {
		if t.AR != "" {
			return t.AR
		}
		return t.EN
	}
	if t.EN != "" {
		return t.EN
	}
	return t.AR
}

// Empty reports whether both halves are empty.
func (t Text) Empty() bool {
	return t.EN == "" && t.AR == ""
}
