package domain

import "strings"

// Bilingual holds one value per supported language.
type Bilingual struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// IsZero reports whether both languages are empty.
func (b Bilingual) IsZero() bool {
	return b.Ar == "" && b.En == ""
}

// Trimmed returns a copy with surrounding whitespace removed from both values.
func (b Bilingual) Trimmed() Bilingual {
	return Bilingual{Ar: strings.TrimSpace(b.Ar), En: strings.TrimSpace(b.En)}
}
