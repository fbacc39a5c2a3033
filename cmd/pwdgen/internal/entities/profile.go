package entities

import "github.com/chirichan/pwdgen/internal/sampler"

// Profile is one row of a batch CSV file.
type Profile struct {
	Name   string `json:"name" csv:"name"`
	Length int    `json:"length" csv:"length"`
	Upper  bool   `json:"upper" csv:"upper"`
	Lower  bool   `json:"lower" csv:"lower"`
	Digit  bool   `json:"digit" csv:"digit"`
	Symbol bool   `json:"symbol" csv:"symbol"`
}

func (p Profile) Config() sampler.GenerationConfig {
	var classes sampler.ClassSet
	for c, on := range map[sampler.Class]bool{
		sampler.Uppercase: p.Upper,
		sampler.Lowercase: p.Lower,
		sampler.Digit:     p.Digit,
		sampler.Symbol:    p.Symbol,
	} {
		if on {
			classes = classes.With(c)
		}
	}
	return sampler.GenerationConfig{Length: p.Length, Classes: classes}
}

// Generated is one row of batch output.
type Generated struct {
	Name     string `json:"name" csv:"name"`
	Password string `json:"password" csv:"password"`
}
