package darksky

import (
	"maps"
	"strings"
)

// Block is a data block of a forecast that can be excluded from a response.
type Block string

const (
	BlockAlerts    Block = "alerts"
	BlockCurrently Block = "currently"
	BlockDaily     Block = "daily"
	BlockFlags     Block = "flags"
	BlockHourly    Block = "hourly"
	BlockMinutely  Block = "minutely"
)

// Unit is the unit system of a response.
type Unit string

const (
	// UnitAuto selects units based on the geographic location.
	UnitAuto Unit = "auto"
	// UnitCA is SI with wind speed in kilometers per hour.
	UnitCA Unit = "ca"
	UnitSI Unit = "si"
	// UnitUK2 is SI with distances in miles and wind speed in miles per hour.
	UnitUK2 Unit = "uk2"
	UnitUS  Unit = "us"
)

// Language is the language of summaries in a response.
type Language string

const (
	LanguageArabic     Language = "ar"
	LanguageBosnian    Language = "bs"
	LanguageChinese    Language = "zh"
	LanguageCroatian   Language = "hr"
	LanguageDutch      Language = "nl"
	LanguageEnglish    Language = "en"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguageGreek      Language = "el"
	LanguageItalian    Language = "it"
	LanguagePolish     Language = "pl"
	LanguagePortuguese Language = "pt"
	LanguageRussian    Language = "ru"
	LanguageSpanish    Language = "es"
	LanguageSwedish    Language = "sv"
	LanguageTurkish    Language = "tr"
	LanguageUkrainian  Language = "uk"
)

// Options collects query options for [URIOptioned]. Each setter
// overwrites any earlier value for the same key. The zero value is an
// empty set ready to use.
//
//	opts := NewOptions().Exclude(BlockMinutely, BlockAlerts).Unit(UnitSI)
//	u, err := URIOptioned(token, lat, long, "", opts.Map())
type Options struct {
	values map[string]string
}

// NewOptions returns an empty set of options.
func NewOptions() *Options {
	return &Options{values: make(map[string]string)}
}

// Exclude omits the given blocks from the response.
func (o *Options) Exclude(blocks ...Block) *Options {
	names := make([]string, len(blocks))
	for i, b := range blocks {
		names[i] = string(b)
	}

	o.set("exclude", strings.Join(names, ","))

	return o
}

// ExtendHourly requests hour-by-hour data for the next 168 hours
// instead of the next 48.
func (o *Options) ExtendHourly() *Options {
	o.set("extend", "hourly")

	return o
}

// Language sets the language of text summaries.
func (o *Options) Language(lang Language) *Options {
	o.set("lang", string(lang))

	return o
}

// Unit sets the unit system of the response.
func (o *Options) Unit(unit Unit) *Options {
	o.set("units", string(unit))

	return o
}

func (o *Options) set(key, value string) {
	if o.values == nil {
		o.values = make(map[string]string)
	}
	o.values[key] = value
}

// Map returns a copy of the collected key/value pairs.
func (o *Options) Map() map[string]string {
	return maps.Clone(o.values)
}
