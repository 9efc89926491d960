package ushape

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Context represents information about the display environment, used to
// select a preset of options.
type Context struct {
	Script language.Script // ISO 15924 script identifier
	Locale string          // ISO 639/3166 locale string
}

// LatinContext is a context for western languages.
var LatinContext = ContextForLocale("en-US")

// ArabicContext is a context for Arabic.
var ArabicContext = ContextForLocale("ar")

// ContextFromEnvironment creates a context from the user's locale. If the
// locale cannot be detected, "en-US" is assumed.
func ContextFromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		CT().Errorf(err.Error())
		userLocale = "en-US"
		CT().Infof("ushape sets default user locale %v", userLocale)
	} else {
		CT().Infof("ushape detected user locale %v", userLocale)
	}
	return ContextForLocale(userLocale)
}

// ContextForLocale creates a context for a BCP 47 locale string, e.g. "he-IL".
// Unknown locales will result in a context for undetermined language.
func ContextForLocale(locale string) *Context {
	lang := language.Make(locale)
	script, _ := lang.Script()
	return &Context{
		Script: script,
		Locale: locale,
	}
}

// Options returns the options preset for a context: right-to-left scripts
// without joining letters get bidi reordering only, all other scripts get
// DefaultOptions. A nil context is treated as LatinContext.
func (ctx *Context) Options() Options {
	if ctx == nil {
		return DefaultOptions
	}
	switch ctx.Script.String() {
	case "Hebr", "Thaa", "Samr":
		return LettersNoop | TextDirectionLogical | DirectionOutputBidi
	}
	return DefaultOptions
}
