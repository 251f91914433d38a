// Package greet provides the fixed greeting table used by the greeting tool.
package greet

import "fmt"

// languages lists the supported language keys in catalog order.
var languages = []string{
	"english",
	"spanish",
	"french",
	"german",
	"italian",
	"portuguese",
	"japanese",
	"korean",
	"chinese",
	"hindi",
}

// tokens maps each supported language key to its greeting word.
var tokens = map[string]string{
	"english":    "Hello",
	"spanish":    "Hola",
	"french":     "Bonjour",
	"german":     "Hallo",
	"italian":    "Ciao",
	"portuguese": "Olá",
	"japanese":   "こんにちは",
	"korean":     "안녕하세요",
	"chinese":    "你好",
	"hindi":      "नमस्ते",
}

// Languages returns the supported language keys in catalog order.
// The returned slice is a copy; callers may modify it freely.
func Languages() []string {
	out := make([]string, len(languages))
	copy(out, languages)
	return out
}

// Greet formats a greeting for name in the given language.
//
// The result is always "{token}, {name}!". An unknown language returns an
// error; callers that constrain language to Languages() never see it.
func Greet(name, language string) (string, error) {
	token, ok := tokens[language]
	if !ok {
		return "", fmt.Errorf("unsupported language: %s", language)
	}
	return fmt.Sprintf("%s, %s!", token, name), nil
}
