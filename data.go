package fynespin

import (
	"github.com/tidwall/gjson"
)

// Option is one selectable dropdown entry. Text is what the default row
// renders; Value is an opaque payload for the embedding application and may
// be nil.
type Option struct {
	Text  string
	Value any
}

// TextOptions builds options from plain display strings.
func TextOptions(texts ...string) []Option {
	opts := make([]Option, len(texts))
	for i, t := range texts {
		opts[i] = Option{Text: t}
	}
	return opts
}

// OptionsFromJSON parses a JSON array into options. Elements may be plain
// strings or objects with "text" and an optional "value" field; any other
// element yields an option whose text is the element's string form. A
// document that is not an array yields nil.
func OptionsFromJSON(doc string) []Option {
	res := gjson.Parse(doc)
	if !res.IsArray() {
		return nil
	}

	var opts []Option
	res.ForEach(func(_, elem gjson.Result) bool {
		if elem.IsObject() {
			opt := Option{Text: elem.Get("text").String()}
			if v := elem.Get("value"); v.Exists() {
				opt.Value = v.Value()
			}
			opts = append(opts, opt)
			return true
		}
		opts = append(opts, Option{Text: elem.String()})
		return true
	})
	return opts
}
