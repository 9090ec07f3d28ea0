package preset

import (
	"os"
	"strings"
)

// Template is a preset skeleton containing {{...}} placeholder tokens.
type Template struct {
	text string
}

func NewTemplate(text string) Template {
	return Template{text: text}
}

func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, err
	}
	return Template{text: string(data)}, nil
}

// Render replaces every occurrence of each token with its value. This is
// literal text replacement, not structured templating: a token embedded in
// surrounding text is replaced all the same.
func (t Template) Render(values map[string]string) string {
	result := t.text
	for token, value := range values {
		result = strings.ReplaceAll(result, token, value)
	}
	return result
}
