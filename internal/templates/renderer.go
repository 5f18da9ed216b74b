package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// Renderer renders embedded templates with a fixed data value.
type Renderer struct {
	data any
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data any) *Renderer {
	return &Renderer{data: data}
}

// Render renders the embedded template name and returns the content.
func (r *Renderer) Render(name Name) ([]byte, error) {
	content, err := assetsFS.ReadFile(string(name))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(string(name)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// RenderString renders the embedded template name to a string.
func (r *Renderer) RenderString(name Name) (string, error) {
	result, err := r.Render(name)
	if err != nil {
		return "", err
	}
	return string(result), nil
}
