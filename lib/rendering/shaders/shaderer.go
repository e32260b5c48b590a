package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.vert *.frag *.tcs *.tes *.geom
var templateDir embed.FS

type Shaderer struct {
	templates *template.Template
	data      *ShaderData
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	GLSLVersion string
}

func NewShaderer(data *ShaderData) (*Shaderer, error) {
	s := &Shaderer{data: data}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.vert", "*.frag", "*.tcs", "*.tes", "*.geom")

	return s, err
}

func (s *Shaderer) Source(name string) (string, error) {
	if s.templates.Lookup(name) == nil {
		return "", fmt.Errorf("no such shader: %s", name)
	}

	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, s.data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
