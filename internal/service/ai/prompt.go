package ai

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/kapu/namevibes-bot/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/narrative.yaml
var narrativePromptYAML []byte

// Prompt is a rendered prompt ready for a provider.
type Prompt struct {
	Name        string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// PromptTemplate is the YAML document describing a prompt.
type PromptTemplate struct {
	Name        string  `yaml:"name"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	System      string  `yaml:"system"`
	User        string  `yaml:"user"`

	tmpl *template.Template
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// ParsePromptTemplate decodes and compiles a YAML prompt document.
func ParsePromptTemplate(raw []byte) (*PromptTemplate, error) {
	var pt PromptTemplate
	if err := yaml.Unmarshal(raw, &pt); err != nil {
		return nil, fmt.Errorf("decode prompt yaml: %w", err)
	}
	if pt.Name == "" || strings.TrimSpace(pt.User) == "" {
		return nil, fmt.Errorf("prompt template requires name and user fields")
	}
	if pt.MaxTokens <= 0 {
		pt.MaxTokens = 400
	}

	tmpl, err := template.New(pt.Name).Funcs(templateFuncs).Option("missingkey=error").Parse(pt.User)
	if err != nil {
		return nil, fmt.Errorf("parse prompt %s: %w", pt.Name, err)
	}
	pt.tmpl = tmpl
	return &pt, nil
}

// NarrativeTemplate returns the embedded narrative prompt.
func NarrativeTemplate() (*PromptTemplate, error) {
	return ParsePromptTemplate(narrativePromptYAML)
}

func (pt *PromptTemplate) Render(r *domain.Reading) (Prompt, error) {
	var buf bytes.Buffer
	if err := pt.tmpl.Execute(&buf, r); err != nil {
		return Prompt{}, fmt.Errorf("render prompt %s: %w", pt.Name, err)
	}
	return Prompt{
		Name:        pt.Name,
		System:      strings.TrimSpace(pt.System),
		User:        strings.TrimSpace(buf.String()),
		Temperature: pt.Temperature,
		MaxTokens:   pt.MaxTokens,
	}, nil
}
