package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sobasite/internal/core/domain/site"
	"sobasite/internal/platform/validator"
)

//go:embed site.yaml
var embeddedContent []byte

type document struct {
	Title            string   `yaml:"title" validate:"required"`
	Heading          string   `yaml:"heading" validate:"required"`
	PrivacyPolicyURL string   `yaml:"privacy_policy_url" validate:"required,http_url"`
	Navigation       []link   `yaml:"navigation" validate:"required,min=1,dive"`
	Socials          []social `yaml:"socials" validate:"dive"`
}

type link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required,http_url"`
}

type social struct {
	Name string `yaml:"name" validate:"required"`
	Icon string `yaml:"icon"`
	URL  string `yaml:"url" validate:"required,http_url"`
}

// Load reads site content from path, or the built-in content when path is
// empty.
func Load(path string, validate validator.Validator) (*site.Content, error) {
	if path == "" {
		return Parse(bytes.NewReader(embeddedContent), validate)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open site content: %w", err)
	}
	defer f.Close()

	return Parse(f, validate)
}

// Parse decodes and validates a site content document. Unknown keys are
// rejected so that typos do not silently drop links.
func Parse(r io.Reader, validate validator.Validator) (*site.Content, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode site content: document is empty")
		}
		return nil, fmt.Errorf("decode site content: %w", err)
	}

	if err := validate.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid site content: %w", err)
	}

	nav := make([]site.Link, 0, len(doc.Navigation))
	for _, l := range doc.Navigation {
		nav = append(nav, site.Link{Label: l.Label, URL: l.URL})
	}
	socials := make([]site.Social, 0, len(doc.Socials))
	for _, s := range doc.Socials {
		socials = append(socials, site.Social{Name: s.Name, Icon: s.Icon, URL: s.URL})
	}

	return site.NewContent(doc.Title, doc.Heading, doc.PrivacyPolicyURL, nav, socials)
}
