package render

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var ErrNoTemplates = errors.New("render: template filesystem is nil")

// Engine renders pongo2 templates from a filesystem. Parsed templates are
// cached by name.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// New builds an engine over files. Globals are visible to every template.
func New(files fs.FS, globals map[string]any) (*Engine, error) {
	if files == nil {
		return nil, ErrNoTemplates
	}

	set := pongo2.NewSet("sobasite", pongo2.NewFSLoader(files))
	set.Globals = make(pongo2.Context, len(globals))
	set.Globals.Update(globals)

	return &Engine{
		set:       set,
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render executes the named template with data. Output is autoescaped.
func (e *Engine) Render(name string, data map[string]any) ([]byte, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return nil, err
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return nil, fmt.Errorf("render: execute template %q: %w", name, err)
	}
	return out, nil
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}
