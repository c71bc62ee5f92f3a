// Package hooks runs an ordered list of page transforms before rendering.
package hooks

import "github.com/dtnitsch/modsite/models"

// Hook transforms a page in place before it is rendered.
// Hooks must not fail; a hook that cannot act leaves the page unchanged.
type Hook interface {
	Name() string
	PreRender(page *models.Page)
}

// Func adapts a plain function to a Hook.
type Func struct {
	HookName string
	Fn       func(page *models.Page)
}

func (f Func) Name() string { return f.HookName }

func (f Func) PreRender(page *models.Page) {
	if f.Fn != nil {
		f.Fn(page)
	}
}

// Pipeline is an ordered set of hooks invoked once per page.
type Pipeline struct {
	hooks []Hook
}

// New builds a pipeline that runs hooks in the given order. Nil hooks are skipped.
func New(hooks ...Hook) *Pipeline {
	p := &Pipeline{hooks: make([]Hook, 0, len(hooks))}
	for _, h := range hooks {
		if h != nil {
			p.hooks = append(p.hooks, h)
		}
	}
	return p
}

// Filter returns a new pipeline keeping only hooks allowed by enable/disable.
// An empty enable list allows every hook. Disable takes precedence.
func (p *Pipeline) Filter(enable, disable []string) *Pipeline {
	enabled := toSet(enable)
	disabled := toSet(disable)

	filtered := &Pipeline{}
	for _, h := range p.hooks {
		name := h.Name()
		if disabled[name] {
			continue
		}
		if len(enabled) > 0 && !enabled[name] {
			continue
		}
		filtered.hooks = append(filtered.hooks, h)
	}
	return filtered
}

// Names lists hook names in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.hooks))
	for i, h := range p.hooks {
		names[i] = h.Name()
	}
	return names
}

// Len returns the number of hooks.
func (p *Pipeline) Len() int {
	return len(p.hooks)
}

// Run invokes every hook against page in order.
func (p *Pipeline) Run(page *models.Page) {
	if p == nil || page == nil {
		return
	}
	for _, h := range p.hooks {
		h.PreRender(page)
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
