// Package presets loads the named animation presets used across the page.
// Presets are written in YAML and converted to folio variants.
package presets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/phanxgames/folio"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Required lists the presets the page builds with. Load fails when one is
// missing.
var Required = []string{
	"fadeInUp", "fadeIn", "slideInLeft", "slideInRight", "scaleIn",
	"staggerContainer", "staggerContainerSlow", "heroStagger", "heroItem",
	"letterAnimation", "cardHover", "buttonHover", "socialHover",
	"emailHover", "brandHover", "skillTagHover", "scrollIndicator", "pulseAnimation", "skillTagVariant",
	"projectCardVariant", "headerSlide",
}

// Presets is a set of named springs and variants.
type Presets struct {
	springs  map[string]folio.Transition
	variants map[string]folio.Variants
}

// Default returns the embedded presets.
func Default() (*Presets, error) {
	return Parse(defaultYAML)
}

// Load reads presets from path. An empty path yields the embedded default.
func Load(path string) (*Presets, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML presets and checks that every Required name exists.
func Parse(data []byte) (*Presets, error) {
	var f fileSpec
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	p := &Presets{
		springs:  make(map[string]folio.Transition, len(f.Springs)),
		variants: make(map[string]folio.Variants, len(f.Variants)),
	}
	for name, s := range f.Springs {
		if s.Stiffness <= 0 || s.Damping <= 0 {
			return nil, fmt.Errorf("parse presets: spring %q: stiffness and damping must be positive", name)
		}
		t := folio.SpringTransition(s.Stiffness, s.Damping)
		if s.Mass > 0 {
			t.Mass = s.Mass
		}
		p.springs[name] = t
	}
	for _, name := range sortedKeys(f.Variants) {
		v, err := f.Variants[name].build(p.springs)
		if err != nil {
			return nil, fmt.Errorf("parse presets: variant %q: %w", name, err)
		}
		p.variants[name] = v
	}
	var missing []error
	for _, name := range Required {
		if _, ok := p.variants[name]; !ok {
			missing = append(missing, fmt.Errorf("missing variant %q", name))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("parse presets: %w", errors.Join(missing...))
	}
	return p, nil
}

// Variant returns a named variant set, or the zero Variants when absent.
func (p *Presets) Variant(name string) folio.Variants {
	return p.variants[name]
}

// Lookup returns a named variant set and whether it exists.
func (p *Presets) Lookup(name string) (folio.Variants, bool) {
	v, ok := p.variants[name]
	return v, ok
}

// Spring returns a named spring transition.
func (p *Presets) Spring(name string) (folio.Transition, bool) {
	t, ok := p.springs[name]
	return t, ok
}

// Names returns every variant name in sorted order.
func (p *Presets) Names() []string {
	return sortedKeys(p.variants)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
