package naming

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Despensa_Go/internal/domain"
	"github.com/osse101/Despensa_Go/internal/validation"
)

// Resolver maps free-text unit spellings to canonical units
type Resolver interface {
	// ResolveUnit returns the canonical unit for a tag or configured alias
	ResolveUnit(raw string) (domain.Unit, error)

	// Aliases returns the configured aliases per canonical unit
	Aliases() map[domain.Unit][]string

	// Reload re-reads the alias file. On failure the previous aliases stay active.
	Reload() error
}

type unitsFile struct {
	Version string              `yaml:"version"`
	Schema  string              `yaml:"schema"`
	Units   map[string][]string `yaml:"units"`
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: normalized alias -> canonical unit
	lookup map[string]domain.Unit

	// Aliases as written in the file, keyed by canonical unit
	aliases map[domain.Unit][]string

	unitsPath string
	validator validation.SchemaValidator
}

// NewResolver creates a unit resolver backed by the YAML file at unitsPath.
// A missing file is not an error: canonical tags always resolve. When
// validator is nil the file is only checked structurally.
func NewResolver(unitsPath string, validator validation.SchemaValidator) (Resolver, error) {
	r := &resolver{
		lookup:    canonicalLookup(),
		aliases:   make(map[domain.Unit][]string),
		unitsPath: unitsPath,
		validator: validator,
	}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// ResolveUnit normalizes raw and looks it up among canonical tags and aliases
func (r *resolver) ResolveUnit(raw string) (domain.Unit, error) {
	key := Normalize(raw)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.lookup[key]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownUnit, raw)
}

// Aliases returns a copy of the configured aliases
func (r *resolver) Aliases() map[domain.Unit][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[domain.Unit][]string, len(r.aliases))
	for u, list := range r.aliases {
		out[u] = append([]string(nil), list...)
	}
	return out
}

// Reload reloads the alias configuration
func (r *resolver) Reload() error {
	if r.unitsPath == "" {
		return nil
	}

	lookup, aliases, err := r.load()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoadUnits, err)
	}

	r.mu.Lock()
	r.lookup = lookup
	r.aliases = aliases
	r.mu.Unlock()
	return nil
}

func (r *resolver) load() (map[string]domain.Unit, map[domain.Unit][]string, error) {
	lookup := canonicalLookup()
	aliases := make(map[domain.Unit][]string)

	data, err := os.ReadFile(r.unitsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return lookup, aliases, nil
		}
		return nil, nil, err
	}

	if r.validator != nil {
		if err := r.validator.ValidateYAML(data, UnitsSchemaPath); err != nil {
			return nil, nil, err
		}
	}

	var cfg unitsFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf(ErrContextFailedToParseConfig+": %w", r.unitsPath, err)
	}
	if cfg.Version == "" {
		return nil, nil, fmt.Errorf(ErrMsgMissingVersionField, r.unitsPath)
	}
	if cfg.Schema != SchemaUnitAliases {
		return nil, nil, fmt.Errorf(ErrMsgInvalidSchema, r.unitsPath, SchemaUnitAliases, cfg.Schema)
	}

	// Sorted so duplicate errors are reported deterministically
	tags := make([]string, 0, len(cfg.Units))
	for tag := range cfg.Units {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		unit, err := domain.ParseUnit(tag)
		if err != nil {
			return nil, nil, err
		}
		for _, alias := range cfg.Units[tag] {
			key := Normalize(alias)
			if existing, ok := lookup[key]; ok && existing != unit {
				return nil, nil, fmt.Errorf(ErrMsgDuplicateAlias, alias, existing, unit)
			}
			lookup[key] = unit
		}
		aliases[unit] = append([]string(nil), cfg.Units[tag]...)
	}

	return lookup, aliases, nil
}

func canonicalLookup() map[string]domain.Unit {
	lookup := make(map[string]domain.Unit)
	for _, u := range domain.KnownUnits() {
		lookup[string(u)] = u
	}
	return lookup
}
