// Package catalog keeps the registry of assemblable OMOP CDM catalogs.
//
// Each CDM release lives in its own subpackage (cdm531, cdm54, cdm600) and
// registers itself from init(). Import pkg/catalog/all to register every
// release and the bundled overlays.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/leapstack-labs/omopcdm/pkg/compose"
	"github.com/leapstack-labs/omopcdm/pkg/core"
)

// Definition describes a selectable catalog: a base release plus the
// overlays that turn it into the named variant.
type Definition struct {
	Name        string
	Description string
	Base        func() *core.Catalog
	Overlays    func() []compose.Overlay
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Definition)
)

// Register adds a catalog definition to the registry.
// Called by catalog packages in their init() functions.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[def.Name] = def
}

// Get retrieves a catalog definition by name.
func Get(name string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// List returns all registered catalog names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all registered definitions sorted by name.
func Definitions() []Definition {
	names := List()
	out := make([]Definition, 0, len(names))
	for _, n := range names {
		d, _ := Get(n)
		out = append(out, d)
	}
	return out
}

// Load returns a fresh base catalog and overlay list for a registered name.
func Load(name string) (*core.Catalog, []compose.Overlay, error) {
	def, ok := Get(name)
	if !ok {
		return nil, nil, &UnknownCatalogError{Name: name, Available: List()}
	}
	var overlays []compose.Overlay
	if def.Overlays != nil {
		overlays = def.Overlays()
	}
	return def.Base(), overlays, nil
}

// Assemble builds the schema of a registered catalog, applying extra overlays
// after the catalog's own. The schema is labelled with the registered name.
func Assemble(name string, extra ...compose.Overlay) (*core.Schema, error) {
	base, overlays, err := Load(name)
	if err != nil {
		return nil, err
	}
	base.Name = name
	return compose.Assemble(base, append(overlays, extra...)...)
}

// UnknownCatalogError is returned when an unknown catalog is requested.
type UnknownCatalogError struct {
	Name      string
	Available []string
}

func (e *UnknownCatalogError) Error() string {
	return fmt.Sprintf("unknown catalog %q\nAvailable catalogs: %v\nHint: Check catalog in omopcdm.yaml", e.Name, e.Available)
}
