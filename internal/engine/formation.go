package engine

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/tatianab/asciiliens/internal/models"
)

//go:embed formations/*.yaml
var formationFS embed.FS

// DefaultFormation is used when no formation is configured.
const DefaultFormation = "classic"

// BuiltinFormations lists the names of the embedded formations.
func BuiltinFormations() []string {
	entries, err := formationFS.ReadDir("formations")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadFormation resolves ref to a formation. An empty ref or the name of a
// built-in formation loads the embedded file; anything else is read from disk.
func LoadFormation(ref string) (*models.Formation, error) {
	if ref == "" {
		ref = DefaultFormation
	}
	data, err := formationFS.ReadFile(path.Join("formations", ref+".yaml"))
	if err == nil {
		return models.ParseFormation(data)
	}
	f, err := models.LoadFormation(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load formation %q: %w", ref, err)
	}
	return f, nil
}
