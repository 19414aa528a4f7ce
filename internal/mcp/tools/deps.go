package tools

import (
	"github.com/timf34/TinderDataAdventures/internal/config"
	"github.com/timf34/TinderDataAdventures/internal/dataset"
	"github.com/timf34/TinderDataAdventures/internal/query"
)

// Deps contains all dependencies needed by tool handlers. The dataset is
// loaded once at startup; tools read it, never mutate it.
type Deps struct {
	Config  *config.Config
	Raw     any              // parsed export, numbers as json.Number
	Records []dataset.Record // typed view of the same export
	Query   *query.Engine
}
