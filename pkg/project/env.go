package project

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/stamp/pkg/config"
	"github.com/arthur-debert/stamp/pkg/scaffold"
	"github.com/arthur-debert/stamp/pkg/types"
	"github.com/google/uuid"
)

// Env carries what a scaffold needs from the outside world
type Env struct {
	FS       types.FS
	Output   types.Output
	Prompter types.Prompter
	Config   *config.Config
	Bundles  fs.FS
	Renderer scaffold.Renderer
	// Version is exposed to templates as stamp_version.
	Version string
	// NewID returns a random identifier; devfile names take its first 8 chars.
	NewID func() string
}

func (e *Env) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}

// baseData is the template data every scaffold starts from.
func (e *Env) baseData(extra map[string]interface{}) scaffold.Data {
	return scaffold.Data(e.Config.GlobalTemplateVars()).
		With(map[string]interface{}{"stamp_version": e.Version}).
		With(extra)
}

// uniqueName builds "<name>-<8 random chars>" for devfile metadata names.
func (e *Env) uniqueName(name string) string {
	id := e.newID()
	if len(id) > 8 {
		id = id[:8]
	}
	return name + "-" + id
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
