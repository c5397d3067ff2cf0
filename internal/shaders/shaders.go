// Package shaders holds the GLSL sources of the renderer, embedded at build time
// and looked up by fixed identifiers.
package shaders

import (
	"embed"
	"sort"

	"github.com/pkg/errors"
)

// Identifiers of the shader pair used for the pyramids.
const (
	PyramidVertex   = "pyramid-vertex"
	PyramidFragment = "pyramid-fragment"
)

//go:embed glsl/*.vert glsl/*.frag
var files embed.FS

var index = map[string]string{
	PyramidVertex:   "glsl/pyramid.vert",
	PyramidFragment: "glsl/pyramid.frag",
}

// Lookup returns the source text registered under id.
func Lookup(id string) (string, error) {
	name, ok := index[id]
	if !ok {
		return "", errors.Errorf("unknown shader %q", id)
	}
	data, err := files.ReadFile(name)
	if err != nil {
		return "", errors.Wrapf(err, "shader %q", id)
	}
	return string(data), nil
}

// IDs lists the registered identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
