// Package loaders implements the per-type asset loaders registered with the
// asset manager. Each loader parses one file and reports errors scoped to
// that file; a malformed asset never takes down its siblings.
package loaders

import (
	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/descriptor"
)

type ObjectLoader struct{}

func (ol *ObjectLoader) Load(fullPath, name string) (*assets.Resource, error) {
	obj, err := descriptor.DecodeObjectFile(fullPath)
	if err != nil {
		return nil, err
	}
	return &assets.Resource{
		Type:     assets.ResourceTypeObject,
		Name:     name,
		FullPath: fullPath,
		Data:     obj,
	}, nil
}
