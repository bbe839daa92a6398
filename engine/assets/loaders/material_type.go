package loaders

import (
	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/descriptor"
)

type MaterialTypeLoader struct{}

func (ml *MaterialTypeLoader) Load(fullPath, name string) (*assets.Resource, error) {
	mt, err := descriptor.DecodeMaterialTypeFile(fullPath)
	if err != nil {
		return nil, err
	}
	return &assets.Resource{
		Type:     assets.ResourceTypeMaterialType,
		Name:     name,
		FullPath: fullPath,
		Data:     mt,
	}, nil
}
