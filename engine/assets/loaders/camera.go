package loaders

import (
	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/descriptor"
)

type CameraLoader struct{}

func (cl *CameraLoader) Load(fullPath, name string) (*assets.Resource, error) {
	cs, err := descriptor.DecodeCameraSettingsFile(fullPath)
	if err != nil {
		return nil, err
	}
	return &assets.Resource{
		Type:     assets.ResourceTypeCamera,
		Name:     name,
		FullPath: fullPath,
		Data:     cs,
	}, nil
}
