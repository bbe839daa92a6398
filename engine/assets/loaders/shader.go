package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/prisma/engine/assets"
)

// ShaderStage identifies the pipeline stage of a shader source file.
type ShaderStage int

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
)

func (s ShaderStage) String() string {
	if s == ShaderStageVertex {
		return "vertex"
	}
	return "fragment"
}

// ShaderSource is the payload of a loaded shader asset.
type ShaderSource struct {
	Stage  ShaderStage
	Source string
}

type ShaderLoader struct{}

func (sl *ShaderLoader) Load(fullPath, name string) (*assets.Resource, error) {
	var stage ShaderStage
	switch filepath.Ext(fullPath) {
	case ".vert":
		stage = ShaderStageVertex
	case ".frag":
		stage = ShaderStageFragment
	default:
		return nil, fmt.Errorf("unknown shader stage for %s", name)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}
	source := string(data)
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("shader %s is empty", name)
	}

	return &assets.Resource{
		Type:     assets.ResourceTypeShader,
		Name:     name,
		FullPath: fullPath,
		Data:     &ShaderSource{Stage: stage, Source: source},
	}, nil
}
