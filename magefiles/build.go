//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Compiles every GLSL shader under assets/shaders with glslc to catch
// errors before the designer picks the file up.
func (Build) Shaders() error {
	return validateShaders()
}

// Builds the prisma binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "prisma", "."), withStream()); err != nil {
		return err
	}
	return nil
}

func validateShaders() error {
	entries, err := os.ReadDir("assets/shaders")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if ext != ".vert" && ext != ".frag" {
			continue
		}
		src := filepath.Join("assets/shaders", entry.Name())
		out := filepath.Join(os.TempDir(), entry.Name()+".spv")
		if _, err := executeCmd("glslc", withArgs(src, "-o", out), withStream()); err != nil {
			return fmt.Errorf("shader %s failed validation: %w", src, err)
		}
	}
	return nil
}
