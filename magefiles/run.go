//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Validates the shaders and starts the designer.
func (Run) Designer() error {
	if err := validateShaders(); err != nil {
		return err
	}
	fmt.Println("Run designer...")
	if _, err := executeCmd("go", withArgs("run", "main.go"), withStream()); err != nil {
		return err
	}
	return nil
}
