/*
Prisma is a live material designer: it watches a directory of declarative
object, material type and camera files and keeps the rendered scene in sync
as they are edited.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/prisma/engine"
	"github.com/spaghettifunk/prisma/engine/config"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/renderer"
)

func main() {
	cfg, err := config.Load("prisma.toml")
	if err != nil {
		panic(err)
	}

	e, err := engine.New(cfg, renderer.NewNullBackend())
	if err != nil {
		panic(err)
	}

	if err := e.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		sig := <-sigCh
		core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, sig, core.EventContext{})
	}()

	if err := e.Run(); err != nil {
		panic(err)
	}
}
