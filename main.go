/*
Demo driver: packs a small scene, streams it to the broker, and, when
given a mesh file, re-sends the mesh every time the file changes.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/scenecast/assets"
	"github.com/spaghettifunk/scenecast/core"
	"github.com/spaghettifunk/scenecast/protocol"
	"github.com/spaghettifunk/scenecast/scene"
	"github.com/spaghettifunk/scenecast/testbed"
	"github.com/spaghettifunk/scenecast/transport"
)

func main() {
	configPath := flag.String("config", "scenecast.toml", "path to the TOML config")
	meshPath := flag.String("mesh", "", "optional mesh file to send and live-reload")
	flag.Parse()

	config, err := transport.LoadConfig(*configPath)
	if err != nil {
		core.LogWarn("falling back to default config: %s", err.Error())
	}
	if err := core.SetLogLevel(config.LogLevel); err != nil {
		core.LogWarn(err.Error())
	}

	publisher, err := transport.NewPublisher(config)
	if err != nil {
		core.LogFatal(err.Error())
	}
	defer publisher.Close()

	commands, err := testbed.DemoCommands(config.PathPrefix)
	if err != nil {
		core.LogFatal(err.Error())
	}
	if err := publisher.Publish(context.Background(), protocol.NewMessage(commands...)); err != nil {
		core.LogFatal(err.Error())
	}
	core.LogInfo("demo scene published under /%s", config.PathPrefix)

	if *meshPath == "" {
		return
	}

	sendMesh := func(path string) {
		geometry, err := assets.LoadMeshFile(path)
		if err != nil {
			core.LogError(err.Error())
			return
		}
		object := scene.NewMesh(geometry, scene.NewMeshMaterial(scene.MeshLambert, scene.DefaultMeshMaterialConfig()))
		command := &protocol.SetObject{Object: object, Path: []string{config.PathPrefix, "mesh"}}
		if err := publisher.Publish(context.Background(), protocol.NewMessage(command)); err != nil {
			core.LogError(err.Error())
		}
	}
	sendMesh(*meshPath)

	watcher, err := assets.NewWatcher(sendMesh)
	if err != nil {
		core.LogFatal(err.Error())
	}
	defer watcher.Close()
	if err := watcher.Add(*meshPath); err != nil {
		core.LogFatal(err.Error())
	}

	// republish on every change until interrupted
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh
}
