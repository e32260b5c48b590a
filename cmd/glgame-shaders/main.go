package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fosdem/glgame/lib/config"
	"github.com/fosdem/glgame/lib/rendering/shaders"
)

func main() {
	cfgPath := flag.String("config", "", "Config file to take the GL version and shader list from (default: the bundled one)")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *cfgPath == "" {
		cfg, err = config.Default()
	} else {
		cfg, err = config.Parse(*cfgPath)
	}
	if err != nil {
		fmt.Printf("Config invalid: %s\n", err)
		os.Exit(1)
	}

	shaderer, err := shaders.NewShaderer(&shaders.ShaderData{GLSLVersion: cfg.Window.GL.GLSLVersion()})
	if err != nil {
		log.Fatalf("could not get shaders: %s", err)
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, stage := range cfg.Stages() {
			names = append(names, stage.File)
		}
	}

	for _, name := range names {
		source, err := shaderer.Source(name)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("// ---- %s\n%s\n", name, source)
	}
}
