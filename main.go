package main

import (
	"flag"
	"log"

	"github.com/gonewx/exhibit/pkg/app"
	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	stage := flag.String("stage", "", "start directly at the named stage (e.g. gallery)")
	skipIntro := flag.Bool("skip-intro", false, "skip the intro timeline and resume the walkthrough")
	flag.Parse()

	// 嵌入资源必须在任何资源加载之前初始化
	embedded.Init(assetsFS)

	exhibitApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Stage:     *stage,
		SkipIntro: *skipIntro,
	})
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer exhibitApp.Shutdown()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Exhibit")

	if err := ebiten.RunGame(exhibitApp); err != nil {
		log.Fatal(err)
	}
}
