package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	profile, ok := matchProfileName(*profileNameFlag)
	if !ok {
		log.Fatalf("unknown bathymetry profile %q (known: %s)", *profileNameFlag, strings.Join(profileNames(), ", "))
	}
	log.Printf("bathymetry profile: %s", profile.name)

	g := newGame(profile)

	if *recordProfileFlag {
		stop, err := startProfileRecording("cpu.pprof")
		if err != nil {
			log.Fatalf("profile recording failed: %v", err)
		}
		defer stop()
		time.AfterFunc(recordProfileDuration, stop)
		log.Printf("recording CPU profile for %s", recordProfileDuration)
	}

	ebiten.SetWindowSize(fieldW*renderScale, fieldH*renderScale)
	ebiten.SetWindowTitle("shorebreak")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
