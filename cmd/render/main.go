package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/calvras/genrealmvoronoi"
)

var (
	seed             int64 = 12345
	numKingdoms            = 5
	numPoints              = 2000
	citiesPerKingdom       = 2
	scale                  = 1.0
	out                    = "map.png"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the world seed")
	flag.IntVar(&numKingdoms, "num_kingdoms", numKingdoms, "number of kingdoms")
	flag.IntVar(&numPoints, "num_points", numPoints, "number of cells")
	flag.IntVar(&citiesPerKingdom, "cities_per_kingdom", citiesPerKingdom, "cities per kingdom")
	flag.Float64Var(&scale, "scale", scale, "render scale")
	flag.StringVar(&out, "out", out, "output file")
}

func main() {
	flag.Parse()

	m, err := genrealmvoronoi.NewMap(seed, numKingdoms, numPoints, citiesPerKingdom)
	if err != nil {
		log.Fatal(err)
	}
	for _, k := range m.Kingdoms {
		k.Log()
	}

	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, m.RenderImage(scale)); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", out)
}
