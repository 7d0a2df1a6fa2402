package main

import (
	"encoding/json"
	"flag"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/calvras/genrealmvoronoi"
)

var worldmap *genrealmvoronoi.Map

var (
	seed             int64 = 12345
	numKingdoms            = 5
	numPoints              = 2000
	citiesPerKingdom       = 2
	addr                   = ":3333"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the world seed")
	flag.IntVar(&numKingdoms, "num_kingdoms", numKingdoms, "number of kingdoms")
	flag.IntVar(&numPoints, "num_points", numPoints, "number of cells")
	flag.IntVar(&citiesPerKingdom, "cities_per_kingdom", citiesPerKingdom, "cities per kingdom")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	m, err := genrealmvoronoi.NewMap(seed, numKingdoms, numPoints, citiesPerKingdom)
	if err != nil {
		log.Fatal(err)
	}
	worldmap = m

	router := mux.NewRouter()
	router.HandleFunc("/geojson_cells", geoJSONHandler(worldmap.GetGeoJSONCells))
	router.HandleFunc("/geojson_borders", geoJSONHandler(worldmap.GetGeoJSONBorders))
	router.HandleFunc("/geojson_coastline", geoJSONHandler(worldmap.GetGeoJSONCoastline))
	router.HandleFunc("/geojson_settlements", geoJSONHandler(worldmap.GetGeoJSONSettlements))
	router.HandleFunc("/geojson_traderoutes", geoJSONHandler(worldmap.GetGeoJSONTradeRoutes))
	router.HandleFunc("/map.png", mapHandler)
	router.HandleFunc("/state", stateHandler).Methods("GET")
	router.HandleFunc("/tick", tickHandler).Methods("POST")
	router.HandleFunc("/season", seasonHandler).Methods("POST")
	router.HandleFunc("/conflict/start/{attacker}/{defender}", startConflictHandler).Methods("POST")
	router.HandleFunc("/conflict/{id}/round", battleRoundHandler).Methods("POST")
	router.HandleFunc("/conflict/{id}/resolve/{outcome}", forceResolveHandler).Methods("POST")
	router.HandleFunc("/conflict/{id}/apply", applyOutcomeHandler).Methods("POST")
	router.HandleFunc("/conflict/{id}/clear", clearConflictHandler).Methods("POST")
	log.Fatal(http.ListenAndServe(addr, router))
}

func geoJSONHandler(get func() ([]byte, error)) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		data, err := get()
		if err != nil {
			http.Error(res, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Header().Set("Content-Type", "application/json")
		res.Header().Set("Content-Length", strconv.Itoa(len(data)))
		res.Write(data)
	}
}

func mapHandler(res http.ResponseWriter, req *http.Request) {
	img := worldmap.RenderImage(1.0)
	res.Header().Set("Content-Type", "image/png")
	if err := png.Encode(res, img); err != nil {
		log.Println(err)
	}
}

func stateHandler(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(worldmap.Snapshot()); err != nil {
		log.Println(err)
	}
}

func tickHandler(res http.ResponseWriter, req *http.Request) {
	worldmap.Tick()
	stateHandler(res, req)
}

func seasonHandler(res http.ResponseWriter, req *http.Request) {
	worldmap.AdvanceSeason()
	stateHandler(res, req)
}

// pathInt pulls an integer variable out of the route, -1 if absent.
func pathInt(req *http.Request, key string) int {
	v, err := strconv.Atoi(mux.Vars(req)[key])
	if err != nil {
		return -1
	}
	return v
}

func startConflictHandler(res http.ResponseWriter, req *http.Request) {
	attacker := pathInt(req, "attacker")
	defender := pathInt(req, "defender")
	cells := worldmap.SeedContestedCells(attacker, defender)
	c := worldmap.StartConflict(attacker, defender, cells)
	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(c); err != nil {
		log.Println(err)
	}
}

func battleRoundHandler(res http.ResponseWriter, req *http.Request) {
	worldmap.ResolveBattleRound(pathInt(req, "id"))
	stateHandler(res, req)
}

func forceResolveHandler(res http.ResponseWriter, req *http.Request) {
	id := pathInt(req, "id")
	var outcome genrealmvoronoi.ConflictOutcome
	switch mux.Vars(req)["outcome"] {
	case "attacker":
		outcome = genrealmvoronoi.OutcomeAttackerVictory
	case "defender":
		outcome = genrealmvoronoi.OutcomeDefenderVictory
	case "retreat":
		outcome = genrealmvoronoi.OutcomeRetreat
	default:
		http.Error(res, "unknown outcome", http.StatusBadRequest)
		return
	}
	worldmap.ForceResolveConflict(id, outcome)
	stateHandler(res, req)
}

func applyOutcomeHandler(res http.ResponseWriter, req *http.Request) {
	worldmap.ApplyConflictOutcome(pathInt(req, "id"))
	stateHandler(res, req)
}

func clearConflictHandler(res http.ResponseWriter, req *http.Request) {
	worldmap.ClearConflict(pathInt(req, "id"))
	stateHandler(res, req)
}
