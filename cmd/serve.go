package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jwhearn/tunetext/config"
	"github.com/jwhearn/tunetext/constants"
	"github.com/jwhearn/tunetext/db"
	"github.com/jwhearn/tunetext/logger"
	"github.com/jwhearn/tunetext/model"
	"github.com/jwhearn/tunetext/musicxml"
	"github.com/jwhearn/tunetext/score"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP: POST /convert and GET /tunes/{name}`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// HandleConvert converts a MusicXML request body to notation text.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	tree, err := musicxml.ParseBytes(body)
	if err != nil {
		logger.Error("parse failed", "req", reqID, "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tune, err := score.Build(tree)
	if err != nil {
		logger.Error("build failed", "req", reqID, "err", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info("converted score", "req", reqID, "measures", len(tune.Measures))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, newRenderer().Render(tune))
}

// HandleTune converts a score from the media dir and responds with JSON,
// enriched with metadata when the db knows the file.
func HandleTune(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	name := mux.Vars(r)["name"]

	out, err := Convert(filepath.Join(constants.GetMediaDir(), name))
	if err != nil {
		logger.Error("tune lookup failed", "req", reqID, "name", name, "err", err)
		status := http.StatusBadRequest
		if errors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	resp := model.TuneResponse{Name: name, Notation: out}
	metadatas, err := db.GetTuneMetadatas([]string{name})
	if err != nil {
		logger.Warn("metadata lookup failed", "req", reqID, "err", err)
	} else if m, ok := metadatas[name]; ok {
		resp.Metadata = &m
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	router.HandleFunc("/tunes/{name}", HandleTune).Methods("GET")

	addr := config.GetString("serve.addr")
	fmt.Printf("Listening on %v\n", addr)
	logger.Fatal("server stopped", "err", http.ListenAndServe(addr, cors.Default().Handler(router)))
}
