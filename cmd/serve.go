package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/melodeon/constants"
	"github.com/jsphweid/melodeon/db"
	"github.com/jsphweid/melodeon/gen"
	"github.com/jsphweid/melodeon/melody"
	"github.com/jsphweid/melodeon/model"
	"github.com/jsphweid/melodeon/note"
	"github.com/jsphweid/melodeon/render"
	"github.com/jsphweid/melodeon/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

// renders maps ids handed out by HandleRender to wav paths. In-memory only;
// restarting the server forgets old renders even though the files stay.
// Handlers run concurrently, so every access holds rendersMu.
var (
	renders   = make(map[string]string)
	rendersMu sync.Mutex
)

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves melody rendering over http",
	Long:  `Serves melody rendering over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func specsToMelody(specs []model.NoteSpec) *melody.Melody {
	notes := make([]note.Note, 0, len(specs))
	for _, s := range specs {
		notes = append(notes, note.New(s.Frequency, s.Offset, s.Duration))
	}
	return melody.New(notes)
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Could not read request body", 400)
		return
	}

	var input model.RenderRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	m := specsToMelody(input.Notes)
	id := uuid.New().String()
	os.MkdirAll(constants.GetRenderDir(), 0777)
	path := filepath.Join(constants.GetRenderDir(), id+".wav")

	f, err := os.Create(path)
	if err != nil {
		writeError(w, "Could not create render file: "+err.Error(), 500)
		return
	}
	defer f.Close()

	if err := render.WriteWAV(f, m); err != nil {
		writeError(w, "Could not render: "+err.Error(), 500)
		return
	}

	rendersMu.Lock()
	renders[id] = path
	rendersMu.Unlock()
	json.NewEncoder(w).Encode(model.RenderResponse{Id: id})
}

func HandleGetRender(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rendersMu.Lock()
	path, ok := renders[id]
	rendersMu.Unlock()
	if !ok {
		writeError(w, "No such render", 404)
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	http.ServeFile(w, r, path)
}

func HandleListRenders(w http.ResponseWriter, r *http.Request) {
	rendersMu.Lock()
	ids := util.GetKeys(renders)
	rendersMu.Unlock()
	sort.Strings(ids)
	json.NewEncoder(w).Encode(ids)
}

func HandleSource(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Could not read request body", 400)
		return
	}

	var input model.SourceRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}
	if input.Name == "" {
		input.Name = "MY_MELODY"
	}
	if input.Lang == "" {
		input.Lang = "cpp"
	}

	m := specsToMelody(input.Notes)
	var src string
	switch input.Lang {
	case "cpp":
		src, err = gen.CppLiteral(m, input.Name)
	case "go":
		src, err = gen.GoLiteral(m, input.Name)
	default:
		writeError(w, "Unknown lang: "+input.Lang, 400)
		return
	}
	if err != nil {
		writeError(w, err.Error(), 400)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, src)
}

func HandleMetadata(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	metadatas := db.GetMelodyMetadatas([]string{name})
	md, ok := metadatas[name]
	if !ok {
		writeError(w, "No metadata for melody", 404)
		return
	}
	json.NewEncoder(w).Encode(md)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/render", HandleListRenders).Methods("GET")
	router.HandleFunc("/render/{id}", HandleGetRender).Methods("GET")
	router.HandleFunc("/source", HandleSource).Methods("POST")
	router.HandleFunc("/metadata/{name}", HandleMetadata).Methods("GET")
	log.Fatal(http.ListenAndServe(":8080", cors.Default().Handler(router)))
}
