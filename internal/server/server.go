package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/purefictiongames/Warren-sub010/pkg/scene"
	"github.com/purefictiongames/Warren-sub010/pkg/spec"
	"github.com/purefictiongames/Warren-sub010/pkg/stats"
	"github.com/purefictiongames/Warren-sub010/pkg/validation"
)

// Server is the local development server for interactive layout work.
// It keeps the last generated layout in memory and regenerates on
// request, pushing every new layout to all websocket subscribers.
type Server struct {
	projectPath string
	port        int
	hub         *hub

	mu     sync.Mutex
	spec   *spec.WarrenSpec
	layout *scene.Layout
	report *validation.Report
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		hub:         newHub(),
	}
}

// Start generates an initial layout and launches the HTTP server.
func (s *Server) Start() error {
	if err := s.regenerate(generateRequest{}); err != nil {
		return fmt.Errorf("initial generation: %w", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/layout", s.handleLayout)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Warren server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// generateRequest carries the overrides a client may send when asking
// for a fresh layout, either over POST /api/generate or as a websocket
// message. Empty fields leave the project file's values in place.
type generateRequest struct {
	Seed   string `json:"seed"`
	Preset string `json:"preset"`
}

// stateEnvelope is the message pushed to subscribers and returned from
// POST /api/generate.
type stateEnvelope struct {
	Type       string             `json:"type"`
	Layout     *scene.Layout      `json:"layout"`
	Validation *validation.Report `json:"validation"`
}

// regenerate reloads the project spec, applies any overrides, runs the
// generator, and broadcasts the result.
func (s *Server) regenerate(req generateRequest) error {
	ws, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return err
	}
	if err := spec.ApplyOverrides(ws, req.Seed, req.Preset); err != nil {
		return err
	}

	l, report := scene.Generate(ws)
	if l != nil {
		report.Merge(scene.ValidateLayout(l))
	}

	s.mu.Lock()
	s.spec = ws
	s.layout = l
	s.report = report
	s.mu.Unlock()

	if l != nil {
		s.broadcast()
	}
	return nil
}

// broadcast pushes the current state to all websocket subscribers.
func (s *Server) broadcast() {
	data, err := json.Marshal(s.snapshot())
	if err != nil {
		log.Printf("marshaling state: %v", err)
		return
	}
	s.hub.broadcast(data)
	if n := s.hub.count(); n > 0 {
		log.Printf("Broadcast layout to %d subscriber(s)", n)
	}
}

func (s *Server) snapshot() stateEnvelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stateEnvelope{Type: "layout", Layout: s.layout, Validation: s.report}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Warren</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Warren</h1>
<p>No renderer embedded. Fetch <code>/api/layout</code> for the JSON scene, or subscribe on <code>/ws</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	l := s.layout
	s.mu.Unlock()
	if l == nil {
		writeError(w, http.StatusConflict, "no layout: spec failed validation")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	l := s.layout
	s.mu.Unlock()
	if l == nil {
		writeError(w, http.StatusConflict, "no layout: spec failed validation")
		return
	}
	writeJSON(w, http.StatusOK, stats.Summarize(l))
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	report := s.report
	s.mu.Unlock()
	if report == nil {
		report = validation.NewReport()
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	ws := s.spec
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, ws)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decoding request: %v", err))
		return
	}
	if err := s.regenerate(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.snapshot())
}

// handleWS upgrades the connection, sends the current state, and then
// treats every incoming message as a generateRequest.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("ws accept: %v", err)
		return
	}
	s.hub.add(conn)

	if data, err := json.Marshal(s.snapshot()); err == nil {
		_ = conn.Write(context.Background(), websocket.MessageText, data)
	}

	go func(c *websocket.Conn) {
		defer s.hub.remove(c)
		defer c.Close(websocket.StatusNormalClosure, "")
		for {
			_, data, err := c.Read(context.Background())
			if err != nil {
				return
			}
			var req generateRequest
			if err := json.Unmarshal(data, &req); err != nil {
				log.Printf("ws message: %v", err)
				continue
			}
			if err := s.regenerate(req); err != nil {
				log.Printf("ws regenerate: %v", err)
			}
		}
	}(conn)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
