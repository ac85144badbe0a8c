package httpapi

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/config"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/gitinfo"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/profilestore"
	"github.com/IanSimon23/doccheck/internal/adapters/outbound/scanner"
	"github.com/IanSimon23/doccheck/internal/application"
	"github.com/IanSimon23/doccheck/internal/domain"
)

//go:embed static
var staticFiles embed.FS

// Server exposes one project over a JSON API plus the bundled editor page.
// Each request's pipeline is self-contained; the only shared state is a
// cached snapshot which Watch invalidates on file changes.
type Server struct {
	root     string
	cfg      domain.ToolConfig
	scanSvc  *application.ScanService
	valSvc   *application.ValidateService
	genSvc   *application.GenerateService
	profiles domain.ProfileStore

	mu     sync.Mutex
	cached *domain.ProjectInfo
}

func NewServer(root string, cfg domain.ToolConfig) (*Server, error) {
	cfgLoader := config.New()
	scanSvc := application.NewScanService(scanner.New(cfg.ExcludeDirs...), gitinfo.New())
	store := profilestore.New()

	return &Server{
		root:     root,
		cfg:      cfg,
		scanSvc:  scanSvc,
		valSvc:   application.NewValidateService(scanSvc, cfgLoader),
		genSvc:   application.NewGenerateService(scanSvc, store, cfgLoader),
		profiles: store,
	}, nil
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/project", s.handleProject)
	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/save", s.handleSave)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("PUT /api/config", s.handlePutConfig)
	mux.HandleFunc("GET /api/generate", s.handleGenerate)

	static, _ := fs.Sub(staticFiles, "static")
	mux.Handle("/", http.FileServer(http.FS(static)))
	return mux
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

// Watch starts an fsnotify watcher on the project root that drops the
// cached snapshot whenever files change. The returned func stops it.
func (s *Server) Watch() (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(s.root); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					return
				}
				s.invalidate()
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() { w.Close() }, nil
}

func (s *Server) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// snapshot returns the cached ProjectInfo, scanning on a cache miss.
func (s *Server) snapshot() (*domain.ProjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}
	info, err := s.scanSvc.Scan(s.root)
	if err != nil {
		return nil, err
	}
	s.cached = info
	return info, nil
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	info, err := s.snapshot()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

type documentRequest struct {
	Documentation string `json:"documentation"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	info, err := s.snapshot()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	findings := s.valSvc.ValidateText(req.Documentation, info)
	writeJSON(w, http.StatusOK, map[string]any{"findings": findings})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	dest := filepath.Join(s.root, s.cfg.DocsFile)
	if err := os.WriteFile(dest, []byte(req.Documentation), 0644); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"saved": s.cfg.DocsFile})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.profiles.Load(s.root)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg domain.ProfileConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.profiles.Save(s.root, cfg); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	doc, err := s.genSvc.Generate(s.root, r.URL.Query().Get("profile"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"documentation": doc})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
