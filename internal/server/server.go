package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ssaunders/site/internal/applier"
	"github.com/ssaunders/site/internal/config"
	"github.com/ssaunders/site/internal/cycler"
	"github.com/ssaunders/site/internal/logging"
	"github.com/ssaunders/site/internal/page"
)

// pageRoutes maps request paths to template files under templates/.
var pageRoutes = map[string]string{
	"/":          "homepage.html",
	"/about-me":  "about-me.html",
	"/portfolio": "portfolio.html",
	"/contact":   "contact.html",
	"/services":  "services.html",
}

const homeRoute = "/"

// Server represents the site's web server.
type Server struct {
	port   int
	assets fs.FS
	log    *logging.Logger

	// HTTP server
	server   *http.Server
	listener net.Listener

	// Pages other than the homepage never change after load.
	pages map[string]*page.Document

	// homeMu guards home, which shuffles rewrite in place.
	homeMu  sync.Mutex
	home    *page.Document
	cycler  *cycler.Cycler
	applier *applier.Applier

	limiter *rateLimiter

	// Lifecycle
	mu      sync.RWMutex
	started bool
	cancel  context.CancelFunc
}

// Config holds server configuration options.
type Config struct {
	Port   int
	Assets fs.FS

	// Images is the cat picture cycle. An empty list is allowed; shuffles
	// then leave the homepage unchanged unless Placeholder is set.
	Images      []string
	Prefix      string
	ElementID   string
	Placeholder string

	ShuffleLimit RateLimitConfig
	Logger       *logging.Logger
}

// NewServer creates a new Server instance.
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Assets == nil {
		return nil, errors.New("assets are required")
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Default()
	}

	pages := make(map[string]*page.Document, len(pageRoutes))
	for route, file := range pageRoutes {
		doc, err := loadPage(cfg.Assets, file)
		if err != nil {
			return nil, err
		}
		pages[route] = doc
	}

	c := cycler.New(cfg.Images, cycler.WithLogger(log))
	opts := []applier.Option{
		applier.WithPlaceholder(cfg.Placeholder),
		applier.WithLogger(log),
	}
	if cfg.Prefix != "" {
		opts = append(opts, applier.WithPrefix(cfg.Prefix))
	}
	if cfg.ElementID != "" {
		opts = append(opts, applier.WithElementID(cfg.ElementID))
	}

	home := pages[homeRoute]
	delete(pages, homeRoute)

	return &Server{
		port:    cfg.Port,
		assets:  cfg.Assets,
		log:     log,
		pages:   pages,
		home:    home,
		cycler:  c,
		applier: applier.New(c, opts...),
		limiter: newRateLimiter(cfg.ShuffleLimit),
	}, nil
}

// NewServerFromConfig creates a new Server from a loaded site config.
func NewServerFromConfig(cfg *config.Config, assets fs.FS, log *logging.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("site config is required")
	}
	return NewServer(&Config{
		Port:        cfg.Server.Port,
		Assets:      assets,
		Images:      cfg.Cats.Images,
		Prefix:      cfg.Cats.Prefix,
		ElementID:   cfg.Cats.ElementID,
		Placeholder: cfg.Cats.Placeholder,
		ShuffleLimit: RateLimitConfig{
			MaxAttempts: cfg.Server.ShuffleLimit.MaxAttempts,
			Window:      cfg.Server.ShuffleLimit.Window,
		},
		Logger: log,
	})
}

func loadPage(assets fs.FS, file string) (*page.Document, error) {
	data, err := fs.ReadFile(assets, "templates/"+file)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", file, err)
	}
	doc, err := page.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %s: %w", file, err)
	}
	return doc, nil
}

// Port returns the configured port.
func (s *Server) Port() int {
	return s.port
}

// Start starts the HTTP server.
// The server runs until ctx is cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("server already started")
	}

	addr := fmt.Sprintf(":%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.started = true
	s.mu.Unlock()

	go s.cleanupLimiter(ctx)

	s.log.Info("server listening", "addr", listener.Addr().String())

	err = s.server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.server == nil {
		return nil
	}

	s.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	s.started = false
	return nil
}

// ListenAddr returns the actual address the server is listening on.
// Useful when port 0 is used to get an available port.
// Returns empty string if not started.
func (s *Server) ListenAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler returns the site's routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.setupRoutes(mux)
	return s.withLogging(mux)
}

// setupRoutes configures the HTTP routes.
func (s *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/shuffle-cats", s.handleShuffle)
	mux.Handle("/static/", http.FileServerFS(s.assets))
	mux.HandleFunc("/", s.handlePage)
}

// Shuffle advances the cat picture once and writes it into the homepage.
// It returns the new image path, or false if the homepage was left as is.
func (s *Server) Shuffle() (string, bool) {
	s.homeMu.Lock()
	defer s.homeMu.Unlock()
	return s.applier.Apply(s.home)
}

// CurrentImage returns the homepage cat picture's current path.
func (s *Server) CurrentImage() string {
	s.homeMu.Lock()
	defer s.homeMu.Unlock()

	el, ok := s.home.Find(s.applier.ElementID())
	if !ok {
		return ""
	}
	src, _ := el.Attribute(applier.DefaultAttribute)
	return src
}

// Cursor returns the position of the next cat picture in the cycle.
func (s *Server) Cursor() int {
	return s.cycler.Cursor()
}

// cleanupLimiter periodically drops idle clients from the rate limiter.
func (s *Server) cleanupLimiter(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.limiter.cleanup()
		}
	}
}

type shuffleResponse struct {
	Src       string `json:"src"`
	RequestID string `json:"request_id"`
}

// handleShuffle handles POST /shuffle-cats.
func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()
	log := s.log.With("request_id", requestID)
	w.Header().Set("X-Request-ID", requestID)

	ip := extractIP(r)
	result := s.limiter.check(ip)
	if !result.Allowed {
		log.Warn("shuffle rate limited", "ip", ip, "attempts", result.Attempts, "retry_after", result.RetryAfter)
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(result.RetryAfter.Seconds()))))
		http.Error(w, "too many shuffles", http.StatusTooManyRequests)
		return
	}

	src, ok := s.Shuffle()
	if !ok {
		log.Warn("shuffle left homepage unchanged")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	log.Debug("shuffled cats", "src", src, "ip", ip)

	body, err := json.Marshal(shuffleResponse{Src: src, RequestID: requestID})
	if err != nil {
		log.Error("failed to encode shuffle response", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// handlePage handles GET for the site's pages.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	var err error
	if r.URL.Path == homeRoute {
		s.homeMu.Lock()
		err = s.home.Render(&buf)
		s.homeMu.Unlock()
	} else if doc, ok := s.pages[r.URL.Path]; ok {
		err = doc.Render(&buf)
	} else {
		http.NotFound(w, r)
		return
	}

	if err != nil {
		s.log.Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs each request at debug level.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
