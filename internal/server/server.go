package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"
)

type Action string

type Method string

const (
	Data Action = "data"
	Api  Action = "api"

	GET  Method = "GET"
	POST Method = "POST"

	JsonType = "application/json"
	PngType  = "image/png"
)

type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Action Action
	Path   string
	Method Method
	Type   string
	Exec   Handler
}

type Server struct {
	name     string
	port     int
	debug    bool
	shutdown time.Duration
	routes   []Route
	mounts   map[string]http.Handler
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:     name,
		port:     port,
		shutdown: 5 * time.Second,
		routes:   make([]Route, 0),
		mounts:   make(map[string]http.Handler),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// WithShutdown sets the time allowed for in-flight requests on shutdown
func (s *Server) WithShutdown(d time.Duration) *Server {
	s.shutdown = d
	return s
}

// AddRoute adds a json route to the server
func (s *Server) AddRoute(method Method, action Action, path string, exec Handler) *Server {
	s.routes = append(s.routes, Route{
		Action: action,
		Path:   path,
		Method: method,
		Type:   JsonType,
		Exec:   exec,
	})
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Mount serves the given handler under the path as is.
func (s *Server) Mount(path string, handler http.Handler) *Server {
	s.mounts[path] = handler
	return s
}

// Handler builds the router of all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, route := range s.routes {
		if route.Path != "" {
			mux.HandleFunc(fmt.Sprintf("/%s/%s", route.Action, route.Path), s.handle(route))
		} else {
			mux.HandleFunc(fmt.Sprintf("/%s", route.Action), s.handle(route))
		}
	}
	for path, handler := range s.mounts {
		mux.Handle(path, handler)
	}
	return mux
}

func (s *Server) handle(route Route) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if Method(r.Method) != route.Method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		b, code, err := route.Exec(r)
		if err != nil {
			s.error(w, err)
		} else {
			if code == 0 {
				code = http.StatusOK
			}
			if route.Type != "" {
				w.Header().Set("Content-Type", route.Type)
			}
			s.code(w, b, code)
		}
		if s.debug {
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Float64("duration", time.Since(start).Seconds()).
				Msg("completed request")
		}
	}
}

// Run starts the server and blocks until the context is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	errs := make(chan error, 1)
	go func() {
		log.Warn().Str("server", s.name).Int("port", s.port).Msg("starting server")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("could not start server: %w", err)
	case <-ctx.Done():
		shutdown, cnl := context.WithTimeout(context.Background(), s.shutdown)
		defer cnl()
		log.Warn().Str("server", s.name).Msg("stopping server")
		return srv.Shutdown(shutdown)
	}
}

func (s *Server) code(w http.ResponseWriter, b []byte, code int) {
	w.WriteHeader(code)
	s.respond(w, b)
}

func (s *Server) respond(w http.ResponseWriter, b []byte) {
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, model.InvalidArgumentErr) {
		code = http.StatusBadRequest
	}
	log.Error().Err(err).Int("code", code).Msg("error for http request")
	s.code(w, []byte(err.Error()), code)
}

// Live is the liveness route.
func Live() Route {
	return Route{
		Action: Data,
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// ReadJson reads the request body into v.
func ReadJson(r *http.Request, debug bool, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if debug {
		log.Info().
			Str("url", fmt.Sprintf("%+v", r.URL)).
			Str("remote-address", r.RemoteAddr).
			Str("method", r.Method).
			Str("body", string(body)).
			Msg("received payload")
	}
	if len(body) > 0 {
		err = json.Unmarshal(body, v)
		if err != nil {
			return fmt.Errorf("could not parse body: %s: %w", err.Error(), model.InvalidArgumentErr)
		}
	}
	return nil
}
