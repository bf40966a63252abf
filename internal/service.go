package iris

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/drakos74/iris-knn/internal/buffer"
	"github.com/drakos74/iris-knn/internal/dataset"
	"github.com/drakos74/iris-knn/internal/graph"
	"github.com/drakos74/iris-knn/internal/locale"
	"github.com/drakos74/iris-knn/internal/math/ml"
	"github.com/drakos74/iris-knn/internal/metrics"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/drakos74/iris-knn/internal/server"
	"github.com/rs/zerolog/log"
)

// ClassifyRequest is the payload of a classification request.
// Without K the configured neighbour count is used.
type ClassifyRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	K *int    `json:"k,omitempty"`
}

// DatasetResponse describes the loaded dataset.
type DatasetResponse struct {
	XLabel string            `json:"x_label"`
	YLabel string            `json:"y_label"`
	Size   int               `json:"size"`
	Labels []dataset.Summary `json:"labels"`
}

// Service serves classifications against a dataset loaded once.
type Service struct {
	cfg     Config
	ds      model.Dataset
	strings locale.Strings
	nearest *ml.Nearest
	recent  *buffer.Ring
	metrics *metrics.Metrics
}

// NewService creates the classification service for the given dataset.
func NewService(cfg Config, ds model.Dataset, m *metrics.Metrics) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s, err := locale.For(cfg.Locale)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.Observer
	}
	return &Service{
		cfg:     cfg,
		ds:      ds,
		strings: s,
		nearest: ml.NewNearest(cfg.Vote.Order...),
		recent:  buffer.NewRing(cfg.Server.History),
		metrics: m,
	}, nil
}

// Server creates the http server exposing the service.
func (s *Service) Server() *server.Server {
	return server.NewServer(Key, s.cfg.Server.Port).
		WithShutdown(s.cfg.Server.Shutdown.Duration).
		Add(server.Live()).
		AddRoute(server.GET, server.Api, "dataset", s.dataset).
		AddRoute(server.POST, server.Api, "classify", s.classify).
		AddRoute(server.GET, server.Api, "history", s.history).
		Add(server.Route{
			Action: server.Api,
			Path:   "plot",
			Method: server.GET,
			Type:   server.PngType,
			Exec:   s.plot,
		}).
		Mount("/metrics", s.metrics.Handler())
}

func (s *Service) dataset(_ *http.Request) ([]byte, int, error) {
	b, err := json.Marshal(DatasetResponse{
		XLabel: s.ds.XLabel,
		YLabel: s.ds.YLabel,
		Size:   s.ds.Size(),
		Labels: dataset.Describe(s.ds),
	})
	return b, http.StatusOK, err
}

func (s *Service) classify(r *http.Request) ([]byte, int, error) {
	var request ClassifyRequest
	if err := server.ReadJson(r, false, &request); err != nil {
		s.metrics.Failed(err)
		return nil, 0, err
	}
	k := s.cfg.Vote.Neighbours
	if request.K != nil {
		k = *request.K
	}
	prediction, err := s.nearest.Classify(s.ds, model.Point{X: request.X, Y: request.Y}, k)
	if err != nil {
		s.metrics.Failed(err)
		return nil, 0, err
	}
	s.metrics.Classified("nearest", prediction.Label)
	log.Info().
		Str("id", prediction.ID).
		Int("k", prediction.K).
		Str("label", prediction.Label).
		Msg("classified point")
	if err := s.recent.Push(prediction); err != nil {
		log.Error().Err(err).Str("id", prediction.ID).Msg("could not keep prediction")
	}
	b, err := json.Marshal(prediction)
	return b, http.StatusOK, err
}

// history returns the latest predictions, oldest first.
func (s *Service) history(_ *http.Request) ([]byte, int, error) {
	recent := s.recent.Get(buffer.Identity)
	predictions := make([]model.Prediction, 0, len(recent))
	for _, p := range recent {
		predictions = append(predictions, p.(model.Prediction))
	}
	b, err := json.Marshal(predictions)
	return b, http.StatusOK, err
}

func (s *Service) plot(_ *http.Request) ([]byte, int, error) {
	g, err := graph.New(s.ds, s.cfg.PlotOptions(s.strings))
	if err != nil {
		return nil, 0, err
	}
	var b bytes.Buffer
	if err := g.Render(&b); err != nil {
		return nil, 0, err
	}
	return b.Bytes(), http.StatusOK, nil
}
