package iris

import (
	"context"
	"fmt"

	"github.com/drakos74/iris-knn/internal/api"
	"github.com/drakos74/iris-knn/internal/dataset"
	"github.com/drakos74/iris-knn/internal/emoji"
	"github.com/drakos74/iris-knn/internal/graph"
	"github.com/drakos74/iris-knn/internal/locale"
	"github.com/drakos74/iris-knn/internal/math"
	"github.com/drakos74/iris-knn/internal/math/ml"
	"github.com/drakos74/iris-knn/internal/metrics"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"
)

// User is the interactive counterpart of a session.
type User interface {
	// Ask asks the question until the answer passes the validator.
	Ask(ctx context.Context, question, reminder string, v api.Validator) error
	// Say writes a line to the user.
	Say(format string, args ...interface{})
}

// Session is one interactive run: load, plot, and optionally classify a point.
type Session struct {
	cfg     Config
	strings locale.Strings
	user    User
	nearest *ml.Nearest
	metrics *metrics.Metrics
}

// NewSession creates a session for the given config and user.
func NewSession(cfg Config, user User, m *metrics.Metrics) (*Session, error) {
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
	return &Session{
		cfg:     cfg,
		strings: s,
		user:    user,
		nearest: ml.NewNearest(cfg.Vote.Order...),
		metrics: m,
	}, nil
}

// Run executes the session. It returns the prediction if the user asked for one.
func (s *Session) Run(ctx context.Context) (*model.Prediction, error) {
	ds, err := dataset.Load(s.cfg.Dataset)
	if err != nil {
		return nil, s.fail(err)
	}
	for _, summary := range dataset.Describe(ds) {
		log.Info().
			Str("label", summary.Label).
			Int("count", summary.Count).
			Str("mean-x", math.Format(summary.MeanX)).
			Str("mean-y", math.Format(summary.MeanY)).
			Str("slope", math.Format(summary.Slope)).
			Msg("dataset summary")
	}

	g, err := graph.New(ds, s.cfg.PlotOptions(s.strings))
	if err != nil {
		return nil, s.fail(err)
	}

	var add bool
	err = s.user.Ask(ctx, s.strings.AddPoint, s.strings.YesOrNo,
		api.YesNo(&add, api.Contains(s.strings.Yes...), api.Contains(s.strings.No...)))
	if err != nil {
		return nil, s.fail(err)
	}

	var prediction *model.Prediction
	if add {
		p, err := s.classify(ctx, ds)
		if err != nil {
			return nil, s.fail(err)
		}
		if err := g.AddQuery(p.Point, p.Label); err != nil {
			return nil, s.fail(err)
		}
		prediction = &p
	}

	s.user.Say(s.strings.Loading, s.cfg.Plot.File)
	if err := g.Save(s.cfg.Plot.File); err != nil {
		return nil, s.fail(err)
	}
	return prediction, nil
}

func (s *Session) classify(ctx context.Context, ds model.Dataset) (model.Prediction, error) {
	var point model.Point
	var k int
	if err := s.user.Ask(ctx, s.strings.X, s.strings.Invalid, api.Float(&point.X)); err != nil {
		return model.Prediction{}, err
	}
	if err := s.user.Ask(ctx, s.strings.Y, s.strings.Invalid, api.Float(&point.Y)); err != nil {
		return model.Prediction{}, err
	}
	if err := s.user.Ask(ctx, s.strings.Neighbours, s.strings.Invalid, api.Positive(&k)); err != nil {
		return model.Prediction{}, err
	}

	prediction, err := s.nearest.Classify(ds, point, k)
	if err != nil {
		return model.Prediction{}, err
	}
	s.metrics.Classified("nearest", prediction.Label)
	log.Info().
		Str("id", prediction.ID).
		Float64("x", point.X).
		Float64("y", point.Y).
		Int("k", prediction.K).
		Str("label", prediction.Label).
		Msg("classified point")

	s.user.Say(s.strings.Found, emoji.MapLabel(prediction.Label, s.cfg.Palette, Fallback), prediction.Label)
	return prediction, nil
}

func (s *Session) fail(err error) error {
	s.metrics.Failed(err)
	return err
}
