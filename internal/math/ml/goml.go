package ml

import (
	"fmt"
	"math"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/cluster"
	"github.com/drakos74/iris-knn/internal/model"
)

// Goml is an engine backed by the goml knn model.
type Goml struct {
	k      int
	labels []string
	model  *cluster.KNN
}

// NewGoml creates a goml knn engine with euclidean distance.
func NewGoml(k int) *Goml {
	return &Goml{
		k: k,
	}
}

func (g *Goml) Name() string {
	return "goml"
}

func (g *Goml) Fit(ds model.Dataset) error {
	if ds.Size() == 0 {
		return fmt.Errorf("no samples to fit: %w", model.InvalidArgumentErr)
	}
	if g.k < 1 {
		return fmt.Errorf("neighbour count must be at least 1, got %d: %w", g.k, model.InvalidArgumentErr)
	}
	classes, labels := indexLabels(ds)
	y := make([]float64, len(classes))
	for i, c := range classes {
		y[i] = float64(c)
	}
	k := g.k
	if k > ds.Size() {
		k = ds.Size()
	}
	g.labels = labels
	g.model = cluster.NewKNN(k, features(ds), y, base.EuclideanDistance)
	return nil
}

func (g *Goml) Predict(p model.Point) (string, error) {
	if g.model == nil {
		return "", fmt.Errorf("no model present")
	}
	guess, err := g.model.Predict([]float64{p.X, p.Y})
	if err != nil {
		return "", fmt.Errorf("could not predict: %w", err)
	}
	if len(guess) == 0 {
		return "", fmt.Errorf("empty prediction")
	}
	c := int(math.Round(guess[0]))
	if c < 0 || c >= len(g.labels) {
		return "", fmt.Errorf("unknown class index %d", c)
	}
	return g.labels[c], nil
}
