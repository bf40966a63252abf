package ml

import (
	"fmt"

	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
)

// Golearn is an engine backed by the golearn knn classifier.
type Golearn struct {
	k        int
	cls      *knn.KNNClassifier
	template *base.DenseInstances
}

// NewGolearn creates a golearn knn engine with euclidean distance.
func NewGolearn(k int) *Golearn {
	return &Golearn{
		k: k,
	}
}

func (g *Golearn) Name() string {
	return "golearn"
}

func (g *Golearn) Fit(ds model.Dataset) error {
	if ds.Size() == 0 {
		return fmt.Errorf("no samples to fit: %w", model.InvalidArgumentErr)
	}
	if g.k < 1 {
		return fmt.Errorf("neighbour count must be at least 1, got %d: %w", g.k, model.InvalidArgumentErr)
	}
	trainData, err := NewInstances(ds.Samples)
	if err != nil {
		return err
	}
	k := g.k
	if k > ds.Size() {
		k = ds.Size()
	}
	// Initialises a new KNN classifier
	cls := knn.NewKnnClassifier("euclidean", "linear", k)
	err = cls.Fit(trainData)
	if err != nil {
		log.Error().Err(err).Msg("could not train knn model")
		return err
	}
	g.cls = cls
	g.template = trainData
	return nil
}

func (g *Golearn) Predict(p model.Point) (string, error) {
	if g.cls == nil {
		return "", fmt.Errorf("no model present")
	}
	grid, err := CopyInstances(g.template, []model.Sample{{X: p.X, Y: p.Y}})
	if err != nil {
		return "", err
	}
	predictions, err := g.cls.Predict(grid)
	if err != nil {
		log.Error().Err(err).Msg("could not predict on knn model")
		return "", err
	}
	return base.GetClass(predictions, 0), nil
}
