package ml

import (
	"fmt"

	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"

	randomforest "github.com/malaschitz/randomForest"
)

// RandomForest is an engine backed by a random forest over the label indices.
type RandomForest struct {
	trees  int
	labels []string
	forest *randomforest.Forest
}

// NewForest creates a random forest engine with n trees.
func NewForest(n int) *RandomForest {
	return &RandomForest{
		trees: n,
	}
}

func (rf *RandomForest) Name() string {
	return "forest"
}

func (rf *RandomForest) Fit(ds model.Dataset) error {
	if ds.Size() == 0 {
		return fmt.Errorf("no samples to fit: %w", model.InvalidArgumentErr)
	}
	if rf.trees < 1 {
		return fmt.Errorf("tree count must be at least 1, got %d: %w", rf.trees, model.InvalidArgumentErr)
	}
	classes, labels := indexLabels(ds)
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: features(ds), Class: classes}
	forest.Train(rf.trees)
	log.Debug().Int("trees", rf.trees).Int("samples", ds.Size()).Msg("trained forest")
	rf.forest = forest
	rf.labels = labels
	return nil
}

func (rf *RandomForest) Predict(p model.Point) (string, error) {
	if rf.forest == nil {
		return "", fmt.Errorf("no forest trained")
	}
	votes := rf.forest.Vote([]float64{p.X, p.Y})
	best := -1
	for i, v := range votes {
		if best < 0 || v > votes[best] {
			best = i
		}
	}
	if best < 0 || best >= len(rf.labels) {
		return "", fmt.Errorf("no vote for point %+v", p)
	}
	return rf.labels[best], nil
}
