package ml

import (
	"fmt"

	"github.com/drakos74/iris-knn/internal/math"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// Net is an engine backed by a feed forward network trained on one-hot labels.
type Net struct {
	epochs  int
	labels  []string
	mean    [2]float64
	std     [2]float64
	network *math.Network
}

// NewNet creates a network engine trained for the given number of epochs.
func NewNet(epochs int) *Net {
	return &Net{
		epochs: epochs,
	}
}

func (n *Net) Name() string {
	return "net"
}

func (n *Net) Fit(ds model.Dataset) error {
	if ds.Size() == 0 {
		return fmt.Errorf("no samples to fit: %w", model.InvalidArgumentErr)
	}
	if n.epochs < 1 {
		return fmt.Errorf("epoch count must be at least 1, got %d: %w", n.epochs, model.InvalidArgumentErr)
	}
	classes, labels := indexLabels(ds)
	x := features(ds)

	// features are standardised to the training mean and deviation
	for j := 0; j < 2; j++ {
		col := make([]float64, len(x))
		for i := range x {
			col[i] = x[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if !(std > 0) {
			std = 1
		}
		n.mean[j], n.std[j] = mean, std
	}

	network := math.NewML(2, len(labels))
	var loss float64
	for e := 0; e < n.epochs; e++ {
		loss = 0
		for i, v := range x {
			loss += network.Train(n.scale(v[0], v[1]), math.OneHot(classes[i], len(labels)))
		}
	}
	log.Debug().
		Int("epochs", n.epochs).
		Int("samples", ds.Size()).
		Float64("loss", loss/float64(len(x))).
		Msg("trained network")
	n.network = network
	n.labels = labels
	return nil
}

func (n *Net) Predict(p model.Point) (string, error) {
	if n.network == nil {
		return "", fmt.Errorf("no network trained")
	}
	best := math.ArgMax(n.network.Predict(n.scale(p.X, p.Y)))
	if best < 0 || best >= len(n.labels) {
		return "", fmt.Errorf("no output for point %+v", p)
	}
	return n.labels[best], nil
}

func (n *Net) scale(x, y float64) []float64 {
	return []float64{
		(x - n.mean[0]) / n.std[0],
		(y - n.mean[1]) / n.std[1],
	}
}
