package dataset

import (
	"github.com/drakos74/iris-knn/internal/math"
	"github.com/drakos74/iris-knn/internal/model"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the statistics of the samples sharing a label.
type Summary struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	MeanX float64 `json:"mean_x"`
	StdX  float64 `json:"std_x"`
	MeanY float64 `json:"mean_y"`
	StdY  float64 `json:"std_y"`
	// Slope and Intercept describe the least squares line of y over x.
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Describe summarises the dataset per label, in order of first appearance.
func Describe(ds model.Dataset) []Summary {
	xs := make(map[string][]float64)
	ys := make(map[string][]float64)
	for _, s := range ds.Samples {
		xs[s.Label] = append(xs[s.Label], s.X)
		ys[s.Label] = append(ys[s.Label], s.Y)
	}

	labels := ds.Labels()
	summaries := make([]Summary, len(labels))
	for i, label := range labels {
		summary := Summary{
			Label: label,
			Count: len(xs[label]),
		}
		summary.MeanX, summary.StdX = meanStd(xs[label])
		summary.MeanY, summary.StdY = meanStd(ys[label])
		summary.Intercept = summary.MeanY
		if summary.StdX > 0 {
			if c, err := math.Fit(xs[label], ys[label], 1); err == nil {
				summary.Intercept, summary.Slope = c[0], c[1]
			}
		}
		summaries[i] = summary
	}
	return summaries
}

// meanStd returns a zero deviation for a single value, where stat would give NaN.
func meanStd(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
