package ml

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/drakos74/iris-knn/internal/math"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Score is the evaluation outcome of one engine.
type Score struct {
	Engine   string
	Accuracy float64
	Summary  string
	Matrix   evaluation.ConfusionMatrix
}

// Report collects the scores of all evaluated engines.
type Report struct {
	Train  int
	Test   int
	Scores []Score
}

// Split shuffles the dataset with the given seed and splits it
// into a training part holding the given proportion of samples and a test part.
func Split(ds model.Dataset, split float64, seed int64) (model.Dataset, model.Dataset, error) {
	if split <= 0 || split >= 1 {
		return model.Dataset{}, model.Dataset{}, fmt.Errorf("split must be in (0,1), got %f: %w", split, model.InvalidArgumentErr)
	}
	n := int(float64(ds.Size()) * split)
	if n == 0 || n == ds.Size() {
		return model.Dataset{}, model.Dataset{}, fmt.Errorf("split %f of %d samples leaves an empty part: %w", split, ds.Size(), model.InvalidArgumentErr)
	}

	train := model.Dataset{XLabel: ds.XLabel, YLabel: ds.YLabel, Samples: make([]model.Sample, 0, n)}
	test := model.Dataset{XLabel: ds.XLabel, YLabel: ds.YLabel, Samples: make([]model.Sample, 0, ds.Size()-n)}
	for i, j := range rand.New(rand.NewSource(seed)).Perm(ds.Size()) {
		if i < n {
			train.Samples = append(train.Samples, ds.Samples[j])
		} else {
			test.Samples = append(test.Samples, ds.Samples[j])
		}
	}
	return train, test, nil
}

// Evaluate trains every engine on the same training part of the dataset
// and scores its predictions on the test part with a confusion matrix.
func Evaluate(ds model.Dataset, split float64, seed int64, engines ...Engine) (Report, error) {
	train, test, err := Split(ds, split, seed)
	if err != nil {
		return Report{}, err
	}

	// the reference carries the attributes of the full dataset,
	// so that every label is known to the confusion matrix.
	template, err := NewInstances(ds.Samples)
	if err != nil {
		return Report{}, err
	}
	reference, err := CopyInstances(template, test.Samples)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Train:  train.Size(),
		Test:   test.Size(),
		Scores: make([]Score, 0, len(engines)),
	}
	for _, engine := range engines {
		if err := engine.Fit(train); err != nil {
			return Report{}, fmt.Errorf("could not fit '%s': %w", engine.Name(), err)
		}
		predicted := make([]model.Sample, test.Size())
		for i, s := range test.Samples {
			label, err := engine.Predict(s.Point())
			if err != nil {
				return Report{}, fmt.Errorf("could not predict with '%s': %w", engine.Name(), err)
			}
			predicted[i] = model.Sample{X: s.X, Y: s.Y, Label: label}
		}
		predictions, err := CopyInstances(template, predicted)
		if err != nil {
			return Report{}, err
		}
		cf, err := evaluation.GetConfusionMatrix(reference, predictions)
		if err != nil {
			log.Error().Err(err).Str("engine", engine.Name()).Msg("could not get confusion matrix")
			return Report{}, err
		}
		score := Score{
			Engine:   engine.Name(),
			Accuracy: evaluation.GetAccuracy(cf),
			Summary:  evaluation.GetSummary(cf),
			Matrix:   cf,
		}
		log.Info().
			Str("engine", score.Engine).
			Float64("accuracy", score.Accuracy).
			Int("test", test.Size()).
			Msg("evaluated engine")
		report.Scores = append(report.Scores, score)
	}
	return report, nil
}

// Render writes the report as a table.
func (r Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"engine", "train", "test", "accuracy"})
	for _, s := range r.Scores {
		table.Append([]string{
			s.Engine,
			fmt.Sprintf("%d", r.Train),
			fmt.Sprintf("%d", r.Test),
			math.Format(s.Accuracy),
		})
	}
	table.Render()
}
