package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drakos74/iris-knn/internal/math"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	separator = ","
	// fields is the number of fields on every sample row.
	fields = 3
	// MaxLine is the longest line Parse accepts, in bytes.
	MaxLine = 1 << 20
)

// Load reads the dataset from the given file path.
func Load(path string) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not open '%s' %s: %w", path, err.Error(), model.IOErr)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not load '%s': %w", path, err)
	}
	log.Info().
		Str("path", path).
		Str("x", ds.XLabel).
		Str("y", ds.YLabel).
		Int("samples", ds.Size()).
		Msg("loaded dataset")
	return ds, nil
}

// Parse reads the dataset from the given reader.
// The first non-empty line holds the axis labels,
// every following one a sample as x,y,label.
func Parse(r io.Reader) (model.Dataset, error) {
	var ds model.Dataset
	var header bool

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLine)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if text == "" {
			continue
		}
		if !header {
			x, y, err := parseHeader(text)
			if err != nil {
				return model.Dataset{}, fmt.Errorf("line %d: %w", line, err)
			}
			ds.XLabel = x
			ds.YLabel = y
			ds.Samples = make([]model.Sample, 0)
			header = true
			continue
		}
		sample, err := parseSample(text)
		if err != nil {
			return model.Dataset{}, fmt.Errorf("line %d: %w", line, err)
		}
		ds.Samples = append(ds.Samples, sample)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return model.Dataset{}, fmt.Errorf("line %d is longer than %d bytes: %w", line+1, MaxLine, model.ParseErr)
		}
		return model.Dataset{}, fmt.Errorf("could not read line %d %s: %w", line+1, err.Error(), model.IOErr)
	}
	if !header {
		return model.Dataset{}, fmt.Errorf("missing header row: %w", model.ParseErr)
	}
	return ds, nil
}

func parseHeader(text string) (string, string, error) {
	labels := strings.Split(text, separator)
	if len(labels) < 2 {
		return "", "", fmt.Errorf("header needs two axis labels, got %d: %w", len(labels), model.ParseErr)
	}
	return strings.TrimSpace(labels[0]), strings.TrimSpace(labels[1]), nil
}

func parseSample(text string) (model.Sample, error) {
	row := strings.Split(text, separator)
	if len(row) != fields {
		return model.Sample{}, fmt.Errorf("expected %d fields, got %d in '%s': %w", fields, len(row), text, model.ParseErr)
	}
	x, err := math.ParseFloat(row[0])
	if err != nil {
		return model.Sample{}, fmt.Errorf("could not parse x '%s': %w", row[0], model.ParseErr)
	}
	y, err := math.ParseFloat(row[1])
	if err != nil {
		return model.Sample{}, fmt.Errorf("could not parse y '%s': %w", row[1], model.ParseErr)
	}
	return model.Sample{
		X:     x,
		Y:     y,
		Label: strings.TrimSpace(row[2]),
	}, nil
}
