package ml

import (
	"fmt"

	"github.com/drakos74/iris-knn/internal/model"
	"github.com/sjwhitworth/golearn/base"
)

// NewInstances converts the samples into golearn instances
// with two float attributes and the label as class attribute.
func NewInstances(samples []model.Sample) (*base.DenseInstances, error) {
	grid := base.NewDenseInstances()
	class := base.NewCategoricalAttribute()
	class.SetName("label")
	grid.AddAttribute(base.NewFloatAttribute("x"))
	grid.AddAttribute(base.NewFloatAttribute("y"))
	grid.AddAttribute(class)
	if err := grid.AddClassAttribute(class); err != nil {
		return nil, fmt.Errorf("could not set class attribute: %w", err)
	}
	if err := Fill(grid, samples); err != nil {
		return nil, err
	}
	return grid, nil
}

// CopyInstances creates instances sharing the attributes of the given template.
// Grids that are compared or predicted against each other need to share them.
func CopyInstances(template *base.DenseInstances, samples []model.Sample) (*base.DenseInstances, error) {
	grid := base.NewStructuralCopy(template)
	if err := Fill(grid, samples); err != nil {
		return nil, err
	}
	return grid, nil
}

// Fill appends the samples to the grid.
func Fill(grid *base.DenseInstances, samples []model.Sample) error {
	attributes := make(map[string]base.Attribute)
	for _, a := range grid.AllAttributes() {
		attributes[a.GetName()] = a
	}
	specs := make(map[string]base.AttributeSpec, len(attributes))
	for _, name := range []string{"x", "y", "label"} {
		a, ok := attributes[name]
		if !ok {
			return fmt.Errorf("missing attribute '%s': %w", name, model.InvalidArgumentErr)
		}
		spec, err := grid.GetAttribute(a)
		if err != nil {
			return fmt.Errorf("could not resolve attribute '%s': %w", name, err)
		}
		specs[name] = spec
	}
	_, offset := grid.Size()
	if err := grid.Extend(len(samples)); err != nil {
		return fmt.Errorf("could not extend instances: %w", err)
	}
	for i, s := range samples {
		row := offset + i
		grid.Set(specs["x"], row, base.PackFloatToBytes(s.X))
		grid.Set(specs["y"], row, base.PackFloatToBytes(s.Y))
		if s.Label != "" {
			grid.Set(specs["label"], row, attributes["label"].GetSysValFromString(s.Label))
		}
	}
	return nil
}
