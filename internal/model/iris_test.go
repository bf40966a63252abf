package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataset_Labels(t *testing.T) {

	type test struct {
		samples []Sample
		labels  []string
	}

	tests := map[string]test{
		"empty": {
			labels: []string{},
		},
		"single": {
			samples: []Sample{{Label: "setosa"}, {Label: "setosa"}},
			labels:  []string{"setosa"},
		},
		"first-appearance": {
			samples: []Sample{{Label: "virginica"}, {Label: "setosa"}, {Label: "virginica"}, {Label: "versicolor"}},
			labels:  []string{"virginica", "setosa", "versicolor"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ds := Dataset{Samples: tt.samples}
			assert.Equal(t, tt.labels, ds.Labels())
			assert.Equal(t, len(tt.samples), ds.Size())
		})
	}

}
