package locale

import (
	"fmt"
	"sort"
	"strings"

	"github.com/drakos74/iris-knn/internal/model"
)

const (
	English = "en"
	French  = "fr"
)

// Strings holds the user facing text for one language.
type Strings struct {
	Tag string
	// AddPoint asks whether to classify a new point.
	AddPoint string
	// YesOrNo reminds the user of the expected answers.
	YesOrNo string
	Yes     []string
	No      []string
	X       string
	Y       string
	// Neighbours asks for the neighbour count.
	Neighbours string
	// Found announces the label, it takes the label marker and the label.
	Found string
	// Invalid is shown before asking again, it takes the error.
	Invalid string
	// Loading is shown before the plot is rendered, it takes the file.
	Loading string
	Title   string
	Finding string
	// Legend maps labels to their legend name.
	Legend map[string]string
}

// LegendName returns the legend name of the label, or the label itself.
func (s Strings) LegendName(label string) string {
	if name, ok := s.Legend[label]; ok {
		return name
	}
	return label
}

var tables = map[string]Strings{
	English: {
		Tag:        English,
		AddPoint:   "Would you like to add a flower to the graph and identify it ? (yes/no) : ",
		YesOrNo:    "Yes or No ?",
		Yes:        []string{"y", "ye", "yes"},
		No:         []string{"n", "nn", "no", "non"},
		X:          "Length of a petal : ",
		Y:          "Width of a petal : ",
		Neighbours: "How many neighbours should be used to determine the species ? : ",
		Found:      "You've probably found an iris %s %s",
		Invalid:    "Invalid answer: %v",
		Loading:    "Graph loading into %s ...",
		Title:      "Iris base model",
		Finding:    "your finding",
		Legend: map[string]string{
			"setosa":     "Setosa",
			"virginica":  "Virginica",
			"versicolor": "Versicolor",
		},
	},
	French: {
		Tag:        French,
		AddPoint:   "Voulez-vous ajouter une fleur au graphique et l'identifier ? (oui/non) : ",
		YesOrNo:    "Oui ou Non ?",
		Yes:        []string{"o", "oui", "y", "ye", "yes"},
		No:         []string{"n", "nn", "no", "non"},
		X:          "Longueur d'un pétale : ",
		Y:          "Largeur d'un pétale : ",
		Neighbours: "Combien de voisins pour déterminer l'espèce ? : ",
		Found:      "Vous avez probablement trouvé un iris %s %s",
		Invalid:    "Réponse invalide : %v",
		Loading:    "Chargement du graphique dans %s ...",
		Title:      "Modèle de base Iris",
		Finding:    "votre découverte",
		Legend: map[string]string{
			"setosa":     "Setosa",
			"virginica":  "Virginica",
			"versicolor": "Versicolor",
		},
	},
}

// For returns the strings for the given language tag.
func For(tag string) (Strings, error) {
	s, ok := tables[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return Strings{}, fmt.Errorf("unknown locale '%s', must be one of %v: %w", tag, Tags(), model.InvalidArgumentErr)
	}
	return s, nil
}

// Tags returns the supported language tags.
func Tags() []string {
	tags := make([]string, 0, len(tables))
	for t := range tables {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
