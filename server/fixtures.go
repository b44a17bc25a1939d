package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"mirnaexplorer/mirna"
)

// Fixtures is the data set served by the dev server
type Fixtures struct {
	MiRNAs      []mirna.MiRNA      `yaml:"mirnas"`
	Predictions []mirna.Prediction `yaml:"predictions"`
	Pathways    []mirna.Pathway    `yaml:"pathways"`
}

// LoadFixtures reads a fixtures YAML file
func LoadFixtures(path string) (Fixtures, error) {
	var f Fixtures

	bytes, err := os.ReadFile(path)
	if err != nil {
		return f, errors.Wrapf(err, "failed reading fixtures file: %s", path)
	}
	if err := yaml.UnmarshalStrict(bytes, &f); err != nil {
		return f, errors.Wrapf(err, "failed parsing fixtures file: %s", path)
	}
	return f, nil
}

// Merge appends the records of other
func (f *Fixtures) Merge(other Fixtures) {
	f.MiRNAs = append(f.MiRNAs, other.MiRNAs...)
	f.Predictions = append(f.Predictions, other.Predictions...)
	f.Pathways = append(f.Pathways, other.Pathways...)
}

// FindMiRNAs returns the entries whose name matches, ignoring case
func (f *Fixtures) FindMiRNAs(name string) []mirna.MiRNA {
	matches := []mirna.MiRNA{}
	for _, m := range f.MiRNAs {
		if strings.EqualFold(m.Name, name) {
			matches = append(matches, m)
		}
	}
	return matches
}

// FindPredictions returns the predictions made for a miRNA
func (f *Fixtures) FindPredictions(name string) []mirna.Prediction {
	matches := []mirna.Prediction{}
	for _, p := range f.Predictions {
		if strings.EqualFold(p.MiRNA, name) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindPathways returns the pathways of a gene
func (f *Fixtures) FindPathways(gene string) []mirna.Pathway {
	matches := []mirna.Pathway{}
	for _, p := range f.Pathways {
		if strings.EqualFold(p.Gene, gene) {
			matches = append(matches, p)
		}
	}
	return matches
}
