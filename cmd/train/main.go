/*Trains the expense category classifier from a labeled CSV.*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jbrukh/bayesian"

	"github.com/taxbridge/taxbridge/service"
	"github.com/taxbridge/taxbridge/utils"
)

var cli struct {
	Train trainCmd `cmd:"" default:"withargs" help:"Train a TF-IDF naive Bayes classifier from labeled transactions."`
}

type trainCmd struct {
	Input  string `arg:"" required:"" help:"Labeled CSV with description and category columns."`
	Output string `default:"models/classifier.gob" help:"Where to write the classifier artifact."`
}

func (t *trainCmd) Run() error {
	data, err := os.ReadFile(t.Input)
	if err != nil {
		return fmt.Errorf("read training data: %w", err)
	}

	tbl, err := service.ParseCSVTable(data)
	if err != nil {
		return fmt.Errorf("parse training data: %w", err)
	}
	utils.Normalize(tbl)

	descCol, ok := tbl.Col("description")
	if !ok {
		return fmt.Errorf("training data has no description column (got %v)", tbl.Columns)
	}
	catCol, ok := tbl.Col("category")
	if !ok {
		return fmt.Errorf("training data has no category column (got %v)", tbl.Columns)
	}

	samples := make(map[string][][]string)
	for _, row := range tbl.Rows {
		category := strings.TrimSpace(tbl.Cell(row, catCol))
		words := strings.Fields(utils.CleanText(tbl.Cell(row, descCol)))
		if category == "" || len(words) == 0 {
			continue
		}
		samples[category] = append(samples[category], words)
	}
	if len(samples) < 2 {
		return fmt.Errorf("need at least 2 categories to train, got %d", len(samples))
	}

	classes := make([]bayesian.Class, 0, len(samples))
	for category := range samples {
		classes = append(classes, bayesian.Class(category))
	}

	cl := bayesian.NewClassifierTfIdf(classes...)
	total := 0
	for _, class := range classes {
		for _, words := range samples[string(class)] {
			cl.Learn(words, class)
			total++
		}
	}
	cl.ConvertTermsFreqToTfIdf()

	if err := os.MkdirAll(filepath.Dir(t.Output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := cl.WriteToFile(t.Output); err != nil {
		return fmt.Errorf("write classifier: %w", err)
	}

	fmt.Printf("trained on %d samples across %d categories, wrote %s\n", total, len(classes), t.Output)
	return nil
}

func main() {
	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
