package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	arg "github.com/alexflint/go-arg"
	"github.com/gocarina/gocsv"

	"github.com/doccat/doccat/corpus"
	"github.com/doccat/doccat/experiment"
	"github.com/doccat/doccat/logutil"
)

func fail(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

type scoreRecord struct {
	Pipeline     string  `csv:"pipeline"`
	Params       string  `csv:"params"`
	MeanAccuracy float64 `csv:"mean_accuracy"`
	StdAccuracy  float64 `csv:"std_accuracy"`
	MeanKappa    float64 `csv:"mean_kappa"`
}

func scoreRecords(report *experiment.Report) []scoreRecord {
	var records []scoreRecord
	for _, result := range []experiment.PipelineResult{report.RawFreq, report.TFIDF} {
		for _, score := range result.Scores {
			records = append(records, scoreRecord{
				Pipeline:     result.Pipeline,
				Params:       fmt.Sprintf("%v", score.Param),
				MeanAccuracy: score.Mean,
				StdAccuracy:  score.Std,
				MeanKappa:    score.MeanKappa,
			})
		}
	}
	return records
}

func loadCorpus(csvPath, dirPath string) corpus.Corpus {
	switch {
	case csvPath != "" && dirPath != "":
		log.Fatal("pass either csv or dir, not both")
	case csvPath == "" && dirPath == "":
		log.Fatal("csv or dir REQUIRED")
	}

	if csvPath != "" {
		docs, err := corpus.FromCSVFile(csvPath)
		fail(err)
		return docs
	}
	docs, err := corpus.FromDir(dirPath)
	fail(err)
	return docs
}

// This binary compares the raw-frequency and TF-IDF classification pipelines
// on a labeled corpus and reports the cross-validated winner.
func main() {
	args := struct {
		CSV          string
		Dir          string
		TestFraction float64
		Folds        int
		Repeats      int
		Seed         int64
		NumGo        int
		Baseline     bool
		ReportJSON   string
		ScoresCSV    string
	}{
		TestFraction: 0.3,
		Folds:        5,
		Repeats:      1,
		Seed:         1,
		Baseline:     true,
	}
	arg.MustParse(&args)

	start := time.Now()
	docs := loadCorpus(args.CSV, args.Dir)
	fmt.Printf("loaded %d documents over %d classes\n", len(docs), len(docs.Classes()))

	report, err := experiment.Run(docs, experiment.Config{
		TestFraction: args.TestFraction,
		Folds:        args.Folds,
		Repeats:      args.Repeats,
		Seed:         args.Seed,
		NumGo:        args.NumGo,
		Baseline:     args.Baseline,
		Logger:       logutil.Logger,
	})
	fail(err)

	tw := tabwriter.NewWriter(os.Stdout, 4, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "pipeline\tbest params\tcv accuracy\tcv kappa\ttest accuracy\n")
	for _, result := range []experiment.PipelineResult{report.RawFreq, report.TFIDF} {
		fmt.Fprintf(tw, "%s\t%v\t%.4f +/- %.4f\t%.4f\t%.4f\n",
			result.Pipeline, result.BestParam, result.CVMean, result.CVStd, result.CVKappa, result.TestAccuracy)
	}
	if report.Baseline != nil {
		fmt.Fprintf(tw, "baseline\t\t\t\t%.4f\n", report.Baseline.TestAccuracy)
	}
	fail(tw.Flush())
	fmt.Printf("winner: %s\n", report.Winner)

	if args.ReportJSON != "" {
		f, err := os.Create(args.ReportJSON)
		fail(err)
		encoder := json.NewEncoder(f)
		encoder.SetIndent("", "  ")
		fail(encoder.Encode(report))
		fail(f.Close())
		fmt.Printf("wrote report to %s\n", args.ReportJSON)
	}

	if args.ScoresCSV != "" {
		f, err := os.Create(args.ScoresCSV)
		fail(err)
		records := scoreRecords(report)
		fail(gocsv.Marshal(&records, f))
		fail(f.Close())
		fmt.Printf("wrote scores to %s\n", args.ScoresCSV)
	}

	fmt.Printf("Done! took %v\n", time.Since(start))
}
