package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vibecheck/internal/modkit"
	"vibecheck/internal/modkit/module"
	"vibecheck/internal/platform/config"
	"vibecheck/internal/platform/logger"
	"vibecheck/internal/platform/store"

	classifydom "vibecheck/internal/services/classify/domain"
	classifymod "vibecheck/internal/services/classify/module"
	runsdom "vibecheck/internal/services/runs/domain"
	runsmod "vibecheck/internal/services/runs/module"
)

const usage = `usage: vibecheck <training_file> <test_file> <test_sentiment_file> <results_file> <accuracy_file>

arguments:
  <training_file>        CSV file with labeled training data
  <test_file>            CSV file with unlabeled test data
  <test_sentiment_file>  CSV file with actual sentiments for the test data
  <results_file>         output file for prediction results
  <accuracy_file>        output file for accuracy metrics

example:
  vibecheck data/train.csv data/test.csv data/test_sentiment.csv results.csv accuracy.txt
`

func main() {
	if len(os.Args) != 6 {
		fmt.Fprintln(os.Stderr, "error: expected exactly five file arguments")
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	paths := classifydom.Paths{
		Training:    os.Args[1],
		Test:        os.Args[2],
		Truth:       os.Args[3],
		Predictions: os.Args[4],
		Accuracy:    os.Args[5],
	}

	root := config.New().Prefix("VIBECHECK_")
	l := logger.Get()

	// grouped thousands for the console since the corpus runs are large
	p := message.NewPrinter(language.English)

	fmt.Println("sentiment analysis configuration:")
	fmt.Printf("  training file:        %s\n", paths.Training)
	fmt.Printf("  test file:            %s\n", paths.Test)
	fmt.Printf("  test sentiment file:  %s\n", paths.Truth)
	fmt.Printf("  results file:         %s\n", paths.Predictions)
	fmt.Printf("  accuracy file:        %s\n", paths.Accuracy)
	fmt.Println()

	deps := modkit.Deps{
		Cfg: root,
		Log: *l,
	}

	cm := classifymod.New(deps)
	module.Register(cm.Name(), cm.Ports())
	ports := module.MustPortsOf[classifymod.Ports](cm)

	ctx := context.Background()
	started := time.Now().UTC()

	fmt.Println("training classifier...")
	tr, err := ports.Runner.Train(ctx, paths.Training)
	if err != nil {
		fail(l, "train", err)
	}
	p.Printf("training complete. processed %d tweets (%d positive, %d negative).\n",
		tr.Records, tr.Positive, tr.Negative)
	p.Printf("vocabulary size: %d words.\n", tr.Vocab)

	fmt.Println("making predictions...")
	pr, err := ports.Runner.Predict(ctx, paths.Test, paths.Predictions)
	if err != nil {
		fail(l, "predict", err)
	}
	p.Printf("prediction complete. made predictions for %d tweets.\n", pr.Records)

	fmt.Println("evaluating predictions...")
	ev, err := ports.Runner.Evaluate(ctx, paths.Truth, paths.Accuracy)
	if err != nil {
		fail(l, "evaluate", err)
	}
	if ev.Unmatched {
		fmt.Fprintln(os.Stderr,
			"warning: no predictions matched the ground truth; check that the files share tweet ids")
	}
	p.Printf("evaluation complete. accuracy: %.2f%%\n", ev.Accuracy*100)
	p.Printf("%d correct predictions out of %d\n", ev.Correct, ev.Total)
	p.Printf("%d misclassifications.\n", len(ev.Misses))

	report := classifydom.RunReport{
		Paths:      paths,
		Train:      tr,
		Predict:    pr,
		Eval:       ev,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}

	// archive is opt in; the files on disk stay the primary artifact
	if root.MayBool("PG_ENABLE", false) {
		archive(ctx, root, l, ports.Scorer, report)
	}

	fmt.Println("sentiment analysis complete.")
	fmt.Printf("results written to: %s\n", paths.Predictions)
	fmt.Printf("accuracy metrics written to: %s\n", paths.Accuracy)
}

// archive ships the finished run into postgres (and the optional
// clickhouse mirror). Failures log and return; they never fail the run
func archive(
	ctx context.Context,
	root config.Conf,
	l *logger.Logger,
	scorer classifydom.ScorerPort,
	report classifydom.RunReport,
) {
	pgCfg := root.Prefix("PGSQL_")
	chCfg := root.Prefix("CH_")

	st, err := store.Open(ctx, store.Config{
		AppName: "vibecheck",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", false),
			URL:     chCfg.MayString("DBURL", ""),
			Role:    "batch",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Error().Err(err).Msg("archive skipped: store unavailable")
		return
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			l.Error().Err(err).Msg("store close")
		}
	}()

	rm := runsmod.New(modkit.Deps{
		Cfg: root,
		Log: *l,
		PG:  st.PG,
		CH:  st.CH,
	})
	module.Register(rm.Name(), rm.Ports())
	writer := module.MustPortsOf[runsmod.Ports](rm).Writer

	// bound the archived detail with the same knobs the runs module reads
	runsCfg := root.Prefix("RUNS_")
	missLimit := runsCfg.MayInt("MISS_LIMIT", 1000)
	lexLimit := runsCfg.MayInt("LEXICON_LIMIT", 100)

	misses := report.Eval.Misses
	if missLimit > 0 && len(misses) > missLimit {
		misses = misses[:missLimit]
	}
	w := runsdom.RunWrite{
		TrainingFile:    report.Paths.Training,
		TestFile:        report.Paths.Test,
		TruthFile:       report.Paths.Truth,
		PredictionsFile: report.Paths.Predictions,
		AccuracyFile:    report.Paths.Accuracy,

		TrainedTotal:    report.Train.Records,
		TrainedPositive: report.Train.Positive,
		TrainedNegative: report.Train.Negative,
		VocabSize:       report.Train.Vocab,

		Predicted: report.Predict.Records,

		EvalTotal:   report.Eval.Total,
		EvalCorrect: report.Eval.Correct,
		Accuracy:    report.Eval.Accuracy,
		MissCount:   len(report.Eval.Misses),

		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
	}
	for i, m := range misses {
		w.Misses = append(w.Misses, runsdom.MissWrite{
			Position:  i,
			Predicted: int(m.Predicted),
			Actual:    int(m.Actual),
			TweetID:   m.ID,
		})
	}
	for i, e := range scorer.Lexicon(ctx, lexLimit) {
		w.Lexicon = append(w.Lexicon, runsdom.LexiconWrite{
			Rank:     i + 1,
			Token:    e.Token,
			Positive: e.Positive,
			Negative: e.Negative,
			Weight:   e.Weight,
		})
	}

	id, err := writer.Archive(ctx, w)
	if err != nil {
		l.Error().Err(err).Msg("run archive failed")
		return
	}
	fmt.Printf("run archived: %s\n", id)
}

// fail logs the stage failure and exits nonzero
func fail(l *logger.Logger, stage string, err error) {
	l.Error().Err(err).Str("stage", stage).Msg("run failed")
	fmt.Fprintf(os.Stderr, "error: %s failed: %v\n", stage, err)
	os.Exit(1)
}
