// insight-analytics runs the distribution and bridge engines over a JSONL
// export of decrypted entries and prints a JSON report. With -db set, the
// computed snapshots are also persisted.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mirrorwell/insight/internal/htmltext"
	"github.com/mirrorwell/insight/internal/zapdiag"
	"github.com/mirrorwell/insight/pkg/insight"
	"github.com/mirrorwell/insight/pkg/insight/bridge"
	"github.com/mirrorwell/insight/pkg/insight/config"
	"github.com/mirrorwell/insight/pkg/insight/diag"
	"github.com/mirrorwell/insight/pkg/insight/distribution"
	"github.com/mirrorwell/insight/pkg/insight/entry"
	"github.com/mirrorwell/insight/pkg/insight/internalerr"
	"github.com/mirrorwell/insight/pkg/insight/store"
	"github.com/mirrorwell/insight/pkg/insight/store/sqlite"
)

type report struct {
	User          string                                     `json:"user"`
	EntryCount    int                                        `json:"entry_count"`
	Distributions map[string]distribution.WindowDistribution `json:"distributions"`
	Bridges       []bridge.Bridge                            `json:"bridges"`
	BridgeHash    string                                     `json:"bridge_hash"`
	WrapCard      any                                        `json:"wrap_card,omitempty"`
}

var windows = []int{7, 30, 90, 365}

func main() {
	var (
		input      = flag.String("input", "", "Path to JSONL entry export (required)")
		user       = flag.String("user", "local", "User id for persisted snapshots")
		weightsCfg = flag.String("weights", "", "Optional YAML weights override")
		threshCfg  = flag.String("thresholds", "", "Optional YAML thresholds override")
		stopCfg    = flag.String("stoplist", "", "Optional YAML extra stopwords")
		dbPath     = flag.String("db", "", "Optional SQLite path to persist snapshots")
		maxDays    = flag.Int("max-days", bridge.DefaultMaxDays, "Bridge pairing window in days")
		wrap       = flag.Bool("wrap", false, "Include the yearly wrap card")
		verbose    = flag.Bool("v", false, "Enable engine diagnostics")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	sink := diag.Nop
	if *verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		defer zl.Sync()
		sink = zapdiag.New(zl.Sugar())
	}

	loader := config.Loader{
		WeightsPath:    *weightsCfg,
		ThresholdsPath: *threshCfg,
		StoplistPath:   *stopCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	entries, err := loadEntries(*input, sink)
	if err != nil {
		log.Fatalf("load entries: %v", err)
	}

	engine := insight.New(insight.Options{
		Tokenizer:  components.Tokenizer,
		Weights:    components.Weights,
		Thresholds: &components.Thresholds,
		Sink:       sink,
	})

	now := time.Now()
	rep := report{
		User:          *user,
		EntryCount:    len(entries),
		Distributions: make(map[string]distribution.WindowDistribution, len(windows)),
	}
	for _, w := range windows {
		rep.Distributions[fmt.Sprintf("%dd", w)] = engine.ComputeDistribution(entries, w, now)
	}
	rep.Bridges = engine.BuildBridges(entries, bridge.Options{MaxDays: *maxDays})
	rep.BridgeHash = fmt.Sprintf("%x", bridge.ContentHash(rep.Bridges))
	if *wrap {
		rep.WrapCard = engine.YearlyWrap(entries, now)
	}

	if *dbPath != "" {
		if err := persist(context.Background(), *dbPath, *user, engine, entries, rep, now); err != nil {
			log.Fatalf("persist snapshots: %v", err)
		}
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

// loadEntries reads one raw record per line, strips any markup, and resolves
// the records into canonical entries.
func loadEntries(path string, sink diag.Sink) ([]entry.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raws []entry.Raw
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw entry.Raw
		if err := json.Unmarshal(line, &raw); err != nil {
			sink.Warnf("skipping malformed line: %v", err)
			continue
		}
		raw.Text = htmltext.FromString(raw.Text)
		raw.Body = htmltext.FromString(raw.Body)
		raws = append(raws, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	entries := entry.Resolve(raws, sink)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no usable entries in %s", internalerr.ErrInvalidInput, path)
	}
	return entries, nil
}

func persist(ctx context.Context, dbPath, user string, engine *insight.Engine, entries []entry.Entry, rep report, now time.Time) error {
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, w := range windows {
		result := engine.ComputeDistributionDetailed(entries, distribution.DetailedOptions{
			WindowDays: w,
			Now:        now,
		})
		snap := store.DistributionSnapshot{UserID: user, ComputedAt: now, Result: result}
		if err := st.SaveDistribution(ctx, snap); err != nil {
			return err
		}
	}

	return st.SaveBridgeSet(ctx, store.BridgeSet{
		UserID:     user,
		ComputedAt: now,
		Hash:       bridge.ContentHash(rep.Bridges),
		Bridges:    rep.Bridges,
	})
}
