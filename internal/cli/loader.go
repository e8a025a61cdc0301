package cli

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lrhache/fhirsearch/internal/index"
	"github.com/lrhache/fhirsearch/internal/registry"
	"github.com/lrhache/fhirsearch/internal/schema"
	"github.com/lrhache/fhirsearch/internal/search"
	"github.com/lrhache/fhirsearch/internal/store"
)

// session is one fully loaded ingestion+query context: the record graph,
// its index, and the query engine over both.
type session struct {
	reg    *registry.Registry
	engine *search.Engine
	report *registry.LoadReport
}

// loadSession fetches the batch, materializes the graph and builds the
// index. Schema conflicts abort; per-record problems are carried on the
// report and surfaced as warnings.
func loadSession(ctx context.Context, dropCache bool) (*session, error) {
	types := schema.Builtin()
	if cfg.SchemaPath != "" {
		overlay, err := schema.LoadOverlay(cfg.SchemaPath)
		if err != nil {
			return nil, err
		}
		if err := overlay.Apply(types); err != nil {
			return nil, err
		}
	}

	src, err := newStore(ctx, dropCache)
	if err != nil {
		return nil, err
	}

	resources, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resource batch: %w", err)
	}

	reg := registry.New(types)
	report := reg.LoadBatch(resources)

	logReport(report)

	ix := index.Build(reg)
	return &session{
		reg:    reg,
		engine: search.NewEngine(reg, ix, cfg.SuggestionLimit),
		report: report,
	}, nil
}

func newStore(ctx context.Context, dropCache bool) (store.Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Store := store.NewS3Store(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix, log)
	return &store.CachingStore{
		Inner:     s3Store,
		Path:      cfg.CachePath,
		DropCache: dropCache,
		Log:       log,
	}, nil
}

func logReport(report *registry.LoadReport) {
	log.Info().Int("loaded", report.Loaded).Msg("materialized records")
	for _, p := range report.Skipped {
		log.Warn().Str("type", p.Type).Str("id", p.ID).Err(p.Err).Msg("skipped resource")
	}
	for _, d := range report.Dangling {
		log.Warn().
			Str("source", d.SourceType+"/"+d.SourceID).
			Str("slot", d.Slot).
			Str("target", d.TargetType+"/"+d.TargetID).
			Msg("dangling reference")
	}
	for _, m := range report.Malformed {
		log.Warn().
			Str("source", m.SourceType+"/"+m.SourceID).
			Str("slot", m.Slot).
			Msg("malformed reference")
	}
}

// reportWarnings renders the load report for the JSON envelope.
func reportWarnings(report *registry.LoadReport) []Warning {
	var warnings []Warning
	for _, p := range report.Skipped {
		warnings = append(warnings, Warning{
			Code:    WarnSkippedRecord,
			Message: fmt.Sprintf("%s/%s: %v", p.Type, p.ID, p.Err),
		})
	}
	for _, d := range report.Dangling {
		warnings = append(warnings, Warning{
			Code:    WarnDanglingRef,
			Message: fmt.Sprintf("%s/%s %s -> %s/%s", d.SourceType, d.SourceID, d.Slot, d.TargetType, d.TargetID),
		})
	}
	for _, m := range report.Malformed {
		warnings = append(warnings, Warning{
			Code:    WarnMalformedRef,
			Message: fmt.Sprintf("%s/%s %s", m.SourceType, m.SourceID, m.Slot),
		})
	}
	return warnings
}

// canonicalType maps user input like "patient" to the registered type
// name "Patient".
func canonicalType(s *schema.Registry, input string) (string, bool) {
	for _, name := range s.Types() {
		if strings.EqualFold(name, input) {
			return name, true
		}
	}
	return "", false
}
