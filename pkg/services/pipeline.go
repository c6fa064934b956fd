package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/config"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/is24"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/kyero"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/transform"
)

// Report summarizes one run: how many properties came in, how many records
// went out, and what the image reconciliation did.
type Report struct {
	Parsed      int
	SkippedType int
	Dropped     int
	Written     int
	OutputPath  string
	Sync        SyncStats
}

// Pipeline drives the whole batch: parse the source feed once, transform and
// validate record by record, write the target feed, then reconcile the image
// store against the same parsed document. Everything runs sequentially in
// one pass.
type Pipeline struct {
	cfg    *config.Config
	log    *zap.Logger
	mapper *transform.Transformer
	syncer *Syncer
	client *http.Client
}

func NewPipeline(cfg *config.Config, log *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		log:    log,
		mapper: transform.New(log),
		syncer: NewSyncer(cfg, log),
		client: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Run executes the full pipeline. Parse and write failures are fatal and
// returned; per-record and per-image failures are logged, counted in the
// report, and do not stop the run.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	rep := &Report{OutputPath: p.cfg.OutputFeed}

	feed, err := p.loadFeed(ctx)
	if err != nil {
		return rep, err
	}
	rep.Parsed = len(feed.Properties)

	records := p.transformFeed(feed, rep)
	if err := p.writeRecords(records, rep); err != nil {
		p.log.Error("feed write failed", zap.Error(err))
		return rep, err
	}

	stats, err := p.syncer.Sync(ctx, BuildManifest(feed, p.log))
	rep.Sync = stats
	if err != nil {
		p.log.Error("image sync failed", zap.Error(err))
		return rep, err
	}

	p.logSummary(rep)
	return rep, nil
}

// Transform runs only the feed conversion half of the pipeline.
func (p *Pipeline) Transform(ctx context.Context) (*Report, error) {
	rep := &Report{OutputPath: p.cfg.OutputFeed}

	feed, err := p.loadFeed(ctx)
	if err != nil {
		return rep, err
	}
	rep.Parsed = len(feed.Properties)

	records := p.transformFeed(feed, rep)
	if err := p.writeRecords(records, rep); err != nil {
		p.log.Error("feed write failed", zap.Error(err))
		return rep, err
	}

	p.logSummary(rep)
	return rep, nil
}

// SyncImages runs only the image reconciliation half of the pipeline.
func (p *Pipeline) SyncImages(ctx context.Context) (*Report, error) {
	rep := &Report{}

	feed, err := p.loadFeed(ctx)
	if err != nil {
		return rep, err
	}
	rep.Parsed = len(feed.Properties)

	stats, err := p.syncer.Sync(ctx, BuildManifest(feed, p.log))
	rep.Sync = stats
	if err != nil {
		p.log.Error("image sync failed", zap.Error(err))
		return rep, err
	}

	p.logSummary(rep)
	return rep, nil
}

func (p *Pipeline) loadFeed(ctx context.Context) (*kyero.Feed, error) {
	p.log.Info("parsing source feed", zap.String("source", p.cfg.SourceFeed))

	feed, err := kyero.Load(ctx, p.client, p.cfg.SourceFeed)
	if err != nil {
		p.log.Error("feed parse failed", zap.Error(err))
		return nil, err
	}

	p.log.Info("feed parsed", zap.Int("properties", len(feed.Properties)))
	return feed, nil
}

func (p *Pipeline) transformFeed(feed *kyero.Feed, rep *Report) []*is24.RealEstate {
	records := make([]*is24.RealEstate, 0, len(feed.Properties))

	for i := range feed.Properties {
		prop := &feed.Properties[i]

		rec, ok := p.mapper.Map(prop)
		if !ok {
			rep.SkippedType++
			continue
		}

		res := transform.Validate(rec)
		if !res.Valid() {
			p.log.Warn("record dropped by validation",
				zap.String("property", rec.ExternalID),
				zap.Strings("fields", res.Fields()))
			rep.Dropped++
			continue
		}

		records = append(records, rec)
	}

	return records
}

func (p *Pipeline) writeRecords(records []*is24.RealEstate, rep *Report) error {
	if p.cfg.Split {
		rep.OutputPath = p.cfg.SplitDir
		paths, err := is24.WriteSplit(p.cfg.SplitDir, records)
		rep.Written = len(paths)
		return err
	}

	if err := is24.WriteFeed(p.cfg.OutputFeed, records); err != nil {
		return err
	}
	rep.Written = len(records)
	return nil
}

func (p *Pipeline) logSummary(rep *Report) {
	p.log.Info("run complete",
		zap.Int("parsed", rep.Parsed),
		zap.Int("skipped_type", rep.SkippedType),
		zap.Int("dropped", rep.Dropped),
		zap.Int("written", rep.Written),
		zap.Int("images_downloaded", rep.Sync.Downloaded),
		zap.Int("images_skipped", rep.Sync.Skipped),
		zap.Int("images_failed", rep.Sync.Failed),
		zap.Int("dirs_removed", rep.Sync.Removed),
		zap.Int("dirs_remove_failed", rep.Sync.RemoveFailed))
}
