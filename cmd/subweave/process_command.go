package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"subweave/internal/captions"
	"subweave/internal/config"
	"subweave/internal/fileutil"
	"subweave/internal/language"
	"subweave/internal/logging"
	"subweave/internal/naming"
	"subweave/internal/pipeline"
	"subweave/internal/render"
	"subweave/internal/runlog"
	"subweave/internal/sentence"
	"subweave/internal/translit"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var (
		langFlag    string
		titleFlag   string
		urlFlag     string
		outFlag     string
		forceFlag   bool
		mergeFlag   bool
		translitFlg bool
	)

	cmd := &cobra.Command{
		Use:   "process <transcript-file>",
		Short: "Merge, transliterate, and emit subtitle artifacts for a transcript",
		Long: `Process reads a transcript produced by the recognition layer (WhisperX-style
JSON, SRT, or WebVTT), merges adjacent captions into sentences, optionally
transliterates the text into the configured target script, and writes every
requested output format into a dated output folder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := processOptions{
				input: args[0],
				lang:  langFlag,
				title: titleFlag,
				url:   urlFlag,
				out:   outFlag,
				force: forceFlag,
			}
			if cmd.Flags().Changed("merge") {
				opts.merge = &mergeFlag
			}
			if cmd.Flags().Changed("transliterate") {
				opts.transliterate = &translitFlg
			}
			return runProcess(runCtx, cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&langFlag, "lang", "", "Language code of the transcript (default: from input, else auto)")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Video title used for the output folder name")
	cmd.Flags().StringVar(&urlFlag, "url", "", "Source video URL used to derive the video id")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default: derived under paths.out_root)")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite artifacts in an existing output directory")
	cmd.Flags().BoolVar(&mergeFlag, "merge", true, "Merge captions into sentences (overrides config)")
	cmd.Flags().BoolVar(&translitFlg, "transliterate", false, "Transliterate caption text (overrides config)")

	return cmd
}

type processOptions struct {
	input string
	lang  string
	title string
	url   string
	out   string
	force bool
	// nil means "use the configured default".
	merge         *bool
	transliterate *bool
}

func runProcess(ctx context.Context, cmd *cobra.Command, cfg *config.Config, opts processOptions) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	mergeEnabled := cfg.Merge.Enabled
	if opts.merge != nil {
		mergeEnabled = *opts.merge
	}
	translitEnabled := cfg.Transliteration.Enabled
	if opts.transliterate != nil {
		translitEnabled = *opts.transliterate
	}

	doc, skipped, err := readTranscript(opts.input, opts.lang)
	if err != nil {
		return err
	}
	for _, skip := range skipped {
		logger.Warn("skipped malformed record",
			logging.String(logging.FieldComponent, "captions"),
			logging.Int("record", skip.Index),
			logging.String("reason", skip.Reason))
	}

	formats := make([]render.Format, 0, len(cfg.Output.Formats))
	for _, name := range cfg.Output.Formats {
		format, err := render.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}

	pipelineOpts := pipeline.Options{
		Merge: mergeEnabled,
		MergeOptions: sentence.Options{
			MaxGapMS:        cfg.Merge.MaxGapMS,
			MaxSentenceMS:   cfg.Merge.MaxSentenceMS,
			TerminalMarkers: cfg.Merge.TerminalMarkers,
		},
		Workers: cfg.Transliteration.Workers,
		Formats: formats,
	}
	if translitEnabled {
		engine, err := translit.NewExecEngine(cfg.Transliteration.Command, cfg.Transliteration.TargetScript)
		if err != nil {
			return err
		}
		order, err := translit.ParseSchemes(cfg.Transliteration.SchemeOrder)
		if err != nil {
			return err
		}
		adapter, err := translit.NewAdapter(engine, order, cfg.Transliteration.MaxResidualRatio)
		if err != nil {
			return err
		}
		pipelineOpts.Adapter = adapter
	}

	title := strings.TrimSpace(opts.title)
	if title == "" {
		base := filepath.Base(opts.input)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	outDir, err := resolveOutputDir(cfg, opts, title)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", outDir, err)
	}

	// One processing run per output directory at a time.
	lock := flock.New(filepath.Join(outDir, ".subweave.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return fmt.Errorf("output directory %s is being written by another subweave process", outDir)
	}
	defer lock.Unlock() //nolint:errcheck

	store, err := runlog.Open(cfg.Paths.LogDir)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer store.Close()

	run, err := store.Begin(ctx, opts.input, doc.Language, mergeEnabled, translitEnabled, cfg.Output.Formats)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	logger = logger.With(logging.String(logging.FieldRunID, run.ID))
	logger.Info("processing transcript",
		logging.String("input", opts.input),
		logging.String("title", naming.DisplayTitle(title)),
		logging.String("language", language.DisplayName(doc.Language)),
		logging.Int("segments", len(doc.Segments)))

	for _, skip := range skipped {
		run.Warnings = append(run.Warnings, skip.String())
	}

	proc, err := pipeline.New(logger, pipelineOpts)
	if err != nil {
		return finishFailed(ctx, store, run, err)
	}
	result, err := proc.Run(ctx, doc)
	if err != nil {
		return finishFailed(ctx, store, run, err)
	}
	run.Warnings = append(run.Warnings, result.Warnings...)

	for _, artifact := range result.Artifacts {
		target := filepath.Join(outDir, artifact.Name)
		if !opts.force {
			if _, err := os.Stat(target); err == nil {
				return finishFailed(ctx, store, run, fmt.Errorf("artifact %s already exists (use --force to overwrite)", target))
			}
		}
		if err := os.WriteFile(target, []byte(artifact.Payload), 0o644); err != nil {
			return finishFailed(ctx, store, run, fmt.Errorf("write %s: %w", target, err))
		}
		run.Artifacts = append(run.Artifacts, artifact.Name)
	}

	// Keep the input transcript beside its artifacts so the folder stands
	// alone.
	sourceName, err := fileutil.PreserveSource(opts.input, outDir)
	if err != nil {
		return finishFailed(ctx, store, run, fmt.Errorf("preserve source transcript: %w", err))
	}
	if sourceName != "" {
		run.Artifacts = append(run.Artifacts, sourceName)
	}

	run.Status = runlog.StatusCompleted
	if err := store.Finish(ctx, run); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d artifact(s) for %q to %s\n", len(run.Artifacts), naming.DisplayTitle(title), outDir)
	if result.Degraded > 0 {
		fmt.Fprintf(out, "Warning: %d caption unit(s) used best-effort transliteration\n", result.Degraded)
	}
	return nil
}

func readTranscript(path, lang string) (*captions.Document, []captions.SkippedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read transcript: %w", err)
	}
	normalized := language.Normalize(lang)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, skipped, err := captions.ParseWhisperJSON(data, lang)
		if err != nil {
			return nil, nil, err
		}
		doc.Language = language.Normalize(doc.Language)
		return doc, skipped, nil
	case ".srt":
		doc, skipped := captions.ParseSRT(string(data), normalized)
		return doc, skipped, nil
	case ".vtt":
		doc, skipped := captions.ParseVTT(string(data), normalized)
		return doc, skipped, nil
	default:
		return nil, nil, fmt.Errorf("unrecognized transcript format %q (expected .json, .srt, or .vtt)", filepath.Ext(path))
	}
}

func resolveOutputDir(cfg *config.Config, opts processOptions, title string) (string, error) {
	if strings.TrimSpace(opts.out) != "" {
		return config.ExpandPath(opts.out)
	}
	videoID := naming.ExtractVideoID(opts.url)
	folder := naming.OutputFolderName(title, videoID, time.Now())
	return filepath.Join(cfg.Paths.OutRoot, folder), nil
}

func finishFailed(ctx context.Context, store *runlog.Store, run *runlog.Run, cause error) error {
	run.Status = runlog.StatusFailed
	run.ErrorMessage = cause.Error()
	if err := store.Finish(ctx, run); err != nil {
		return fmt.Errorf("%w (additionally failed to record run: %v)", cause, err)
	}
	return cause
}
