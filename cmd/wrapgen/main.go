package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/goliatone/go-wrapgen/internal/config"
	"github.com/goliatone/go-wrapgen/internal/prompt"
	"github.com/goliatone/go-wrapgen/internal/verify"
	"github.com/goliatone/go-wrapgen/internal/watch"
	"github.com/goliatone/go-wrapgen/pkg/generate"
	"github.com/goliatone/go-wrapgen/pkg/manifest"
	"github.com/goliatone/go-wrapgen/pkg/orchestrator"
	"github.com/goliatone/go-wrapgen/pkg/targets/react"
	"github.com/goliatone/go-wrapgen/pkg/targets/vue"
)

func main() {
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		log.Fatalf("wrapgen: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("wrapgen", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "project file (wrapgen.yaml is picked up when present)")
		manifestArg = fs.String("manifest", "", "component manifest path or URL")
		targetsArg  = fs.String("targets", "", "comma-separated targets to generate")
		corePackage = fs.String("core-package", "", "npm package holding the compiled elements")
		outDir      = fs.String("out", "", "output directory (single-target runs only)")
		outVue      = fs.String("out-vue", "", "output directory for the vue target")
		outReact    = fs.String("out-react", "", "output directory for the react target")
		excludeArg  = fs.String("exclude", "", "comma-separated tags to skip")
		verifyFlag  = fs.Bool("verify", false, "syntax-check generated sources before writing")
		watchFlag   = fs.Bool("watch", false, "regenerate whenever the manifest changes")
		initFlag    = fs.Bool("init", false, "create a project file interactively")
		verbose     = fs.Bool("verbose", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	if *initFlag {
		return runInit(ctx, *configPath, registry.List())
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, *manifestArg, *corePackage, *excludeArg, *verifyFlag)

	if cfg.Manifest == "" {
		return errors.New("no manifest: pass -manifest or set it in " + config.DefaultFileName)
	}
	if cfg.CorePackage == "" {
		return errors.New("no core package: pass -core-package or set it in " + config.DefaultFileName)
	}

	names := cfg.TargetNames()
	if *targetsArg != "" {
		names = splitList(*targetsArg)
	}
	if len(names) == 0 {
		return errors.New("no targets selected: pass -targets or configure them in " + config.DefaultFileName)
	}
	if *outDir != "" && len(names) > 1 {
		return errors.New("-out applies to single-target runs; use -out-vue and -out-react")
	}

	perTargetOut := map[string]string{"vue": *outVue, "react": *outReact}

	req := orchestrator.Request{Source: parseSource(cfg.Manifest)}
	for _, name := range names {
		if !registry.Has(name) {
			return fmt.Errorf("unknown target %q (available: %s)", name, strings.Join(registry.List(), ", "))
		}
		target := cfg.Targets[name]

		dir := target.OutDir
		if *outDir != "" {
			dir = *outDir
		}
		if override := perTargetOut[name]; override != "" {
			dir = override
		}
		if dir == "" {
			return fmt.Errorf("target %q: no output directory (set targets.%s.outDir or -out)", name, name)
		}

		req.Targets = append(req.Targets, orchestrator.TargetRequest{
			Name:   name,
			OutDir: dir,
			Options: generate.Options{
				CorePackage:       cfg.CorePackage,
				ProxiesFile:       target.ProxiesFile,
				IncludeDefiner:    target.IncludeDefiner,
				CustomElementsDir: target.CustomElementsDir,
				Exclude:           cfg.Exclude,
				Bindings:          bindingsFromConfig(cfg.Bindings),
				Header:            cfg.Header,
			},
		})
	}

	logger, err := buildLogger(*verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	genOpts := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithLogger(logger),
	}
	if cfg.Verify {
		genOpts = append(genOpts, orchestrator.WithVerifier(verify.New()))
	}
	gen := orchestrator.New(genOpts...)

	runOnce := func(ctx context.Context) error {
		result, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		report(result)
		return nil
	}

	if !*watchFlag {
		return runOnce(ctx)
	}

	if strings.HasPrefix(cfg.Manifest, "http://") || strings.HasPrefix(cfg.Manifest, "https://") {
		return errors.New("watch mode needs a local manifest path")
	}

	watcher, err := watch.New(cfg.Manifest, watch.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runOnce(ctx); err != nil {
		logger.Error("initial generation failed", zap.Error(err))
	}
	if err := watcher.Run(ctx, runOnce); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runInit(ctx context.Context, path string, targets []string) error {
	if path == "" {
		path = config.DefaultFileName
	}

	driver := prompt.NewDriver()
	if _, err := os.Stat(path); err == nil {
		overwrite, err := driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		})
		if err != nil {
			return err
		}
		if !overwrite {
			return prompt.ErrAborted
		}
	}

	wizard, err := prompt.NewWizard(driver, targets)
	if err != nil {
		return err
	}
	cfg, err := wizard.Run(ctx)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.Load(config.DefaultFileName)
	}
	return config.Config{}, nil
}

func applyFlags(cfg *config.Config, manifestArg, corePackage, exclude string, verifyFlag bool) {
	if manifestArg != "" {
		cfg.Manifest = manifestArg
	}
	if corePackage != "" {
		cfg.CorePackage = corePackage
	}
	if exclude != "" {
		cfg.Exclude = splitList(exclude)
	}
	if verifyFlag {
		cfg.Verify = true
	}
}

func buildRegistry() (*generate.Registry, error) {
	vueTarget, err := vue.New()
	if err != nil {
		return nil, err
	}
	reactTarget, err := react.New()
	if err != nil {
		return nil, err
	}

	registry := generate.NewRegistry()
	if err := registry.Register(vueTarget); err != nil {
		return nil, err
	}
	if err := registry.Register(reactTarget); err != nil {
		return nil, err
	}
	return registry, nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func parseSource(raw string) manifest.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return manifest.SourceFromURL(path)
	}
	return manifest.SourceFromFile(path)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func bindingsFromConfig(bindings []config.Binding) []generate.ModelBinding {
	if len(bindings) == 0 {
		return nil
	}
	out := make([]generate.ModelBinding, len(bindings))
	for i, b := range bindings {
		out[i] = generate.ModelBinding{
			Elements:      b.Elements,
			Prop:          b.Prop,
			UpdateEvents:  b.UpdateEvents,
			ExternalEvent: b.ExternalEvent,
		}
	}
	return out
}

func report(result orchestrator.Result) {
	for _, target := range result.Targets {
		changed := 0
		for _, file := range target.Files {
			if file.Changed {
				changed++
			}
		}
		fmt.Printf("%s: %d file(s), %d changed\n", target.Target, len(target.Files), changed)
	}
	fmt.Printf("Generated wrappers for %d component(s)\n", result.Components)
}
