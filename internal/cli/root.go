// Package cli wires the calendar pipeline behind a cobra command tree.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ami93120/mosque-calendar/internal/cache"
	"github.com/ami93120/mosque-calendar/internal/calendar"
	"github.com/ami93120/mosque-calendar/internal/config"
	"github.com/ami93120/mosque-calendar/internal/datasource"
	"github.com/ami93120/mosque-calendar/internal/hijri"
	"github.com/ami93120/mosque-calendar/internal/prayer"
)

// Global flags shared across subcommands.
var (
	FlagConfigPath string
	FlagClient     string
	FlagClientsDir string
	FlagCacheDir   string
	FlagOverrides  string
	FlagLatitude   float64
	FlagLongitude  float64
	FlagAsrMethod  string
	FlagNoRefresh  bool
)

// loadedConfig and loadedClient are filled during PersistentPreRunE for
// all subcommands; loadedClient stays nil without --client.
var (
	loadedConfig *config.Config
	loadedClient *config.ClientConfig
)

// NewRootCmd creates the root command. The version is injected by the
// binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mosque-calendar",
		Short:   "Printable Gregorian/Hijri mosque calendar with prayer times",
		Long:    "Renders a dual Gregorian/Hijri calendar with daily prayer times,\nFrench school holidays, public holidays, and DST markers,\npersonalized per client via JSON configuration.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigForRun(cmd)
			if err != nil {
				return err
			}
			loadedConfig = cfg
			return nil
		},
		// Default action: render the current month.
		RunE:          runMonth,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&FlagConfigPath, "config", "", "Config file path (default: ~/.config/mosque-calendar/config.json)")
	pf.StringVar(&FlagClient, "client", "", "Client identifier (loads <clients-dir>/<id>.json)")
	pf.StringVar(&FlagClientsDir, "clients-dir", "", "Directory holding client configuration documents")
	pf.StringVar(&FlagCacheDir, "cache-dir", "", "Cache directory (default: ~/.cache/mosque-calendar/)")
	pf.StringVar(&FlagOverrides, "overrides", "", "Date-keyed prayer-time override file (JSON)")
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Override latitude")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Override longitude")
	pf.StringVar(&FlagAsrMethod, "asr-method", "", "Asr juristic method: Shafi or Hanafi")
	pf.BoolVar(&FlagNoRefresh, "no-refresh", false, "Skip the holiday data refresh")

	rootCmd.AddCommand(newMonthCmd())
	rootCmd.AddCommand(newYearCmd())
	rootCmd.AddCommand(newRamadanCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfigForRun merges the configuration sources: CLI flags over the
// client document over the config file over defaults.
func loadConfigForRun(cmd *cobra.Command) (*config.Config, error) {
	path := FlagConfigPath
	if path == "" {
		path = os.Getenv("MOSQUE_CALENDAR_CONFIG")
	}

	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	loadedClient = nil
	if FlagClient != "" {
		dir := FlagClientsDir
		if dir == "" {
			dir = cfg.ClientsDir
		}
		if dir == "" {
			dir = "clients"
		}
		// A missing client document is a blocking error: the page must
		// not render with a misattributed identity or location.
		client, err := config.LoadClient(dir, FlagClient)
		if err != nil {
			return nil, err
		}
		client.ApplyTo(cfg)
		loadedClient = client
	}

	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()
	if flagWasSet(flags, root, "latitude") {
		cfg.Latitude = FlagLatitude
	}
	if flagWasSet(flags, root, "longitude") {
		cfg.Longitude = FlagLongitude
	}
	if flagWasSet(flags, root, "asr-method") {
		cfg.AsrMethod = FlagAsrMethod
	}
	if flagWasSet(flags, root, "cache-dir") {
		cfg.CacheDir = FlagCacheDir
	}
	if flagWasSet(flags, root, "overrides") {
		cfg.OverridesPath = FlagOverrides
	}

	return cfg, nil
}

// flagWasSet checks the local and persistent flag sets for an explicit
// value.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

// renderContext bundles the pipeline one render pass needs. Every
// component receives its configuration explicitly.
type renderContext struct {
	cfg    *config.Config
	client *config.ClientConfig
	loc    *time.Location
	conv   *hijri.Converter
	calc   *prayer.Calculator
	cls    *calendar.Classifier
	cal    *calendar.Calendar
	src    *datasource.Source
	ov     prayer.Overrides
	store  *cache.Store
}

// newRenderContext builds the pipeline from the loaded configuration.
// Prayer-time and cache failures degrade (placeholders, no cache); only
// an unusable timezone is fatal since every date depends on it.
func newRenderContext() (*renderContext, error) {
	cfg := loadedConfig
	if cfg == nil {
		def := config.Defaults()
		cfg = &def
	}

	loc := time.Local
	if cfg.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	calc := &prayer.Calculator{}
	if err := calc.Initialize(cfg.PrayerConfig()); err != nil {
		log.Warn().Err(err).Msg("prayer calculator unavailable, rendering placeholders")
	}

	store, err := cache.New(cfg.CacheDir)
	if err != nil {
		store = nil
		log.Warn().Err(err).Msg("cache disabled")
	}

	cal := &calendar.Calendar{}
	cls := calendar.NewClassifier(loc)
	src := datasource.New(datasource.NewClient(), store, cal, cls, loc, cfg.SchoolZone, cfg.Academy)

	var ov prayer.Overrides
	if cfg.OverridesPath != "" {
		ov, err = prayer.LoadOverrides(cfg.OverridesPath)
		if err != nil {
			return nil, err
		}
	}

	return &renderContext{
		cfg:    cfg,
		client: loadedClient,
		loc:    loc,
		conv:   hijri.NewConverter(),
		calc:   calc,
		cls:    cls,
		cal:    cal,
		src:    src,
		ov:     ov,
		store:  store,
	}, nil
}

// renderThenRefresh runs the render once with resident data, then
// refreshes the holiday data and re-renders if anything changed. The
// first render never waits on the network.
func renderThenRefresh(ctx *renderContext, render func()) {
	render()

	if FlagNoRefresh {
		return
	}

	if ctx.src.Refresh() {
		fmt.Println()
		fmt.Println("  (holiday data updated)")
		fmt.Println()
		render()
	}
}
