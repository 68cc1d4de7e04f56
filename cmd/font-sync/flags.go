package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/font-sync/internal/config"
	"github.com/ytget/font-sync/internal/download"
)

// stringList collects a repeatable flag; each value may hold a comma list
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

type options struct {
	configPath string
	categories stringList
	subset     string
	styleCount int
	thickness  int
	slant      int
	width      int
	dir        string
	catalog    string
	logLevel   string
	onError    bool
	dryRun     bool
	installed  bool

	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("font-sync", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: font-sync [flags]\n\nDownloads the font families matching the filters into the font directory.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.Var(&opts.categories, "category", "category to include, repeatable or comma separated (default all)")
	fs.StringVar(&opts.subset, "subset", "", "required character subset, e.g. latin-ext")
	fs.IntVar(&opts.styleCount, "stylecount", 0, "minimum number of styles (0 disables)")
	fs.IntVar(&opts.thickness, "thickness", 0, "minimum thickness (1-10, 0 disables)")
	fs.IntVar(&opts.slant, "slant", 0, "minimum slant (1-10, 0 disables)")
	fs.IntVar(&opts.width, "width", 0, "minimum width (1-10, 0 disables)")
	fs.StringVar(&opts.dir, "dir", "", "font directory (default depends on the OS)")
	fs.StringVar(&opts.catalog, "catalog", "", "catalog file or metadata URL (default embedded catalog)")
	fs.StringVar(&opts.logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR")
	fs.BoolVar(&opts.onError, "continue", false, "keep going after a family fails")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print the matching families and exit")
	fs.BoolVar(&opts.installed, "installed", false, "list the fonts in the font directory and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// apply overrides the loaded configuration with the flags given on the command line
func (o *options) apply(cfg *config.CLIConfig) {
	if o.set["category"] {
		cfg.Filter.Categories = o.categories
	}
	if o.set["subset"] {
		cfg.Filter.Subset = o.subset
	}
	if o.set["stylecount"] {
		cfg.Filter.StyleCount = o.styleCount
	}
	if o.set["thickness"] {
		cfg.Filter.Thickness = o.thickness
	}
	if o.set["slant"] {
		cfg.Filter.Slant = o.slant
	}
	if o.set["width"] {
		cfg.Filter.Width = o.width
	}
	if o.set["dir"] {
		cfg.TargetDir = o.dir
	}
	if o.set["catalog"] {
		cfg.Catalog = o.catalog
	}
	if o.set["log-level"] {
		cfg.LogLevel = o.logLevel
	}
	if o.onError {
		cfg.OnError = string(download.SkipOnError)
	}
}
