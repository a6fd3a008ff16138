package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/bookdex/bookdex"
	"github.com/bookdex/bookdex/codec"
	"github.com/bookdex/bookdex/filter"
	"github.com/bookdex/bookdex/model"
)

var version = "0.1.0"

// engine is built once in the Before hook and shared by all commands.
var engine *bookdex.Engine

func main() {
	app := &cli.App{
		Name:    "bookdex",
		Usage:   "Search, filter and sort a book collection from the command line",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "records",
				Aliases: []string{"r"},
				Usage:   "JSON file holding the record collection",
				Value:   "books.json",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file with engine settings",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Emit logs as JSON instead of text",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Aliases:   []string{"s"},
				Usage:     "Search the collection",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "field",
						Aliases: []string{"f"},
						Usage:   "Restrict the query to one field (title, author, publisher, ...)",
					},
					&cli.BoolFlag{
						Name:    "regex",
						Aliases: []string{"E"},
						Usage:   "Interpret the query as a regular expression over raw values",
					},
					&cli.BoolFlag{
						Name:  "fuzzy",
						Usage: "Typo-tolerant matching ordered by similarity",
					},
					&cli.BoolFlag{
						Name:    "keywords",
						Aliases: []string{"k"},
						Usage:   "Treat each argument as its own keyword and union the results",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: searchCommand,
			},
			{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "Filter the collection and optionally sort the result",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "category",
						Usage: "Exact category",
					},
					&cli.StringFlag{
						Name:  "status",
						Usage: "Exact reading status",
					},
					&cli.StringSliceFlag{
						Name:    "tag",
						Aliases: []string{"t"},
						Usage:   "Match records carrying any of these tags (repeatable)",
					},
					&cli.Float64Flag{
						Name:  "min-progress",
						Usage: "Lower progress bound, 0..1",
					},
					&cli.Float64Flag{
						Name:  "max-progress",
						Usage: "Upper progress bound, 0..1",
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "Earliest publish date (e.g. 1965-08-01 or 1965)",
					},
					&cli.StringFlag{
						Name:  "to",
						Usage: "Latest publish date",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort the result by this field",
					},
					&cli.StringFlag{
						Name:  "direction",
						Usage: "Sort direction: asc or desc",
						Value: "asc",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: filterCommand,
			},
			{
				Name:      "suggest",
				Usage:     "Autocomplete candidates for a partial query",
				ArgsUsage: "<partial>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "instant",
						Usage: "Narrower as-you-type variant ordered by match relevance",
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: suggestCommand,
			},
			{
				Name:  "stats",
				Usage: "Show collection and index statistics",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
				},
				Action: statsCommand,
			},
		},
		Before: func(c *cli.Context) error {
			// Help and version runs do not need a collection.
			if c.NArg() == 0 || c.Args().Get(0) == "help" {
				return nil
			}
			return buildEngine(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bookdex: %v\n", err)
		os.Exit(1)
	}
}

// buildEngine loads the record collection and the optional TOML config and
// constructs the shared engine.
func buildEngine(c *cli.Context) error {
	cfg := &Config{}
	if path := c.String("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		cfg = loaded
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, bookdex.WithLogger(newLogger(c)))

	records, err := loadRecords(c.String("records"))
	if err != nil {
		return err
	}

	engine, err = bookdex.New(records, opts...)
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}
	return nil
}

func newLogger(c *cli.Context) *bookdex.Logger {
	level := parseLevel(c.String("log-level"))
	if c.Bool("log-json") {
		return bookdex.NewJSONLogger(level)
	}
	return bookdex.NewTextLogger(level)
}

func loadRecords(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records from %s: %w", path, err)
	}
	var records []model.Record
	if err := codec.Default.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records in %s: %w", path, err)
	}
	return records, nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: bookdex search <query>")
	}
	query := strings.Join(c.Args().Slice(), " ")

	var results []model.Record
	switch {
	case c.Bool("regex"):
		pattern, err := regexp.Compile(query)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		results = engine.RegexSearch(pattern)
	case c.Bool("fuzzy"):
		results = engine.FuzzySearch(query)
	case c.Bool("keywords"):
		results = engine.MultiKeywordSearch(c.Args().Slice())
	case c.String("field") != "":
		field, err := model.ParseField(c.String("field"))
		if err != nil {
			return err
		}
		results = engine.SearchByField(field, query)
	default:
		results = engine.Search(query)
	}

	return printRecords(c, results)
}

func filterCommand(c *cli.Context) error {
	crit := filter.Criteria{
		Category:  c.String("category"),
		Status:    c.String("status"),
		Tags:      c.StringSlice("tag"),
		StartDate: c.String("from"),
		EndDate:   c.String("to"),
	}
	if c.IsSet("min-progress") {
		v := c.Float64("min-progress")
		crit.MinProgress = &v
	}
	if c.IsSet("max-progress") {
		v := c.Float64("max-progress")
		crit.MaxProgress = &v
	}

	results, err := engine.ApplyFilters(crit)
	if err != nil {
		return err
	}

	if name := c.String("sort"); name != "" {
		// Validate eagerly; SortBy itself treats unknown fields as a no-op.
		if _, err := model.ParseField(name); err != nil {
			return err
		}
		dir, err := model.ParseDirection(c.String("direction"))
		if err != nil {
			return err
		}
		results = engine.SortBy(name, dir)
	}

	return printRecords(c, results)
}

func suggestCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: bookdex suggest <partial>")
	}
	partial := strings.Join(c.Args().Slice(), " ")

	var suggestions []string
	if c.Bool("instant") {
		suggestions = engine.InstantSuggestions(partial)
	} else {
		suggestions = engine.Suggestions(partial)
	}

	if c.Bool("json") {
		return printJSON(suggestions)
	}
	for _, s := range suggestions {
		fmt.Println(s)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	stats := engine.PerformanceStats()
	if c.Bool("json") {
		return printJSON(stats)
	}

	fmt.Printf("Records:           %d\n", stats.RecordCount)
	fmt.Printf("Indexed tokens:    %d\n", stats.IndexedTokens)
	fmt.Printf("Index fingerprint: %016x\n", stats.IndexFingerprint)
	fmt.Printf("Cache:             %d/%d entries\n", stats.CacheSize, stats.CacheCapacity)
	fmt.Printf("History:           %d entries\n", stats.HistorySize)
	return nil
}

func printRecords(c *cli.Context, records []model.Record) error {
	if c.Bool("json") {
		return printJSON(records)
	}
	for _, rec := range records {
		line := rec.Title
		if rec.Author != "" {
			line += " by " + rec.Author
		}
		fmt.Printf("%s\t%s\n", rec.ID, line)
	}
	fmt.Fprintf(os.Stderr, "%d record(s)\n", len(records))
	return nil
}

func printJSON(v any) error {
	data, err := codec.Default.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = os.Stdout.Write(data)
	return err
}
