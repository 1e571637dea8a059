// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/seromatch"
	"github.com/poiesic/seromatch/core"
	"github.com/poiesic/seromatch/dataset"
	"github.com/poiesic/seromatch/gazetteer"
	"github.com/poiesic/seromatch/storage"
)

func main() {
	app := &cli.App{
		Name:  "seromatch",
		Usage: "Identity resolution for antigenic assay records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import a JSON record file as a named record set",
				ArgsUsage: "FILE",
				Action:    importCommand,
				Flags: []cli.Flag{
					dbFlag(),
					kindFlag(),
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Record set name",
						Required: true,
					},
				},
			},
			{
				Name:      "resolve",
				Usage:     "Resolve a free-text query against a stored record set",
				ArgsUsage: "QUERY",
				Action:    resolveCommand,
				Flags: []cli.Flag{
					dbFlag(),
					kindFlag(),
					setFlag(),
					&cli.BoolFlag{
						Name:  "ignore-mutations",
						Usage: "Skip the mutation-token gate",
					},
				},
			},
			{
				Name:      "lookup",
				Usage:     "Look up entries whose id or long name matches a value",
				ArgsUsage: "VALUE",
				Action:    lookupCommand,
				Flags: []cli.Flag{
					dbFlag(),
					kindFlag(),
					setFlag(),
					&cli.StringFlag{
						Name:  "by",
						Usage: "Lookup field (id or long)",
						Value: "id",
					},
				},
			},
			{
				Name:      "places",
				Usage:     "Query the place directory",
				ArgsUsage: "QUERY",
				Action:    placesCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "edit",
						Usage: "Search by edit distance instead of matching",
					},
					&cli.BoolFlag{
						Name:  "no-aliasing",
						Usage: "Match the canonical names only",
					},
				},
			},
			{
				Name:   "health",
				Usage:  "Run data-quality checks on a stored record set",
				Action: healthCommand,
				Flags: []cli.Flag{
					dbFlag(),
					kindFlag(),
					setFlag(),
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to the record store directory",
		Required: true,
	}
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "Record kind (antigen or serum)",
		Value:   "antigen",
	}
}

func setFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "set",
		Aliases:  []string{"s"},
		Usage:    "Record set name",
		Required: true,
	}
}

func parseKind(c *cli.Context) (core.Kind, error) {
	switch strings.ToLower(c.String("kind")) {
	case "antigen":
		return core.KindAntigen, nil
	case "serum":
		return core.KindSerum, nil
	default:
		return 0, fmt.Errorf("invalid kind %q: must be antigen or serum", c.String("kind"))
	}
}

func openDatabase(c *cli.Context) (*seromatch.Database, error) {
	return seromatch.NewDatabase(c.String("db"))
}

// openDataset loads the named record set into a matcher of the requested
// kind.
func openDataset(ctx context.Context, c *cli.Context, db *seromatch.Database) (*dataset.Dataset, error) {
	kind, err := parseKind(c)
	if err != nil {
		return nil, err
	}
	if kind == core.KindSerum {
		return db.SerumDataset(ctx, c.String("set"))
	}
	return db.AntigenDataset(ctx, c.String("set"))
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one record file argument")
	}
	kind, err := parseKind(c)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}
	var records []core.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse record file: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var info *storage.RecordSetInfo
	if kind == core.KindSerum {
		info, err = db.ImportSera(ctx, c.String("name"), records)
	} else {
		info, err = db.ImportAntigens(ctx, c.String("name"), records)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("imported %d %s records as %q\n", info.Count, kind, info.Name)
	return nil
}

func resolveCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one query argument")
	}

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ds, err := openDataset(ctx, c, db)
	if err != nil {
		return err
	}
	defer ds.Close()

	found, err := ds.AliasedSearch(c.Args().First(), dataset.ScoreOptions{
		IgnoreMutations: c.Bool("ignore-mutations"),
	})
	if err != nil {
		return err
	}

	if len(found) == 0 {
		fmt.Println("no match")
		return nil
	}
	for _, entry := range found {
		fmt.Printf("%s\t%s\t%s\n", entry.ID, entry.Long, entry.Short)
	}
	return nil
}

func lookupCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one value argument")
	}

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ds, err := openDataset(ctx, c, db)
	if err != nil {
		return err
	}
	defer ds.Close()

	found, err := ds.GetEntry(c.Args().First(), dataset.SearchField(c.String("by")))
	if err != nil {
		return err
	}

	for _, entry := range found {
		fmt.Printf("%s\t%s\t%s\n", entry.ID, entry.Long, entry.Short)
	}
	return nil
}

func placesCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one query argument")
	}
	query := c.Args().First()
	directory := gazetteer.Default()
	aliasing := !c.Bool("no-aliasing")

	if c.Bool("edit") {
		found, dist := directory.EditSearch(query, aliasing)
		for _, place := range found {
			fmt.Printf("%s\t%s\t%d\n", place.Code, place.Name, dist)
		}
		return nil
	}

	found, err := directory.Search(query, true, aliasing, false)
	if err != nil {
		return err
	}
	for _, place := range found {
		fmt.Printf("%s\t%s\n", place.Code, place.Name)
	}
	return nil
}

func healthCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ds, err := openDataset(ctx, c, db)
	if err != nil {
		return err
	}
	defer ds.Close()

	diags := ds.HealthCheck()
	if len(diags) == 0 {
		fmt.Println("ok")
		return nil
	}
	for _, diag := range diags {
		fmt.Println(diag.String())
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
