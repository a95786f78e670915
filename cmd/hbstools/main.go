// hbstools — runs the Poisson-FOCuS transient-detection pipeline over
// a set of CSV-backed data folders and prints the resulting events.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbstools/hbstools/adapters/csvsink"
	"github.com/hbstools/hbstools/adapters/fsprovider"
	"github.com/hbstools/hbstools/internal/config"
	"github.com/hbstools/hbstools/internal/obslog"
	"github.com/hbstools/hbstools/search"
	"github.com/hbstools/hbstools/stream"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "hbstools",
		Short:   "Poisson-FOCuS transient-detection pipeline",
		Version: version,
	}

	var outPath string

	searchCmd := &cobra.Command{
		Use:   "search CONFIG FOLDER...",
		Short: "Run the detector over one or more CSV-backed data folders",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], args[1:], outPath)
		},
	}
	searchCmd.Flags().StringVar(&outPath, "out", "", "write events to this CSV file instead of stdout")
	rootCmd.AddCommand(searchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSearch(configPath string, folders []string, outPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	providers := make([]stream.DatasetProvider, len(folders))
	for i, dir := range folders {
		providers[i] = fsprovider.New(dir)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("hbstools: create %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	sink := csvsink.New(out)
	logger := obslog.New(nil)

	events, err := search.Run(context.Background(), providers, cfg, search.Deps{
		Logger: logger,
		Sink:   sink,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "hbstools: %d events\n", len(events))
	return nil
}
