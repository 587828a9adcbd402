package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"phonechecker/internal/directory/report"
	"phonechecker/internal/directory/service"
	"phonechecker/pkg/config"
	"phonechecker/pkg/logger"
)

type lookupOptions struct {
	file  string
	json  bool
	noURL bool
}

func newLookupCmd() *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup QUERY...",
		Short: "Load a directory file and search it for one or more numbers",
		Example: "  phonechecker lookup --file contacts.csv \"+33 6 12 34 56 78\"\n" +
			"  phonechecker lookup --json 0612345678 0049301234567",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "CSV file to load (defaults to DIRECTORY_FILE)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&opts.noURL, "no-url", false, "omit CRM contact links")
	return cmd
}

func runLookup(cmd *cobra.Command, opts *lookupOptions, queries []string) error {
	cfg, err := config.New(serviceName)
	if err != nil {
		return err
	}
	cfg.Log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: logger.TEXT,
		Output: cmd.ErrOrStderr(),
	})
	if opts.noURL {
		cfg.ContactURLEnabled = false
	}

	svc, err := service.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	file := opts.file
	if file == "" {
		file = cfg.DirectoryFile
	}

	summary, err := svc.Load(cmd.Context(), file)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), summary.Status())

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	for _, q := range queries {
		result, err := svc.Search(cmd.Context(), q)
		if err != nil {
			return err
		}

		if opts.json {
			if err := enc.Encode(result); err != nil {
				return err
			}
			continue
		}
		if err := report.Write(out, result); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), report.Status(result))
	}
	return nil
}
