package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fincatalog/specforge/internal/catalog"
	"github.com/fincatalog/specforge/internal/openapi"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [flattened-api-name]",
		Short: "Synthesize an OpenAPI document for one catalog API operation",
		Long: `Synthesize an OpenAPI 3.0 document for a single flattened catalog entry,
identified by its display name, e.g. "Payment Initiation API - Initiate".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.NewCatalog()

			entry, ok := findEntry(cat, args[0])
			if !ok {
				return fmt.Errorf("no catalog entry named %q; run 'specforge apis <domain>' to list entries", args[0])
			}

			doc := openapi.SynthesizeSingle(entry, nil)
			if report := openapi.Validate(doc); !report.Valid {
				return fmt.Errorf("synthesized document failed validation: %s", strings.Join(report.Errors, "; "))
			}

			out := os.Stdout
			if path, _ := cmd.Flags().GetString("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			if format, _ := cmd.Flags().GetString("format"); format == "yaml" {
				enc := yaml.NewEncoder(out)
				defer enc.Close()
				return enc.Encode(doc)
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringP("format", "f", "json", "Output format (json, yaml)")

	return cmd
}

// findEntry scans every domain's flattened entries for a display name.
func findEntry(cat *catalog.Catalog, name string) (catalog.FlattenedAPI, bool) {
	var domains []string
	for _, d := range cat.Domains() {
		domains = append(domains, d.Name)
	}
	for _, e := range cat.APIsForDomains(domains) {
		if e.Name == name {
			return e, true
		}
	}
	return catalog.FlattenedAPI{}, false
}
