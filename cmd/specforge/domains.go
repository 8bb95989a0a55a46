package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fincatalog/specforge/internal/catalog"
)

func domainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains [search-term]",
		Short: "List or search service domains in the seed catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.NewCatalog()

			var domains []*catalog.ServiceDomain
			if len(args) == 1 {
				domains = cat.SearchDomains(args[0])
			} else {
				domains = cat.Domains()
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(domains)
			}

			for _, d := range domains {
				fmt.Printf("%s\n  %s\n  areas: %s\n  common APIs: %s\n",
					d.Name, d.Description,
					strings.Join(d.BusinessAreas, ", "),
					strings.Join(d.CommonAPIs, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}

func apisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apis [domain...]",
		Short: "List the flattened API entries for one or more domains",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.NewCatalog()
			entries := cat.APIsForDomains(args)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, e := range entries {
				fmt.Printf("%-55s %-6s %s\n", e.Name, e.Method, e.Endpoint)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}
