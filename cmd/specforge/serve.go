package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/fincatalog/specforge/internal/catalog"
	"github.com/fincatalog/specforge/internal/config"
	"github.com/fincatalog/specforge/internal/service"
	"github.com/fincatalog/specforge/internal/storage"
	"github.com/fincatalog/specforge/internal/suggest"
	"github.com/fincatalog/specforge/internal/web"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the specforge web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Server.Addr = addr
			}

			var refiner service.Refiner
			if cfg.Suggest.Enabled && cfg.Suggest.APIKey != "" {
				client := suggest.NewAnthropicClient(cfg.Suggest.APIKey, cfg.Suggest.Model)
				refiner = suggest.NewRefiner(client, cfg.Suggest.Timeout)
			} else {
				log.Println("AI refinement disabled; API listings use the catalog only")
			}

			store, err := storage.NewCustomizationStore(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			svc := service.New(catalog.NewCatalog(), refiner, store)
			server := web.NewServer(svc, store)

			log.Printf("specforge %s listening on %s", Version, cfg.Server.Addr)
			return server.Run(cfg.Server.Addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (overrides config)")

	return cmd
}
