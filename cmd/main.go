package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"menu-composer/internal/compose"
	"menu-composer/internal/config"
	"menu-composer/internal/logger"
	"menu-composer/internal/menu"
	"menu-composer/internal/order"
)

func main() {
	// Parse command line flags
	var (
		configPath = flag.String("config", "config.yaml", "Path to the configuration file")
		orderPath  = flag.String("order", "", "Path to the order file to compose (required)")
		pretty     = flag.Bool("pretty", false, "Indent the receipt JSON")
	)
	flag.Parse()

	if *orderPath == "" {
		fmt.Fprintf(os.Stderr, "Error: --order flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log := logger.New(cfg.Service.Name, cfg.Service.LogLevel)

	// The order file's request id tags every log line of this run.
	src := compose.NewFileSource(*orderPath)
	requestID := src.RequestID()

	log.Debug("config_loaded", requestID, fmt.Sprintf("Loaded configuration from %s", *configPath))

	// Load the menu catalog
	catalog, err := menu.LoadCatalog(cfg.Menu.Path)
	if err != nil {
		log.Error("menu_load_failed", requestID, "Failed to load menu", err)
		os.Exit(1)
	}
	log.Info("menu_loaded", requestID, fmt.Sprintf("Loaded %d menu items from %s", catalog.Len(), cfg.Menu.Path))

	// Compose the order
	result, err := compose.Compose(src, catalog, order.NewBuilder())
	if err != nil {
		log.Error("compose_failed", requestID, "Failed to compose order", err)
		os.Exit(1)
	}
	log.Info("order_composed", requestID,
		fmt.Sprintf("Composed order with %d line items, total %.2f", result.LineCount(), result.TotalPrice()))

	// Print the receipt
	encoder := json.NewEncoder(os.Stdout)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result.Receipt()); err != nil {
		log.Error("receipt_encode_failed", requestID, "Failed to encode receipt", err)
		os.Exit(1)
	}
}
