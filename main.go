package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"vemabot/api"
	"vemabot/config"
	"vemabot/scraper"
	"vemabot/tui"
	"vemabot/types"
	"vemabot/webhook"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	serve := flag.Bool("serve", false, "run the headless HTTP trigger instead of the TUI")
	port := flag.String("port", "8080", "HTTP port for -serve mode")
	hook := flag.String("hook", "", "webhook URL (defaults to "+config.WebhookEnvVar+")")
	flag.Parse()

	hookURL := *hook
	if hookURL == "" {
		hookURL = config.DefaultWebhookURL()
	}

	if *serve {
		runServer(*port, hookURL)
		return
	}
	runTUI(hookURL)
}

// runServer starts the headless trigger endpoint.
func runServer(port, hookURL string) {
	scrape := func(ctx context.Context) ([]types.Article, error) {
		s, err := scraper.New(scraper.Options{
			Progress: func(ev scraper.ProgressEvent) {
				log.Printf("Page %d: %d articles (%d total)", ev.Page, ev.Found, ev.Total)
			},
		})
		if err != nil {
			return nil, err
		}
		return s.ScrapeAll(ctx)
	}

	var deliver api.Deliverer
	if hookURL != "" {
		deliver = webhook.NewSender(hookURL, config.ArticleTimeout)
	} else {
		log.Printf("No webhook configured; /send will return an error")
	}

	r := api.NewRouter(scrape, deliver)
	log.Printf("Listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// runTUI starts the interactive control surface.
func runTUI(hookURL string) {
	m := tui.NewModel(hookURL)
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
