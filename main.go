package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"mfergm/app/client"
	"mfergm/app/moderation"
	"mfergm/app/nft"
	"mfergm/app/repositories"
	"mfergm/app/routes"
	"mfergm/config"

	"github.com/sirupsen/logrus"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("mfergm version %s\n", cliVersion)
	case "serve":
		serve()
	case "client":
		runClient()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: mfergm <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the daily posting service.
  client <address> [post <mfer title> <content>]
                                 Connect a wallet against a running service,
                                 show the feed, optionally submit a post.
`
	fmt.Println(helpText)
}

// serve loads configuration, opens the post store, and runs the HTTP service.
func serve() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db, err := repositories.OpenDB(cfg.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open post store")
	}
	defer db.Close()

	moderator := moderation.NewClient(moderation.ClientConfig{
		BaseURL: cfg.OpenAIURL,
		APIKey:  cfg.OpenAIAPIKey,
		Timeout: cfg.ExternalTimeout,
	})

	router := routes.SetupRoutes(db, moderator)

	logrus.WithField("addr", cfg.ListenAddr).Info("starting daily posting service")
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		logrus.WithError(err).Fatal("server error")
	}
}

// runClient connects a wallet session against a running service, prints the
// session state, and optionally submits one post.
func runClient() {
	if len(os.Args) < 3 {
		fmt.Println("Error: wallet address is required for client command")
		os.Exit(1)
	}
	address := os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	checker := nft.NewChecker(nft.CheckerConfig{
		BaseURL:      cfg.AlchemyURL,
		APIKey:       cfg.AlchemyAPIKey,
		Contract:     cfg.MferContract,
		CoinContract: cfg.CoinContract,
		Timeout:      cfg.ExternalTimeout,
	})

	apiBase := "http://localhost" + cfg.ListenAddr
	if !strings.HasPrefix(cfg.ListenAddr, ":") {
		apiBase = "http://" + cfg.ListenAddr
	}

	app := client.New(client.Config{
		APIBase:     apiBase,
		Resolver:    checker,
		PetStateDir: cfg.PetStateDir,
		Timeout:     cfg.ExternalTimeout,
	})

	ctx := context.Background()
	if err := app.Connect(ctx, address); err != nil {
		logrus.WithError(err).Fatal("failed to connect")
	}

	fmt.Printf("Connected %s (balance %s, %d mfers, cat is %s)\n",
		address, app.Balance(), len(app.Tokens()), app.Mood())
	for _, token := range app.Tokens() {
		note := ""
		if app.PostedTodayTitles()[token.Title] {
			note = " (posted today)"
		}
		fmt.Printf("  - %s%s\n", token.Title, note)
	}

	if len(os.Args) >= 6 && os.Args[3] == "post" {
		post, err := app.Submit(ctx, os.Args[4], os.Args[5])
		if err != nil {
			logrus.WithError(err).Fatal("failed to post")
		}
		fmt.Printf("Posted as %s (approved=%v)\n", post.Author.Title, post.Approved)
	}

	fmt.Println("\nFeed:")
	for _, post := range app.Posts() {
		fmt.Printf("[%s] %s: %s\n", post.CreatedAt.Format("2006-01-02 15:04"), post.Author.Title, post.Content)
	}
}
