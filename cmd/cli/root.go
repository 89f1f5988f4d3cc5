package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avolodin/notekeep/internal/client"
)

var addr string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notekeep",
	Short: "Note-taking client for the notekeep REST API",
	Long: `notekeep keeps short heading+content notes on a remote server.
Register once, login to store a token, then create, list, edit,
favorite, and delete notes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "http://localhost:3000", "server base URL")
}

// cmdContext returns the per-invocation request context.
func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// api builds a client carrying the stored token when one exists.
func api() *client.Client {
	token := ""
	if s, err := client.LoadSession(); err == nil {
		token = s.Token
	}
	return client.New(addr, token)
}
