// Package commands implements the terminal front end: list and detail
// views over movies and serials, the register/login flow, and rating
// submission, all through the typed API client.
package commands

import (
	"fmt"
	"os"

	"filmadviser/pkg/client"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	serverURL string
	token     string
)

var rootCmd = &cobra.Command{
	Use:   "filmadviser",
	Short: "FilmAdviser - movie and serial catalog client",
	Long: `FilmAdviser is a terminal client for the FilmAdviser catalog API.

It covers the same surface as the web front end: browsing the movie and
serial catalogs, registering and logging in, and rating titles.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "API server base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated commands (from 'filmadviser login')")
}

func newClient() *client.Client {
	c := client.New(serverURL)
	if token != "" {
		c.SetToken(token)
	}
	return c
}
