package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ringgraph/internal/api"
)

// envAddr names the environment variable that sets the listen address.
const envAddr = "RINGGRAPH_ADDR"

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		envFile string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render pipeline over HTTP",
		Long: `Serve the render pipeline over HTTP.

Routes:
  GET  /healthz
  GET  /v1/formats
  POST /v1/layout
  POST /v1/render?format=svg|json|pdf|png|dot|graphviz

Request bodies are {"graph": {...}, "options": {...}}. The listen address is
taken from --addr, then ` + envAddr + ` (which may be set in a .env file), then ` + api.DefaultAddr + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				if v := os.Getenv(envAddr); v != "" {
					addr = v
				}
			}

			srv := api.NewServer(api.Config{Logger: c.Logger, MaxBodyBytes: maxBody})
			printInfo("Serving on %s", StyleLink.Render(addr))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading "+envAddr)
	cmd.Flags().Int64Var(&maxBody, "max-body", api.DefaultMaxBodyBytes, "request body limit in bytes")

	return cmd
}
