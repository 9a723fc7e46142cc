package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/drive-console/pkg/audit"
	"github.com/doodlesbykumbi/drive-console/pkg/config"
	"github.com/doodlesbykumbi/drive-console/pkg/db"
	"github.com/doodlesbykumbi/drive-console/pkg/server"
	"github.com/doodlesbykumbi/drive-console/pkg/server/endpoints"
	"github.com/doodlesbykumbi/drive-console/pkg/server/middleware"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the drive console API server",
	Long: `Run the drive console API server.

To run the server requires the environment variables DRIVE_TOKEN_SECRET and
DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		secret, ok := os.LookupEnv("DRIVE_TOKEN_SECRET")
		if !ok || secret == "" {
			fmt.Fprintln(os.Stderr, "DRIVE_TOKEN_SECRET environment variable is required")
			os.Exit(1)
		}

		if db.URL() == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		audit.SetEnabled(cfg.AuditEnabled)

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		jwt := middleware.NewJWTAuthenticator([]byte(secret), cfg.TokenIssuer)
		s := server.NewServer(database, cfg, jwt, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s...\n", s.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
