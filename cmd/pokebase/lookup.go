package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Leo-Expose/PokeBase/internal/orchestrators/pokedex"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <identifier>",
	Short: "Compose one pokedex entry and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	flags := lookupCmd.Flags()
	flags.StringVar(&dbPath, "db", envOr("POKEBASE_DB", "pokedex.sqlite"),
		"database path (sqlite) or DSN (postgres)")
	flags.StringVar(&dbDriver, "db-driver", envOr("POKEBASE_DB_DRIVER", "sqlite"),
		"database driver: sqlite or postgres")
}

func runLookup(cmd *cobra.Command, args []string) error {
	repo, err := buildRepository()
	if err != nil {
		return err
	}
	service, err := buildService(repo)
	if err != nil {
		return err
	}

	out, err := service.GetEntry(cmd.Context(), &pokedex.GetEntryInput{Identifier: args[0]})
	if err != nil {
		return err
	}
	if out.Entry == nil {
		return fmt.Errorf("no pokemon matches %q", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Entry)
}
