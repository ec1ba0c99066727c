// templerun is a terminal endless runner: race down a three-lane temple
// corridor, dodge obstacles, grab coins.
//
// Usage:
//
//	templerun play        - Play in the current terminal
//	templerun serve       - Start SSH server for remote play
//	templerun scores      - Browse high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.templerun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "templerun",
	Short: "Temple Run - endless running in your terminal",
	Long: `Temple Run is a terminal endless runner: sprint down a three-lane
corridor, strafe around rocks, logs and statues, jump what you can't dodge,
and collect coins until something stops you.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  templerun play
  templerun play --seed 42
  templerun serve --ssh :2222
  templerun scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.templerun/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
