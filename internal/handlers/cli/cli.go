package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/walletsweep/internal/config"

	"github.com/urfave/cli/v3"
)

// app carries the dependencies shared by every command.
type app struct {
	cfg  config.Config // Base configuration loaded from the environment
	dial Dialer        // Opens the node once flags are applied
}

// Run initializes and executes the walletsweep CLI application.
//
// It registers all available commands:
//
//   - `balances`: Prints the balance of every wallet.
//   - `distribute`: Sends a fixed amount from each sender to its receiver.
//   - `collect`: Sweeps native coins into one destination.
//   - `collect-nfts`: Moves ERC-721 tokens into one destination.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - cfg: Configuration loaded from the environment, overridden by command flags.
//   - dial: Opens the chain client for a command.
//
// SIGINT and SIGTERM cancel the running batch. The partial report is still printed.
func Run(ctx context.Context, cfg config.Config, dial Dialer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newApp(cfg, dial).Run(ctx, os.Args)
}

func newApp(cfg config.Config, dial Dialer) *cli.Command {
	a := &app{cfg: cfg, dial: dial}

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletsweep",
		Description:           "Batch balance checks and transfers for the wallets listed in a CSV file.",
		Usage:                 "walletsweep [command] [flags]",
		Commands: []*cli.Command{
			a.balancesCommand(),
			a.distributeCommand(),
			a.collectCommand(),
			a.collectNFTsCommand(),
		},
	}
}
