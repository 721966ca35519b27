package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/walletsweep/internal/batch"
	"github.com/gabapcia/walletsweep/internal/config"
	"github.com/gabapcia/walletsweep/internal/pkg/logger"
	"github.com/gabapcia/walletsweep/internal/report"
	"github.com/gabapcia/walletsweep/internal/walletops"

	"github.com/urfave/cli/v3"
)

var (
	// ErrDestinationRequired is returned when a collecting command has no --to address.
	ErrDestinationRequired = errors.New("destination address is required")

	// ErrAmountRequired is returned when distribute has no positive --amount.
	ErrAmountRequired = errors.New("a positive amount is required")
)

// workflow describes how a batch command plans jobs and builds its worker.
type workflow struct {
	title      string          // Report title
	pairs      bool            // One job per row instead of one per unique key
	reportOpts []report.Option // Report unit and precision
	check      func(cfg config.Config) error
	worker     func(cfg config.Config, node Node) (batch.Worker, error)
}

// action returns the cli action running w against a copy of the base configuration.
//
// Setup failures (configuration, input file, node connection) are returned
// before any job runs. Once the batch starts, the report is always printed,
// even when the run is interrupted.
func (a *app) action(w workflow) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		cfg := a.cfg
		applyFlags(c, &cfg)

		if err := cfg.Validate(); err != nil {
			return err
		}

		if w.check != nil {
			if err := w.check(cfg); err != nil {
				return err
			}
		}

		records, err := batch.ReadFile(cfg.InputFile)
		if err != nil {
			return err
		}

		node, err := a.dial(ctx, cfg)
		if err != nil {
			return err
		}

		worker, err := w.worker(cfg, node)
		if err != nil {
			return err
		}

		var jobs []batch.Job
		if w.pairs {
			jobs = batch.Pairs(records, cfg.StartRow)
		} else {
			jobs = batch.UniqueIdentifiers(records, cfg.StartRow)
		}

		logger.Info(ctx, "batch started",
			"command", c.Name,
			"file", cfg.InputFile,
			"rows", len(records),
			"jobs", len(jobs),
			"delay", cfg.Delay.String(),
		)

		rep := report.New(w.title, w.reportOpts...)
		results, runErr := batch.New(worker, batch.WithDelay(cfg.Delay)).Run(ctx, jobs)
		rep.Add(results...)

		if err := rep.WriteTable(c.Root().Writer); err != nil {
			return errors.Join(runErr, err)
		}

		if cfg.ReportFile != "" {
			if err := rep.Export(cfg.ReportFile); err != nil {
				return errors.Join(runErr, fmt.Errorf("export report: %w", err))
			}

			logger.Info(ctx, "report written", "path", cfg.ReportFile)
		}

		return runErr
	}
}

func requireDestination(cfg config.Config) error {
	if cfg.Destination == "" {
		return ErrDestinationRequired
	}

	return nil
}

// balancesCommand reports the native balance of every unique key in the file.
//
// Usage example:
//
//	walletsweep balances --file wallets.csv
func (a *app) balancesCommand() *cli.Command {
	return &cli.Command{
		Name:        "balances",
		Description: "Print the native balance of every unique key found in either column of the file.",
		Usage:       "Checks the balance of each wallet. Keys appearing several times are checked once.",
		Flags:       runFlags(),
		Action: a.action(workflow{
			title: "Wallet balances",
			worker: func(_ config.Config, node Node) (batch.Worker, error) {
				return walletops.NewBalanceChecker(node), nil
			},
		}),
	}
}

// distributeCommand sends a fixed amount from each sender to the receiver of the same row.
//
// Usage example:
//
//	walletsweep distribute --file wallets.csv --amount 0.0031
func (a *app) distributeCommand() *cli.Command {
	return &cli.Command{
		Name:        "distribute",
		Description: "Send a fixed amount from the sender key to the receiver key of every row.",
		Usage:       "Transfers --amount from column one to column two, row by row.",
		Flags:       append(runFlags(), amountFlag("Amount to send per row, in whole coins (e.g. 0.0031)")),
		Action: a.action(workflow{
			title: "Distribution",
			pairs: true,
			check: func(cfg config.Config) error {
				if amount := cfg.FixedAmount(); !amount.Valid || !amount.Decimal.IsPositive() {
					return ErrAmountRequired
				}
				return nil
			},
			worker: func(cfg config.Config, node Node) (batch.Worker, error) {
				return walletops.NewTransferer(node, walletops.WithAmount(cfg.FixedAmount().Decimal)), nil
			},
		}),
	}
}

// collectCommand moves the native balance of every unique key to one destination.
//
// Usage example:
//
//	walletsweep collect --file wallets.csv --to 0xABC123...
func (a *app) collectCommand() *cli.Command {
	return &cli.Command{
		Name:        "collect",
		Description: "Move the native coins of every unique key to the destination address.",
		Usage:       "Sweeps each wallet (balance minus gas) into --to, or sends --amount when given.",
		Flags: append(runFlags(),
			destinationFlag(),
			amountFlag("Send this fixed amount instead of the whole balance"),
		),
		Action: a.action(workflow{
			title: "Collection",
			check: requireDestination,
			worker: func(cfg config.Config, node Node) (batch.Worker, error) {
				opts := []walletops.TransferOption{walletops.WithDestination(cfg.DestinationAddress())}
				if amount := cfg.FixedAmount(); amount.Valid {
					opts = append(opts, walletops.WithAmount(amount.Decimal))
				}

				return walletops.NewTransferer(node, opts...), nil
			},
		}),
	}
}

// collectNFTsCommand moves every token of the NFT collection held by each key to one destination.
//
// Usage example:
//
//	walletsweep collect-nfts --file wallets.csv --to 0xABC123... --contract 0xDEF456...
func (a *app) collectNFTsCommand() *cli.Command {
	return &cli.Command{
		Name:        "collect-nfts",
		Description: "Approve and transfer every token of an ERC-721 collection held by each key to the destination address.",
		Usage:       "Collects the NFTs of each wallet into --to.",
		Flags: append(runFlags(),
			destinationFlag(),
			&cli.StringFlag{
				Name:  flagContract,
				Usage: "ERC-721 contract address",
			},
			&cli.StringFlag{
				Name:  flagABIFile,
				Usage: "JSON ABI of the contract, the standard ERC-721 ABI is used when empty",
			},
			&cli.DurationFlag{
				Name:  flagStepDelay,
				Usage: "Pause between the approve and transfer of a token",
			},
		),
		Action: a.action(workflow{
			title:      "NFT collection",
			check:      requireDestination,
			reportOpts: []report.Option{report.WithUnit("tokens"), report.WithPrecision(0)},
			worker: func(cfg config.Config, node Node) (batch.Worker, error) {
				var abiJSON []byte
				if cfg.NFTABIFile != "" {
					data, err := os.ReadFile(cfg.NFTABIFile)
					if err != nil {
						return nil, fmt.Errorf("read abi file: %w", err)
					}
					abiJSON = data
				}

				collection, err := node.Collection(cfg.NFTContractAddress(), abiJSON)
				if err != nil {
					return nil, err
				}

				return walletops.NewCollector(
					node,
					collection,
					cfg.DestinationAddress(),
					walletops.WithStepDelay(cfg.StepDelay),
				), nil
			},
		}),
	}
}
