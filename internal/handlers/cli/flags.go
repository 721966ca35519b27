package cli

import (
	"github.com/gabapcia/walletsweep/internal/config"

	"github.com/urfave/cli/v3"
)

// Flag names shared by several commands.
const (
	flagFile        = "file"
	flagRPCURL      = "rpc-url"
	flagChainID     = "chain-id"
	flagStartRow    = "start-row"
	flagDelay       = "delay"
	flagReportFile  = "report-file"
	flagDestination = "to"
	flagAmount      = "amount"
	flagContract    = "contract"
	flagABIFile     = "abi-file"
	flagStepDelay   = "step-delay"
)

// runFlags returns the flags every command accepts. Defaults come from the
// environment configuration, so none are declared here.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagFile,
			Aliases: []string{"f"},
			Usage:   "CSV file with sender and receiver private keys",
		},
		&cli.StringFlag{
			Name:  flagRPCURL,
			Usage: "JSON-RPC endpoint of the node",
		},
		&cli.IntFlag{
			Name:  flagChainID,
			Usage: "Expected chain id, 0 accepts whatever the node reports",
		},
		&cli.IntFlag{
			Name:  flagStartRow,
			Usage: "First data row to process (1-based, header excluded)",
		},
		&cli.DurationFlag{
			Name:  flagDelay,
			Usage: "Pause between two wallets",
		},
		&cli.StringFlag{
			Name:  flagReportFile,
			Usage: "Write the final report to this file (.yaml, .yml or .pdf)",
		},
	}
}

func destinationFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  flagDestination,
		Usage: "Address that receives the funds",
	}
}

func amountFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:  flagAmount,
		Usage: usage,
	}
}

// applyFlags copies every flag the user set onto cfg. Unset flags keep the
// environment value.
func applyFlags(c *cli.Command, cfg *config.Config) {
	if c.IsSet(flagFile) {
		cfg.InputFile = c.String(flagFile)
	}
	if c.IsSet(flagRPCURL) {
		cfg.RPCURL = c.String(flagRPCURL)
	}
	if c.IsSet(flagChainID) {
		cfg.ChainID = int64(c.Int(flagChainID))
	}
	if c.IsSet(flagStartRow) {
		cfg.StartRow = int(c.Int(flagStartRow))
	}
	if c.IsSet(flagDelay) {
		cfg.Delay = c.Duration(flagDelay)
	}
	if c.IsSet(flagReportFile) {
		cfg.ReportFile = c.String(flagReportFile)
	}
	if c.IsSet(flagDestination) {
		cfg.Destination = c.String(flagDestination)
	}
	if c.IsSet(flagAmount) {
		cfg.Amount = c.String(flagAmount)
	}
	if c.IsSet(flagContract) {
		cfg.NFTContract = c.String(flagContract)
	}
	if c.IsSet(flagABIFile) {
		cfg.NFTABIFile = c.String(flagABIFile)
	}
	if c.IsSet(flagStepDelay) {
		cfg.StepDelay = c.Duration(flagStepDelay)
	}
}
