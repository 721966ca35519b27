// Package config loads the run settings from WALLETSWEEP_* environment
// variables. Command-line flags override individual fields afterwards, and
// Validate must be called once the final values are in place.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/walletsweep/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// prefix of every environment variable read by Load.
const prefix = "walletsweep"

// Config holds every setting of a run.
type Config struct {
	// Node
	RPCURL      string        `envconfig:"RPC_URL" default:"https://api.mainnet.abs.xyz" validate:"required,url"`
	ChainID     int64         `envconfig:"CHAIN_ID" default:"2741" validate:"gte=0"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`
	HTTPRetries int           `envconfig:"HTTP_RETRIES" default:"2" validate:"gte=0"`

	// Input
	InputFile string `envconfig:"INPUT_FILE" default:"wallets.csv" validate:"required"`
	StartRow  int    `envconfig:"START_ROW" default:"1" validate:"gte=1"`

	// Transfers
	Destination    string        `envconfig:"DESTINATION" validate:"omitempty,eth_addr"`
	Amount         string        `envconfig:"AMOUNT" validate:"decimal_amount"`
	Delay          time.Duration `envconfig:"DELAY" default:"5s" validate:"gte=0"`
	StepDelay      time.Duration `envconfig:"STEP_DELAY" default:"100ms" validate:"gte=0"`
	ReceiptTimeout time.Duration `envconfig:"RECEIPT_TIMEOUT" default:"3m" validate:"gt=0"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"2s" validate:"gt=0"`

	// NFT collection
	NFTContract string `envconfig:"NFT_CONTRACT" default:"0xa6c46c07f7f1966d772e29049175ebba26262513" validate:"omitempty,eth_addr"`
	NFTABIFile  string `envconfig:"NFT_ABI_FILE"`

	// Output
	ReportFile string `envconfig:"REPORT_FILE"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=console json"`
	Telemetry  bool   `envconfig:"TELEMETRY" default:"false"`
}

// Load reads the configuration from the environment, applying defaults.
// The result is not validated.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Validate checks every field against its validation tags.
func (c Config) Validate() error {
	return validator.Validate(c)
}

// DestinationAddress returns the parsed destination, the zero address when unset.
func (c Config) DestinationAddress() common.Address {
	if c.Destination == "" {
		return common.Address{}
	}

	return common.HexToAddress(c.Destination)
}

// NFTContractAddress returns the parsed collection address.
func (c Config) NFTContractAddress() common.Address {
	return common.HexToAddress(c.NFTContract)
}

// FixedAmount returns the configured amount, invalid when unset (sweep mode).
func (c Config) FixedAmount() decimal.NullDecimal {
	if c.Amount == "" {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(c.Amount)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(d)
}
