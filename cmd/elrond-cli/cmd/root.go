package cmd

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/client"
	"github.com/AlexZinkM/elrond-wallet/internal/config"
	"github.com/AlexZinkM/elrond-wallet/internal/logger"

	"github.com/spf13/cobra"
)

var (
	networkName string
	gatewayURL  string
	logEnv      string
)

// readPassword prompts on the terminal; tests replace it
var readPassword = config.ReadPassword

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "elrond-cli",
	Short: "Elrond (MultiversX) wallet command line tool",
	Long: `Creates encrypted key files, signs eGLD transfers offline and
submits signed transactions to a gateway.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logEnv)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&networkName, "network", "n", "mainnet", "network: mainnet, testnet or devnet")
	rootCmd.PersistentFlags().StringVarP(&gatewayURL, "gateway", "g", client.DefaultGatewayURL, "gateway REST URL")
	rootCmd.PersistentFlags().StringVar(&logEnv, "log-env", "development", "log format: development or production")
}

func network() (elrond.Network, error) {
	return elrond.ParseNetwork(networkName)
}

func gateway() *client.ElrondClient {
	return client.NewElrondClient(gatewayURL)
}
