package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/AlexZinkM/elrond-wallet/elrond"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a signed transaction to the gateway",
	Long:  `Reads a signed transaction JSON (from the sign command), verifies its signature and submits it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, _ := cmd.Flags().GetString("input")

		var (
			data []byte
			err  error
		)
		if inputFile == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(inputFile)
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		signed, err := elrond.ParseSignedTransaction(data)
		if err != nil {
			return err
		}

		net, err := network()
		if err != nil {
			return err
		}
		if signed.ChainID() != net.ChainID() {
			return fmt.Errorf("transaction is for chain %q, not %s", signed.ChainID(), net)
		}

		hash, err := gateway().PostSignedTransaction(cmd.Context(), signed)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringP("input", "i", "signed_tx.json", "signed transaction file, - for stdin")
}
