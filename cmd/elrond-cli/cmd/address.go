package cmd

import (
	"fmt"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/crypto"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the address of a key file or of a hex secret key",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyFile, _ := cmd.Flags().GetString("key")
		secretHex, _ := cmd.Flags().GetString("secret")

		if secretHex != "" {
			account, err := elrond.AccountFromString(secretHex)
			if err != nil {
				return err
			}
			defer account.Wipe()
			fmt.Fprintln(cmd.OutOrStdout(), account.Address())
			return nil
		}

		header, err := crypto.ReadKeyFile(keyFile)
		if err != nil {
			return err
		}
		address, err := elrond.NewAddress(header.Address)
		if err != nil {
			return fmt.Errorf("key file holds a bad address: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), address)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addressCmd)
	addressCmd.Flags().StringP("key", "k", "wallet.ewt", "key file")
	addressCmd.Flags().String("secret", "", "hex encoded 32-byte secret key instead of a key file")
}
