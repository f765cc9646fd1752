package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AlexZinkM/elrond-wallet/wallet"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new account into an encrypted key file",
	Long:  `Generates a random Ed25519 account and writes it to an .ewt key file protected by a password.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyFile, _ := cmd.Flags().GetString("key")

		net, err := network()
		if err != nil {
			return err
		}

		password, err := readPassword("New wallet password: ")
		if err != nil {
			return err
		}
		defer clear(password)

		confirm, err := readPassword("Repeat password: ")
		if err != nil {
			return err
		}
		defer clear(confirm)

		if !bytes.Equal(password, confirm) {
			return errors.New("passwords do not match")
		}

		svc := wallet.NewService(keyFile, net, gateway(), nil, 0)
		address, err := svc.GenerateWallet(password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Network: %s\nAddress: %s\nKey file: %s\n", net, address, keyFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringP("key", "k", "wallet.ewt", "key file to create")
}
