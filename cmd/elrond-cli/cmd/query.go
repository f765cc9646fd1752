package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nonceCmd = &cobra.Command{
	Use:   "nonce <address>",
	Short: "Print the next nonce of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nonce, err := gateway().GetAddressNonce(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), nonce)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Print the eGLD balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		balance, err := gateway().GetAddressBalance(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		denominated, _ := cmd.Flags().GetBool("denominated")
		if denominated {
			fmt.Fprintln(cmd.OutOrStdout(), balance.Denominated())
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s eGLD\n", balance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nonceCmd, balanceCmd)
	balanceCmd.Flags().Bool("denominated", false, "print smallest units instead of eGLD")
}
