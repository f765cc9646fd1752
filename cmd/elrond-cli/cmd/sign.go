package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/wallet"

	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Build and sign an eGLD transfer offline",
	Long: `Builds a transfer from the key file account, signs it and writes the
signed transaction JSON. Without --nonce the nonce is fetched from the gateway.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyFile, _ := cmd.Flags().GetString("key")
		to, _ := cmd.Flags().GetString("to")
		amountStr, _ := cmd.Flags().GetString("amount")
		nonce, _ := cmd.Flags().GetUint64("nonce")
		data, _ := cmd.Flags().GetString("data")
		gasPrice, _ := cmd.Flags().GetUint64("gas-price")
		gasLimit, _ := cmd.Flags().GetUint64("gas-limit")
		outputFile, _ := cmd.Flags().GetString("output")

		net, err := network()
		if err != nil {
			return err
		}

		amount, err := elrond.ParseCurrencyAmount(amountStr)
		if err != nil {
			return err
		}

		password, err := readPassword("Wallet password: ")
		if err != nil {
			return err
		}
		defer clear(password)

		account, err := wallet.NewService(keyFile, net, gateway(), nil, 0).LoadAccount(password)
		if err != nil {
			return err
		}
		defer account.Wipe()

		if !cmd.Flags().Changed("nonce") {
			nonce, err = gateway().GetAddressNonce(cmd.Context(), account.Address().String())
			if err != nil {
				return err
			}
		}

		var opts []elrond.TxOption
		if data != "" {
			opts = append(opts, elrond.WithData([]byte(data)))
		}
		if gasPrice != 0 {
			opts = append(opts, elrond.WithGasPrice(gasPrice))
		}
		if gasLimit != 0 {
			opts = append(opts, elrond.WithGasLimit(gasLimit))
		}

		tx, err := elrond.NewUnsignedTransaction(nonce, amount.Denominated(), to, account.Address().String(), net, opts...)
		if err != nil {
			return err
		}

		out := cmd.ErrOrStderr()
		fmt.Fprintln(out, "================ transaction ================")
		fmt.Fprintf(out, "Network:   %s (chain %s)\n", net, tx.ChainID())
		fmt.Fprintf(out, "From:      %s\n", tx.Sender())
		fmt.Fprintf(out, "To:        %s\n", tx.Receiver())
		fmt.Fprintf(out, "Amount:    %s eGLD\n", amount)
		fmt.Fprintf(out, "Nonce:     %d\n", tx.Nonce())
		fmt.Fprintf(out, "Gas:       %d x %d\n", tx.GasLimit(), tx.GasPrice())
		fmt.Fprintln(out, "=============================================")

		signed, err := tx.Sign(account)
		if err != nil {
			return err
		}

		signedJSON, err := json.MarshalIndent(signed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal signed transaction: %w", err)
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(signedJSON))
			return nil
		}
		if err := os.WriteFile(outputFile, signedJSON, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(out, "Signed transaction written to %s\n", outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().StringP("key", "k", "wallet.ewt", "key file of the sender")
	signCmd.Flags().StringP("to", "t", "", "receiver address (erd1...)")
	signCmd.Flags().StringP("amount", "a", "", "amount in eGLD, e.g. 0.25")
	signCmd.Flags().Uint64("nonce", 0, "sender nonce (fetched from the gateway when omitted)")
	signCmd.Flags().StringP("data", "d", "", "optional data field")
	signCmd.Flags().Uint64("gas-price", 0, "gas price (network minimum when omitted)")
	signCmd.Flags().Uint64("gas-limit", 0, "gas limit (network minimum for the data when omitted)")
	signCmd.Flags().StringP("output", "o", "", "write the signed transaction to this file instead of stdout")
	_ = signCmd.MarkFlagRequired("to")
	_ = signCmd.MarkFlagRequired("amount")
}
