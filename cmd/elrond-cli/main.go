package main

import "github.com/AlexZinkM/elrond-wallet/cmd/elrond-cli/cmd"

func main() {
	cmd.Execute()
}
