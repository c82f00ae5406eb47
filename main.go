// main is the command-line entrypoint for auditlens.
package main

import (
	"os"

	"github.com/auditlens/auditlens/cmd"
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/internal/iostore"
)

func main() {
	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	iostore.CloseStores()

	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
