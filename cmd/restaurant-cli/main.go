// Restaurant CLI — инструмент командной строки для управления
// меню через HTTP API и просмотра событий меню.
//
// Использование:
//
//	restaurant-cli [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	menu    Управление позициями меню
//	events  Поток событий изменения меню
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/restaurant/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "restaurant-cli",
		Short:         "Restaurant CLI — menu management tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:3000", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewMenuCmd(clientFn, outputFn),
		cli.NewEventsCmd(outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		outputFn().Error(err)
		os.Exit(1)
	}
}
