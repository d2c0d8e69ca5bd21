package command

import (
	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, NewGenerateHandler)

// Command groups the handlers behind the CLI subcommands.
type Command struct {
	generateHandler *GenerateHandler
}

// NewCommand .
func NewCommand(generateHandler *GenerateHandler) *Command {
	return &Command{generateHandler: generateHandler}
}

// Register adds the subcommands to rootCmd. newCmd is only called when a
// subcommand runs, so configuration is loaded by then.
func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	var (
		file         string
		numQuestions int
	)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a quiz from a text file and print it as JSON",
		Example: "  quizly generate --file notes.txt -n 3\n" +
			"  cat notes.txt | quizly generate",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			return command.generateHandler.Generate(cmd.Context(), file, numQuestions, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	generateCmd.Flags().StringVarP(&file, "file", "f", "-", "file to read content from, - for stdin")
	generateCmd.Flags().IntVarP(&numQuestions, "num-questions", "n", 5, "number of questions to request")

	rootCmd.AddCommand(generateCmd)
}
