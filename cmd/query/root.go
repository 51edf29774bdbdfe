package query

import (
	"github.com/mdaniel/dgs-codegen/cmd/util"
	"github.com/spf13/cobra"
)

// QueryCmd prints the operation document described by a request file
var QueryCmd = &cobra.Command{
	Use:   "query [file]",
	Short: "Print a GraphQL operation document built from a request description",
	Long: `Read a request description (type, name, operation, input, fields) as YAML or JSON
from the given file (or stdin) and print the GraphQL operation document. The
input values are written as literals with the same rules as the serialize command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := util.GetConfig()
	if err != nil {
		return err
	}

	s, set, err := util.NewSerializer(conf)
	if err != nil {
		return err
	}

	data, err := util.ReadInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	req, err := decodeRequest(data)
	if err != nil {
		return err
	}

	doc, err := req.Serialize(s)
	if err != nil {
		return err
	}

	if err := util.WriteResult(cmd.OutOrStdout(), conf, "query", doc); err != nil {
		return err
	}
	util.WriteMetrics(cmd.ErrOrStderr(), set)
	return nil
}
