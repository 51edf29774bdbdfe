package serialize

import (
	"github.com/mdaniel/dgs-codegen/cmd/util"
	"github.com/spf13/cobra"
)

// SerializeCmd prints the literal of a YAML or JSON document
var SerializeCmd = &cobra.Command{
	Use:   "serialize [file]",
	Short: "Print the GraphQL input literal of a YAML or JSON document",
	Long: `Read a YAML or JSON document from the given file (or stdin) and print it as GraphQL
input-value literal. Mappings keep their order. Use the tag !enum for enum values
(genre: !enum DRAMA) and !currency for currency codes.`,
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

	value, err := util.DecodeValue(data)
	if err != nil {
		return err
	}

	text, err := s.Serialize(value)
	if err != nil {
		return err
	}
	util.Logger.Infof("serialized %d bytes of input into %d bytes", len(data), len(text))

	if err := util.WriteResult(cmd.OutOrStdout(), conf, "literal", text); err != nil {
		return err
	}
	util.WriteMetrics(cmd.ErrOrStderr(), set)
	return nil
}
