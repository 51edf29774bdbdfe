package cmd

import (
	"fmt"
	"github.com/mdaniel/dgs-codegen/cmd/query"
	"github.com/mdaniel/dgs-codegen/cmd/serialize"
	"github.com/mdaniel/dgs-codegen/cmd/util"
	"github.com/mdaniel/dgs-codegen/lib/common"
	"github.com/mdaniel/dgs-codegen/lib/literal"
	"github.com/spf13/cobra"
	"os"
)

const (
	Version = "0.4.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dgs-literal",
		Short: "GraphQL input literal serializer",
		Long: fmt.Sprintf(`dgs-literal (v%s)

Serialize YAML or JSON values into GraphQL input-value literals and build
operation documents with literal arguments, the way generated clients do.
All flags can be set with environment variables in the format DGS_<flag>
(e.g. DGS_MAX_DEPTH=64).`, Version),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dgs-literal",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dgs-literal v%s\n", Version)
		},
	}
	escapeCmd = &cobra.Command{
		Use:   "escape [text]",
		Short: "Print text as quoted and escaped GraphQL string literal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := util.GetConfig()
			if err != nil {
				return err
			}
			return util.WriteResult(cmd.OutOrStdout(), conf, "literal", literal.Escape(args[0]))
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(serialize.SerializeCmd)
	RootCmd.AddCommand(query.QueryCmd)
	RootCmd.AddCommand(escapeCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupSerializerFlags(RootCmd)
}

// setup binds the flags of the executed command and configures logging
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}
	conf, err := util.GetConfig()
	if err != nil {
		return err
	}
	if err := common.InitLoggers(conf.LogLevel); err != nil {
		return err
	}
	util.Logger.Debugf("configuration:%s", conf.String())
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
