package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"postkit/internal/settings"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage settings",
		Long:  "Read and edit the persisted settings record. Every set is saved immediately.",
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		Run:   runConfigGet,
	}

	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting and save",
		Args:  cobra.ExactArgs(2),
		Run:   runConfigSet,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the whole settings record",
		Run:   runConfigList,
	}

	configCmd.AddCommand(getCmd, setCmd, listCmd)
	RootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) {
	cfg, err := currentSettings(cmd.Context())
	if err != nil {
		exitErr("load settings", err)
	}

	v, err := cfg.Get(args[0])
	if err != nil {
		exitErr("config get", err)
	}
	fmt.Println(v)
}

func runConfigSet(cmd *cobra.Command, args []string) {
	s, err := openSettings()
	if err != nil {
		exitErr("open settings", err)
	}
	defer s.Close()

	cfg, err := s.Load(cmd.Context())
	if err != nil {
		exitErr("load settings", err)
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		exitErr("config set", err)
	}
	if err := s.Save(cmd.Context(), cfg); err != nil {
		exitErr("save settings", err)
	}

	printSettings(cfg)
}

func runConfigList(cmd *cobra.Command, args []string) {
	cfg, err := currentSettings(cmd.Context())
	if err != nil {
		exitErr("load settings", err)
	}
	printSettings(cfg)
}

func printSettings(cfg settings.Settings) {
	b, _ := json.MarshalIndent(cfg, "", "  ")
	fmt.Println(string(b))
}
