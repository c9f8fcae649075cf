// Package cmd 定义命令行入口
package cmd

import (
	"github.com/decker502/shroom/pkg/app"
	"github.com/spf13/cobra"
)

// windowTitle 桌面窗口标题
const windowTitle = "Shroom Clicker"

var rootCmd = &cobra.Command{
	Use:   "shroom",
	Short: "Grow a mushroom one click at a time",
	Long:  "Shroom is a single-screen clicker: tap the mushroom until it is fully grown, then start a new round.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(cfg, windowTitle)
	},
	SilenceUsage: true,
}

// Execute 运行根命令
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a settings.yaml overriding the embedded defaults")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.Flags().Bool("touch", false, "Treat the mouse as a single-finger touch (desktop touch emulation)")
	rootCmd.Flags().Bool("debug", false, "Show the debug overlay and enable F2 snapshot copy")
	rootCmd.Flags().Int64("seed", 0, "Random seed for notices and effects (0 = time based)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// appConfig 从命令行参数构造应用配置
func appConfig(cmd *cobra.Command) (app.Config, error) {
	var cfg app.Config
	var err error

	if cfg.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return cfg, err
	}
	if cfg.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return cfg, err
	}
	if cfg.Touch, err = cmd.Flags().GetBool("touch"); err != nil {
		return cfg, err
	}
	if cfg.Debug, err = cmd.Flags().GetBool("debug"); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
		return cfg, err
	}
	return cfg, nil
}
