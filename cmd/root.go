package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mediasort",
	Short: "mediasort organizes media files into a canonical library layout",
	Long:  `mediasort scans source folders, classifies and enriches media files, and moves them into a canonical library layout`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("MEDIASORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.baseUrl", "https://api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("library.moviesRoot", "")
	viper.SetDefault("library.tvRoot", "")
	viper.SetDefault("library.sources", []string{})
	viper.SetDefault("library.autoOrganize", false)

	viper.SetDefault("storage.filePath", "mediasort.sqlite")
}
