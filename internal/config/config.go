package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultPort is the well-known port of the Joplin Web Clipper service.
const DefaultPort = 41184

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
		bindFlag(KeyPort, root, "joplin-port")
		bindFlag(KeyAutoLaunch, root, "joplin-auto-launch")
		bindFlag(KeyLogLevel, root, "log-level")
	}
	setDefaults()
}

func bindFlag(key string, root *cobra.Command, name string) {
	if flag := root.PersistentFlags().Lookup(name); flag != nil {
		_ = viper.BindPFlag(key, flag)
	}
}

func setDefaults() {
	viper.SetDefault(KeyPort, DefaultPort)
	viper.SetDefault(KeyAutoLaunch, true)
	viper.SetDefault(KeyLogLevel, "info")
}

func Token() string    { return viper.GetString(KeyToken) }
func Port() int        { return viper.GetInt(KeyPort) }
func AutoLaunch() bool { return viper.GetBool(KeyAutoLaunch) }
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// BaseURL returns the Web Clipper API base URL for the configured port.
func BaseURL() string {
	return fmt.Sprintf("http://localhost:%d", Port())
}
