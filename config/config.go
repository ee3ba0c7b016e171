package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type Config struct {
	LogLevel         slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr   string        `mapstructure:"http_server_addr"`
	CartDB           string        `mapstructure:"cart_db"`
	SearchDebounce   time.Duration `mapstructure:"search_debounce"`
	ShippingCentavos int64         `mapstructure:"shipping_centavos"`
	InitialState     string        `mapstructure:"initial_state"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("cart_db", "cart.db")
	viper.SetDefault("search_debounce", 120*time.Millisecond)

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%v
	HTTPServerAddr=%q
	CartDB=%q

	Storefront:
	SearchDebounce=%s
	ShippingCentavos=%d
	InitialState=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.CartDB,
		c.SearchDebounce,
		c.ShippingCentavos,
		c.InitialState,
	)
}
