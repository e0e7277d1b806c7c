package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RECEIPT_LOG_LEVEL.
const EnvPrefix = "RECEIPT"

// FileName is the optional configuration file looked up in the working
// directory, without extension.
const FileName = "receipt-editor"

type Config struct {
	Log      LogConfig
	Window   WindowConfig
	Preview  PreviewConfig
	Cashiers []string
}

type LogConfig struct {
	Level string
	JSON  bool
}

type WindowConfig struct {
	Width  float32
	Height float32
}

type PreviewConfig struct {
	Width   int
	Contact string
}

// DefaultCashiers are offered in the cashier field of a new receipt.
var DefaultCashiers = []string{
	"Васильев Григорий Павлович",
	"Николаев Евгений Алексеевич",
}

// Load reads configuration from defaults, an optional config file and the
// environment. A missing file is not an error; a malformed one is. An
// empty path searches the working directory for FileName.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Level: v.GetString("log.level"),
			JSON:  v.GetBool("log.json"),
		},
		Window: WindowConfig{
			Width:  float32(v.GetFloat64("window.width")),
			Height: float32(v.GetFloat64("window.height")),
		},
		Preview: PreviewConfig{
			Width:   v.GetInt("preview.width"),
			Contact: v.GetString("preview.contact"),
		},
		Cashiers: v.GetStringSlice("cashiers"),
	}

	if cfg.Preview.Width < minPreviewWidth {
		return nil, fmt.Errorf("preview width %d is below %d", cfg.Preview.Width, minPreviewWidth)
	}
	return cfg, nil
}

// The total line needs room for the amount column.
const minPreviewWidth = 20

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("preview.width", 50)
	v.SetDefault("preview.contact", "+7 (XXX) XXX-XX-XX")
	v.SetDefault("cashiers", DefaultCashiers)
}

// DefaultCashier is the cashier preselected on a new receipt.
func (c *Config) DefaultCashier() string {
	if len(c.Cashiers) == 0 {
		return ""
	}
	return c.Cashiers[0]
}
