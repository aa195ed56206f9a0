package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	TileSize       int     `mapstructure:"TILE_SIZE"`
	Stride         int     `mapstructure:"STRIDE"`
	ZoneResolution float64 `mapstructure:"ZONE_RESOLUTION"`
	InputCRS       string  `mapstructure:"INPUT_CRS"`
	OutputFormat   string  `mapstructure:"OUTPUT_FORMAT"`
	DBUrl          string  `mapstructure:"DB_URL"`
}

func LoadConfig() (c Config, err error) {
	// Get environment type from ENV variable or use development as default
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Set default values
	viper.SetDefault("TILE_SIZE", 1000)
	viper.SetDefault("STRIDE", 1000)
	viper.SetDefault("ZONE_RESOLUTION", 0.1)
	viper.SetDefault("INPUT_CRS", "EPSG:4326")
	viper.SetDefault("OUTPUT_FORMAT", "geojson")

	// Load environment file
	viper.SetConfigName(fmt.Sprintf(".env.%s", env))
	viper.SetConfigType("env")
	viper.AddConfigPath(".") // Look in the project root directory

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		// Continue even if file is not found
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	// Map the values to the Config struct
	err = viper.Unmarshal(&c)
	return
}
