package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, read from configs/app.env or
// the environment. TrustGeocodeCache controls the cache policy: when
// true (the default), an existing cache file is treated as the complete
// geocode result set and no external lookups are made, even for
// institutions added or corrected since it was written.
type Config struct {
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	CORSAllowOrigin     string        `mapstructure:"CORS_ALLOW_ORIGIN"`
	GeocoderBaseURL     string        `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderUserAgent   string        `mapstructure:"GEOCODER_USER_AGENT"`
	GeocoderMinInterval time.Duration `mapstructure:"GEOCODER_MIN_INTERVAL"`
	TrustGeocodeCache   bool          `mapstructure:"TRUST_GEOCODE_CACHE"`
}

// LoadConfig reads configuration from app.env in the given directory,
// with environment variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
