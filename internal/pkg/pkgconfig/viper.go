package pkgconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

type viperConfig struct {
	v *viper.Viper
}

// NewViper loads a yaml configuration file and layers environment variables
// on top, so deployment can override any key without touching the file.
func NewViper(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &viperConfig{v: v}, nil
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

func (c *viperConfig) Close() error {
	return nil
}
