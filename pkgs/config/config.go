package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
)

type Channel struct {
	Network string
	Address string
	Port    uint16
	Timeout time.Duration
}

type Buffer struct {
	Size int
}

type Fat struct {
	Image  string
	Size   string
	Label  string
	Path   string
	Append bool
	Mkfs   bool
}

type Format struct {
	Strict bool
}

type Configuration struct {
	// Sink is the sink kind used by "chprintf print"
	Sink    string
	Channel Channel
	Buffer  Buffer
	Fat     Fat
	Format  Format
}

// ImageSize returns the configured FAT image size in bytes, e.g. "64MiB".
func (f Fat) ImageSize() (int64, error) {
	size, err := humanize.ParseBytes(f.Size)
	if err != nil {
		return 0, fmt.Errorf("invalid FAT image size %q: %w", f.Size, err)
	}
	return int64(size), nil
}

// Endpoint returns the channel address in host:port form.
func (c Channel) Endpoint() string {
	if strings.Contains(c.Address, ":") && !strings.HasPrefix(c.Address, "[") {
		return fmt.Sprintf("[%s]:%d", c.Address, c.Port)
	}
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sink", "stream")
	v.SetDefault("channel.network", "udp")
	v.SetDefault("channel.address", "127.0.0.1")
	v.SetDefault("channel.port", 21105)
	v.SetDefault("channel.timeout", "1s")
	v.SetDefault("buffer.size", 256)
	v.SetDefault("fat.image", "fat.img")
	v.SetDefault("fat.size", "64MiB")
	v.SetDefault("fat.label", "CHPRINTF")
	v.SetDefault("fat.path", "OUTPUT.TXT")
	v.SetDefault("fat.append", false)
	v.SetDefault("fat.mkfs", false)
	v.SetDefault("format.strict", false)
}

func NewConfig() (*Configuration, error) {
	// application configuration
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".chprintf")
	v.AddConfigPath("$HOME/")
	v.AddConfigPath(".")
	setDefaults(v)
	_ = v.SafeWriteConfig()

	v.SetEnvPrefix("CHPRINTF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return &Configuration{}, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	return unmarshal(v)
}

// FromReader builds a configuration from a YAML document, defaults fill in
// whatever is missing.
func FromReader(data string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.ReadConfig(strings.NewReader(data)); err != nil {
		return &Configuration{}, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Configuration, error) {
	config := Configuration{}
	if err := v.Unmarshal(&config); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	if _, err := config.Fat.ImageSize(); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	return &config, nil
}
