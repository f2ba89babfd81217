package config

import (
	"fmt"
	"time"

	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/pkg/mq"
	"github.com/elab-development/internet-tehnologije-2025-vebaplikacijazaonlineaukcije-2021-0356/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API        API          `mapstructure:"api"`
	Database   mysql.Config `mapstructure:"database"`
	RabbitMQ   mq.Config    `mapstructure:"rabbitmq"`
	Settlement Settlement   `mapstructure:"settlement"`
}

type API struct {
	Port string `mapstructure:"port"`
}

// Settlement controls the sweeper: how often it ticks and how many ended
// auctions one tick may finalize. Leftovers wait for the next tick.
type Settlement struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("settlement.interval", "15s")
	viper.SetDefault("settlement.batch_size", 50)

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
