package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server Server `yaml:"server"`
	Media  Media  `yaml:"media"`
}

type Server struct {
	Listen          string   `yaml:"listen"`
	ElasticAddrs    []string `yaml:"elasticAddrs"`
	ElasticUser     string   `yaml:"elasticUser"`
	ElasticPassword string   `yaml:"elasticPassword"`
	RedisAddr       string   `yaml:"redisAddr"`
	RedisPassword   string   `yaml:"redisPassword"`
	RedisDB         int      `yaml:"redisDB"`
	EnableTrace     bool     `yaml:"enableTrace"`
	TraceEndpoint   string   `yaml:"traceEndpoint"`
}

type Media struct {
	// BaseURL is the location of the pre-cut media chunk tree.
	BaseURL string `yaml:"baseURL"`
	// PlaylistCacheTTL is in seconds; zero disables the redis cache.
	PlaylistCacheTTL int `yaml:"playlistCacheTTL"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	// Secrets may come from the environment instead of the file.
	if password := os.Getenv("ELASTIC_PASSWORD"); password != "" {
		config.Server.ElasticPassword = password
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Server.RedisPassword = password
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}

	return config, nil
}
