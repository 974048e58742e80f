// Package config for config details
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	env "github.com/hashicorp/go-envparse"
)

// Configuration struct to hold app configurations
type Configuration struct {
	Listen           string `validate:"required"`
	Store            string `validate:"required,oneof=memory bolt postgres"`
	BoltPath         string `validate:"required_if=Store bolt"`
	PostgresHost     string `validate:"required_if=Store postgres"`
	PostgresPort     int    `validate:"min=1,max=65535"`
	PostgresDB       string `validate:"required_if=Store postgres"`
	PostgresUser     string `validate:"required_if=Store postgres"`
	PostgresPassword string
	PostgresMaxConns int `validate:"min=1"`
	NicTags          []string
	FabricNicTag     string `validate:"required"`
	Debug            bool
}

// ReadConfFile read configurations of env file
func ReadConfFile(path string) (Configuration, error) {
	config := Configuration{
		Listen:           ":8080",
		Store:            "memory",
		PostgresPort:     5432,
		PostgresMaxConns: 80,
		FabricNicTag:     "fabric",
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to open config file: %w", err)
	}

	configMap, err := env.Parse(strings.NewReader(string(content)))
	if err != nil {
		return Configuration{}, fmt.Errorf("failed to load config: %w", err)
	}

	for key, value := range configMap {
		switch key {
		case "LISTEN":
			config.Listen = value

		case "STORE":
			config.Store = value

		case "BOLT_PATH":
			config.BoltPath = value

		case "POSTGRES_HOST":
			config.PostgresHost = value

		case "POSTGRES_PORT":
			port, err := strconv.Atoi(value)
			if err != nil {
				return Configuration{}, fmt.Errorf("invalid POSTGRES_PORT %q: %w", value, err)
			}
			config.PostgresPort = port

		case "POSTGRES_DB":
			config.PostgresDB = value

		case "POSTGRES_USER":
			config.PostgresUser = value

		case "POSTGRES_PASSWORD":
			config.PostgresPassword = value

		case "POSTGRES_MAX_CONNS":
			conns, err := strconv.Atoi(value)
			if err != nil {
				return Configuration{}, fmt.Errorf("invalid POSTGRES_MAX_CONNS %q: %w", value, err)
			}
			config.PostgresMaxConns = conns

		case "NIC_TAGS":
			for _, tag := range strings.Split(value, ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					config.NicTags = append(config.NicTags, tag)
				}
			}

		case "FABRIC_NIC_TAG":
			config.FabricNicTag = value

		case "DEBUG":
			debug, err := strconv.ParseBool(value)
			if err != nil {
				return Configuration{}, fmt.Errorf("invalid DEBUG %q: %w", value, err)
			}
			config.Debug = debug

		default:
			return Configuration{}, fmt.Errorf("key %v is invalid", key)
		}
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(config); err != nil {
		return Configuration{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
