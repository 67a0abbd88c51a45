package main

import (
	"os"
	"strconv"
	"sync"
)

type Config struct {
	BotDelayMs   int  `json:"bot_delay_ms"`
	BotAvoidEyes bool `json:"bot_avoid_eyes"`
	LogMoves     bool `json:"log_moves"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		BotDelayMs:   300,
		BotAvoidEyes: true,
		LogMoves:     false,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

// LoadConfigFromEnv overrides the defaults with BOT_DELAY_MS, BOT_AVOID_EYES
// and LOG_MOVES when set.
func LoadConfigFromEnv() {
	config := GetConfig()
	config.BotDelayMs = getenvInt("BOT_DELAY_MS", config.BotDelayMs)
	config.BotAvoidEyes = getenvBool("BOT_AVOID_EYES", config.BotAvoidEyes)
	config.LogMoves = getenvBool("LOG_MOVES", config.LogMoves)
	configStore.Update(config)
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
