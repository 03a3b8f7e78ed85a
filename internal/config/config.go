package config

import (
	"log"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var configSingleton *ConfigSingleton
var muOnce sync.Once

type ConfigSingleton struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ServerPort        string `mapstructure:"SERVER_PORT"`
	UserApiBaseUrl    string `mapstructure:"USER_API_BASE_URL"`
	ProductApiBaseUrl string `mapstructure:"PRODUCT_API_BASE_URL"`
	OrderApiBaseUrl   string `mapstructure:"ORDER_API_BASE_URL"`
	HttpTimeoutSec    int    `mapstructure:"HTTP_TIMEOUT_SEC"`
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	CacheTTLSec       int    `mapstructure:"CACHE_TTL_SEC"`
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	if configSingleton == nil {
		muOnce.Do(func() {
			configSingleton = &ConfigSingleton{}
			if cf, err := loadConfig(); err == nil {
				configSingleton.Config = cf
			} else {
				log.Fatal("error read storefront config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					configSingleton.mu.Lock()
					configSingleton.Config = cf
					configSingleton.mu.Unlock()
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

/*
單純回傳錯誤，由外部決定要不要Fatal
.env不存在時退回環境變數與預設值
*/
func loadConfig() (cf *Config, err error) {
	cf = &Config{}

	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("USER_API_BASE_URL", "http://localhost:8081/api/users")
	viper.SetDefault("PRODUCT_API_BASE_URL", "http://localhost:8082/api/products")
	viper.SetDefault("ORDER_API_BASE_URL", "http://localhost:8083/api/orders")
	viper.SetDefault("HTTP_TIMEOUT_SEC", 30)
	viper.SetDefault("CACHE_TTL_SEC", 300)
	// 沒有SetDefault的key不會被AutomaticEnv餵進Unmarshal
	// redis預設空字串(不啟用快取)，但要讓純環境變數部署也設定得到
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config file not loaded, fallback to env: %v", err)
		}
		err = nil
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}
	return
}
