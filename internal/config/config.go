package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         string `yaml:"port"`
		TemplatePath string `yaml:"template_path"`
		StaticPath   string `yaml:"static_path"`
	} `yaml:"server"`
	API struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"api"`
	Auth struct {
		// Имя cookie, в которой хранится bearer-токен сотрудника.
		TokenCookie string `yaml:"token_cookie"`
	} `yaml:"auth"`
}

// LoadConfig загружает конфигурацию из config.yaml и переменных окружения.
func LoadConfig() *Config {
	// .env необязателен — используется для локального запуска
	_ = godotenv.Load()

	config := &Config{}

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка чтения config.yaml: %v", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Fatalf("Ошибка парсинга config.yaml: %v", err)
	}

	// Переменные окружения перекрывают значения из файла
	if v := os.Getenv("REGISTRY_API_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("REGISTRY_PORT"); v != "" {
		config.Server.Port = v
	}

	applyDefaults(config)

	if config.API.BaseURL == "" {
		log.Fatal("Не задан адрес API регистратуры (api.base_url или REGISTRY_API_URL)")
	}

	log.Println("Конфигурация успешно загружена")
	return config
}

func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = ":3000"
	}
	if c.Server.TemplatePath == "" {
		c.Server.TemplatePath = "./views"
	}
	if c.Server.StaticPath == "" {
		c.Server.StaticPath = "./static"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 15 * time.Second
	}
	if c.Auth.TokenCookie == "" {
		c.Auth.TokenCookie = "access_token"
	}
}
