package models

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type RabbitMQConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

type ServerConfig struct {
	Port string
}

type AIConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

type GeocodeConfig struct {
	Endpoint string
}

type Config struct {
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	Server   ServerConfig
	AI       AIConfig
	Geocode  GeocodeConfig
}
