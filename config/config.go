package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	BaseURL      string
	DatabaseDSN  string
	AccessSecret string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	CloudinaryUrl string

	// Public catalog filter: when on, only listings owned by verified,
	// active recruiters are browsable. The legacy behavior (everything
	// visible) is kept reachable by turning this off.
	ListingsRequireVerified bool
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:   os.Getenv("SERVER_PORT"),
		BaseURL:      os.Getenv("BASE_URL"),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		AccessSecret: os.Getenv("ACCESS_SECRET"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaGroupID:  os.Getenv("KAFKA_GROUP_ID"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		CloudinaryUrl: os.Getenv("CLOUDINARY_URL"),

		ListingsRequireVerified: os.Getenv("LISTINGS_REQUIRE_VERIFIED") != "false",
	}
}
