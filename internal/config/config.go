package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

type Config struct {
	Port   string
	NodeID int64

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	NATSHost string
	NATSPort string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	AuthMode          string // "jwt" or "firebase"
	JWTSecret         string
	FirebaseProjectID string
}

func Load() Config {
	_ = godotenv.Load()

	nodeID, err := strconv.ParseInt(getEnv("NODE_ID", "1"), 10, 64)
	if err != nil {
		nodeID = 1
	}

	return Config{
		Port:   getEnv("PORT", "8080"),
		NodeID: nodeID,

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "lyntr"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		NATSHost: os.Getenv("NATS_HOST"),
		NATSPort: getEnv("NATS_PORT", "4222"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "lyntr"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",

		AuthMode:          getEnv("AUTH_MODE", "jwt"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c Config) NATSURL() string {
	return fmt.Sprintf("nats://%s:%s", c.NATSHost, c.NATSPort)
}

// NewAuthClient builds a Firebase Auth client from the usual credential
// sources. The emulator host variable makes credentials optional.
func NewAuthClient(projectID string) (*auth.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID not set")
	}

	var opts []option.ClientOption
	if saJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); saJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(saJSON)))
	} else if cred := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); cred != "" {
		if _, err := os.Stat(cred); err != nil {
			return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS %q not readable: %w", cred, err)
		}
		opts = append(opts, option.WithCredentialsFile(cred))
	} else if os.Getenv("FIREBASE_AUTH_EMULATOR_HOST") == "" {
		return nil, fmt.Errorf("missing Firebase credentials: set FIREBASE_SERVICE_ACCOUNT_JSON or GOOGLE_APPLICATION_CREDENTIALS, or use FIREBASE_AUTH_EMULATOR_HOST")
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase init: %w", err)
	}
	return app.Auth(context.Background())
}
