package config

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTTTLHours        int
	SessionSecret      string
	GoogleClientID     string
	GoogleClientSecret string
	ClientURL          string
	Environment        string
}
