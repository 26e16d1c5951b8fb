package util

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string `mapstructure:"PORT" validate:"required,number"`
	WordListFile     string `mapstructure:"WORD_LIST_FILE"`
	MinPlayableWords int    `mapstructure:"MIN_PLAYABLE_WORDS" validate:"gte=0"`
	AllowedOrigins   string `mapstructure:"ALLOWED_ORIGINS"`
}

// DefaultMinPlayableWords is used when MIN_PLAYABLE_WORDS is unset. A letter
// pool that can spell at least this many dictionary words counts as playable.
const DefaultMinPlayableWords = 10

func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Port:             os.Getenv("PORT"),
		WordListFile:     os.Getenv("WORD_LIST_FILE"),
		MinPlayableWords: DefaultMinPlayableWords,
		AllowedOrigins:   os.Getenv("ALLOWED_ORIGINS"),
	}

	if v := os.Getenv("MIN_PLAYABLE_WORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		config.MinPlayableWords = n
	}

	if err := Validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
