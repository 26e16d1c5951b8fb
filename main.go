package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wyattandrews22-lgtm/the-letter-challenge/api"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/util"
	"github.com/wyattandrews22-lgtm/the-letter-challenge/words"
)

func main() {
	util.InitValidator()

	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}

	config, err := util.LoadConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	dict := loadDictionary(config)

	server := api.NewServer(config, dict)

	log.Info().Str("port", config.Port).Int("words", dict.Len()).Msg("starting server")

	log.Fatal().Err(server.Start()).Msg("server exited")
}

// loadDictionary reads the configured word list. A missing or unreadable
// list degrades word validation instead of failing startup.
func loadDictionary(config *util.Config) *words.Dictionary {
	if config.WordListFile == "" {
		log.Warn().Msg("WORD_LIST_FILE not set, word validation degraded")
		return words.New(nil)
	}

	dict, err := words.Load(config.WordListFile)

	if err != nil {
		log.Warn().Err(err).Str("path", config.WordListFile).Msg("cannot load word list, word validation degraded")
		return words.New(nil)
	}

	return dict
}
