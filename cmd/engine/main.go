package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantex-io/matchbook/matching"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(cfg)
	if len(cfg.Markets) == 0 {
		logger.Fatal().Msg("no markets configured")
	}

	matcher := NewMatcher(logger)
	engine := matching.NewEngine(matcher)

	for _, market := range cfg.Markets {
		pair, err := parsePair(market)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse market")
		}
		if _, err := engine.AddMarket(pair); err != nil {
			logger.Fatal().Err(err).Msg("failed to register market")
		}
	}

	pair, err := parsePair(cfg.Markets[0])
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse market")
	}

	// Seed resting liquidity on both sides of the first market
	for _, seed := range []struct {
		side     matching.OrderSide
		price    string
		quantity string
	}{
		{matching.OrderSideSell, "100", "10"},
		{matching.OrderSideSell, "200", "10"},
		{matching.OrderSideSell, "300", "10"},
		{matching.OrderSideSell, "500", "10"},
		{matching.OrderSideBuy, "95", "5.5"},
		{matching.OrderSideBuy, "90", "2.45"},
	} {
		price, err := matching.NewPriceFromString(seed.price)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse seed price")
		}
		quantity, err := matching.NewUintFromFloatString(seed.quantity)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to parse seed quantity")
		}
		if err := engine.PlaceLimitOrder(pair, price, matching.NewOrder(seed.side, quantity)); err != nil {
			logger.Fatal().Err(err).Msg("failed to place limit order")
		}
	}

	// Execute a market order across several ask levels
	quantity, err := matching.NewUintFromFloatString("25")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse quantity")
	}
	incoming := matching.NewOrder(matching.OrderSideBuy, quantity)
	if err := engine.PlaceMarketOrder(pair, incoming); err != nil {
		logger.Fatal().Err(err).Msg("failed to place market order")
	}
	logger.Info().
		Bool("filled", incoming.IsFilled()).
		Str("executed", incoming.ExecutedQuantity().ToFloatString()).
		Str("rest", incoming.RestQuantity().ToFloatString()).
		Msg("market order done")

	printLadder(logger, engine.OrderBook(pair))

	// Placing against an unregistered pair fails without touching any book
	unknown := matching.NewTradingPair("DOGE", "USD")
	one, err := matching.NewUintFromFloatString("1")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse quantity")
	}
	err = engine.PlaceLimitOrder(unknown, matching.NewPrice(0.1), matching.NewOrder(matching.OrderSideBuy, one))
	if err != nil {
		logger.Warn().Err(err).Msg("rejected order")
	}

	matcher.LogStatistics()
}

func newLogger(cfg Config) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.Logging.Pretty {
		logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = log.Logger
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}

func printLadder(logger zerolog.Logger, orderBook *matching.OrderBook) {
	for _, level := range orderBook.AskLimits() {
		logger.Info().
			Stringer("pair", orderBook.Pair()).
			Stringer("price", level.Price()).
			Str("volume", level.TotalVolume().ToFloatString()).
			Int("orders", level.Orders()).
			Msg("ask level")
	}
	for _, level := range orderBook.BidLimits() {
		logger.Info().
			Stringer("pair", orderBook.Pair()).
			Stringer("price", level.Price()).
			Str("volume", level.TotalVolume().ToFloatString()).
			Int("orders", level.Orders()).
			Msg("bid level")
	}
}
