package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/golf-pricing/internal/app"
	"github.com/riskibarqy/golf-pricing/internal/config"
	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
	"github.com/riskibarqy/golf-pricing/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/golf-pricing/internal/observability"
	"github.com/riskibarqy/golf-pricing/internal/platform/logging"
	"github.com/riskibarqy/golf-pricing/internal/usecase"
)

var errUsage = errors.New("usage")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Service: cfg.ServiceName,
		Version: cfg.ServiceVersion,
		Env:     cfg.AppEnv,
		Output:  os.Stderr,
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		logger.Error("pricecheck failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, rest := strings.ToLower(strings.TrimSpace(args[0])), args[1:]
	if command == "seed" {
		return runSeed(ctx, cfg)
	}

	engine, err := app.NewEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()

	switch command {
	case "quote":
		return runQuote(ctx, engine, rest, stdin, stdout)
	case "benefits":
		return runBenefits(ctx, engine, rest, stdout)
	case "consume":
		return runConsume(ctx, engine, rest, stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// runQuote prices one booking built from flags, or a JSON request (object or
// array) read from -request. "-" reads stdin.
func runQuote(ctx context.Context, engine *app.Engine, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	requestPath := fs.String("request", "", "JSON request file, - for stdin")
	clubID := fs.String("club", "", "club id")
	courseID := fs.String("course", "", "course id")
	date := fs.String("date", "", "play date YYYY-MM-DD")
	teeTime := fs.String("tee", "", "tee time HH:MM")
	holes := fs.Int("holes", 0, "holes booked")
	players := fs.String("players", "walkin", "comma separated identity codes")
	totalPlayers := fs.Int("total", 0, "party size when larger than the named players")
	caddy := fs.Bool("caddy", false, "need caddy")
	cart := fs.Bool("cart", false, "need cart")
	packageID := fs.String("package", "", "stay package id")
	addOn := fs.Bool("add-on", false, "price an add-on nine")
	reduced := fs.Bool("reduced", false, "price a shortened round")
	holesPlayed := fs.Int("holes-played", 0, "holes actually played")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if *requestPath != "" {
		raw, err := readRequest(*requestPath, stdin)
		if err != nil {
			return err
		}
		return quoteFromJSON(ctx, engine, raw, stdout)
	}

	req := usecase.QuoteRequest{
		ClubID:       *clubID,
		CourseID:     *courseID,
		Date:         *date,
		TeeTime:      *teeTime,
		Holes:        *holes,
		Players:      parsePlayers(*players),
		TotalPlayers: *totalPlayers,
		NeedCaddy:    *caddy,
		NeedCart:     *cart,
		PackageID:    *packageID,
		IsAddOn:      *addOn,
		IsReduced:    *reduced,
		HolesPlayed:  *holesPlayed,
	}
	quote, err := engine.Pricing.CalculateBookingPrice(ctx, req)
	if err != nil {
		return err
	}
	return writeJSON(stdout, quote)
}

func quoteFromJSON(ctx context.Context, engine *app.Engine, raw []byte, stdout io.Writer) error {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var reqs []usecase.QuoteRequest
		if err := sonic.UnmarshalString(trimmed, &reqs); err != nil {
			return fmt.Errorf("decode quote requests: %w", err)
		}
		result, err := engine.Pricing.CalculateBookingPrices(ctx, reqs)
		if err != nil {
			return err
		}
		return writeJSON(stdout, result)
	}

	var req usecase.QuoteRequest
	if err := sonic.UnmarshalString(trimmed, &req); err != nil {
		return fmt.Errorf("decode quote request: %w", err)
	}
	quote, err := engine.Pricing.CalculateBookingPrice(ctx, req)
	if err != nil {
		return err
	}
	return writeJSON(stdout, quote)
}

func runBenefits(ctx context.Context, engine *app.Engine, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("benefits", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	clubID := fs.String("club", "", "club id")
	playerID := fs.String("player", "", "player id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	summary, err := engine.Benefits.GetPlayerBenefits(ctx, *clubID, *playerID)
	if err != nil {
		return err
	}
	return writeJSON(stdout, benefitsOutput{
		Summary:             summary,
		RemainingFreeRounds: summary.RemainingFreeRoundsText(),
	})
}

type benefitsOutput struct {
	Summary             membership.Summary `json:"summary"`
	RemainingFreeRounds string             `json:"remaining_free_rounds_text"`
}

type consumeOutput struct {
	Kind    string `json:"kind"`
	Applied bool   `json:"applied"`
}

func runConsume(ctx context.Context, engine *app.Engine, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("consume", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	clubID := fs.String("club", "", "club id")
	playerID := fs.String("player", "", "player id")
	kind := fs.String("kind", "free_round", "free_round, guest or spend")
	count := fs.Int("count", 1, "guest count")
	amount := fs.Float64("amount", 0, "spend amount")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var (
		applied bool
		err     error
	)
	switch *kind {
	case "free_round":
		applied, err = engine.Benefits.ConsumeFreeRound(ctx, *clubID, *playerID)
	case "guest":
		applied, err = engine.Benefits.ConsumeGuestQuota(ctx, *clubID, *playerID, *count)
	case "spend":
		applied, err = engine.Benefits.AddConsumption(ctx, *clubID, *playerID, *amount)
	default:
		return fmt.Errorf("%w: unknown consume kind %q", errUsage, *kind)
	}
	if err != nil {
		return err
	}
	return writeJSON(stdout, consumeOutput{Kind: *kind, Applied: applied})
}

func runSeed(ctx context.Context, cfg config.Config) error {
	if cfg.StoreDriver != config.StorePostgres {
		return fmt.Errorf("seed requires STORE_DRIVER=%s", config.StorePostgres)
	}
	db, err := app.OpenPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	logging.Default().InfoContext(ctx, "demo data seeded")
	return nil
}

func parsePlayers(raw string) []usecase.PlayerInput {
	parts := strings.Split(raw, ",")
	out := make([]usecase.PlayerInput, 0, len(parts))
	for _, part := range parts {
		code := strings.TrimSpace(part)
		if code == "" {
			continue
		}
		out = append(out, usecase.PlayerInput{IdentityCode: code})
	}
	return out
}

func readRequest(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}
	return raw, nil
}

func writeJSON(w io.Writer, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: pricecheck <quote|benefits|consume|seed> [flags]")
	fmt.Fprintln(w, "examples:")
	fmt.Fprintln(w, "  pricecheck quote -club club-demo -date 2025-06-03 -tee 08:00 -players walkin,member_1 -caddy")
	fmt.Fprintln(w, "  pricecheck quote -request - < requests.json")
	fmt.Fprintln(w, "  pricecheck benefits -club club-demo -player player-001")
	fmt.Fprintln(w, "  pricecheck consume -club club-demo -player player-001 -kind guest -count 1")
	fmt.Fprintln(w, "  STORE_DRIVER=postgres pricecheck seed")
}
