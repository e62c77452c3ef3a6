package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/briefly"
	"github.com/fwojciec/briefly/fs"
	"github.com/fwojciec/briefly/gemini"
	"github.com/fwojciec/briefly/goquery"
	"github.com/fwojciec/briefly/htmltomarkdown"
	brieflyhttp "github.com/fwojciec/briefly/http"
	brieflyopenai "github.com/fwojciec/briefly/openai"
	"github.com/fwojciec/briefly/pipeline"
	"github.com/fwojciec/briefly/readability"
	brieflyslog "github.com/fwojciec/briefly/slog"
	"github.com/fwojciec/briefly/sqlite"
	"github.com/fwojciec/briefly/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. When nil, Run builds them from
	// flags and environment.
	Fetcher    briefly.Fetcher
	Structurer briefly.Structurer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("briefly"),
		kong.Description("Turn recipe pages and articles into structured records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'briefly --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]
	deps.JSON = cli.JSON

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p := &pipeline.Pipeline{
		Variant: briefly.Variant(cli.Variant),
		Logger:  logger,
	}
	deps.Pipeline = p
	deps.Logger = logger

	if cmd != "extract" {
		dbPath := m.DBPath
		if cli.DB != "" {
			dbPath = cli.DB
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set BRIEFLY_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		p.Records = sqlite.NewRecordService(m.DB)
	}

	if cmd == "url" || cmd == "extract" {
		p.Fetcher = m.Fetcher
		if p.Fetcher == nil {
			p.Fetcher = brieflyhttp.NewFetcher(brieflyhttp.WithTimeout(cli.Timeout))
		}
		p.Extractor = buildChain(cli)
		if cli.DebugDir != "" {
			p.Debug = fs.NewDebugWriter(cli.DebugDir)
		}
	}

	if cmd == "url" || cmd == "text" {
		p.Structurer = m.Structurer
		if p.Structurer == nil {
			p.Structurer, err = buildStructurer(ctx, cli, stderr)
			if err != nil {
				return err
			}
		}
	}

	if cli.Verbose {
		if p.Fetcher != nil {
			p.Fetcher = brieflyslog.NewLoggingFetcher(p.Fetcher, logger)
		}
		if p.Extractor != nil {
			p.Extractor.Strategies = brieflyslog.WrapStrategies(p.Extractor.Strategies, logger)
		}
		if p.Structurer != nil {
			p.Structurer = brieflyslog.NewLoggingStructurer(p.Structurer, logger)
		}
		if p.Records != nil {
			p.Records = brieflyslog.NewLoggingRecordService(p.Records, logger)
		}
	}

	return kongCtx.Run(deps)
}

// buildChain returns the extraction chain: the selected primary strategy
// followed by the selector and paragraph fallbacks.
func buildChain(cli *CLI) *briefly.Chain {
	var primary briefly.Strategy
	switch cli.Extractor {
	case "trafilatura":
		primary = trafilatura.NewExtractor()
	default:
		ext := readability.NewExtractor()
		if cli.Markdown {
			ext.Converter = htmltomarkdown.NewConverter()
		}
		primary = ext
	}
	return briefly.NewChain(
		primary,
		goquery.NewSelectorExtractor(),
		goquery.NewParagraphExtractor(),
	)
}

// buildStructurer creates the structuring client for the selected provider.
// The provider's API key is checked here, once.
func buildStructurer(ctx context.Context, cli *CLI, stderr io.Writer) (briefly.Structurer, error) {
	switch cli.Provider {
	case "gemini":
		if cli.GeminiKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewStructurer(client.Models, cli.Model), nil
	default:
		// Local OpenAI-compatible servers usually accept any key.
		if cli.OpenAIKey == "" && cli.OpenAIURL == "" {
			fmt.Fprintln(stderr, "Hint: Set OPENAI_API_KEY, or OPENAI_BASE_URL for a compatible local server")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := brieflyopenai.NewClient(cli.OpenAIKey, cli.OpenAIURL)
		return brieflyopenai.NewStructurer(client, cli.Model), nil
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "briefly.db"
	}
	dir := filepath.Join(home, ".briefly")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "briefly.db")
}
