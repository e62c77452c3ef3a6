package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/briefly/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	JSON     bool
	Logger   *slog.Logger
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string        `name:"db" env:"BRIEFLY_DB" help:"Database path (default ~/.briefly/briefly.db)"`
	Variant   string        `short:"V" enum:"recipe,summary" default:"recipe" env:"BRIEFLY_VARIANT" help:"Output variant (recipe, summary)"`
	Provider  string        `enum:"openai,gemini" default:"openai" env:"BRIEFLY_PROVIDER" help:"Structuring provider (openai, gemini)"`
	Model     string        `env:"BRIEFLY_MODEL" help:"Model name (provider default if empty)"`
	OpenAIKey string        `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIURL string        `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`
	GeminiKey string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Extractor string        `enum:"readability,trafilatura" default:"readability" env:"BRIEFLY_EXTRACTOR" help:"Primary extraction strategy (readability, trafilatura)"`
	Markdown  bool          `env:"BRIEFLY_MARKDOWN" help:"Render extracted articles as Markdown"`
	DebugDir  string        `name:"debug-dir" env:"BRIEFLY_DEBUG_DIR" help:"Write extracted text to this directory"`
	Timeout   time.Duration `default:"10s" help:"HTTP fetch timeout"`
	JSON      bool          `name:"json" help:"Print results as JSON"`
	Verbose   bool          `short:"v" help:"Log each pipeline step to stderr"`

	URL     URLCmd     `cmd:"" name:"url" help:"Structure the page at a URL"`
	Text    TextCmd    `cmd:"" help:"Structure pasted text"`
	History HistoryCmd `cmd:"" help:"List recent records"`
	Extract ExtractCmd `cmd:"" help:"Print the focused text of a page without structuring it"`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Title string `short:"t" help:"Title to use instead of the structured one"`
	URL   string `short:"u" name:"url" help:"Source URL to store with the record"`
	File  string `short:"f" default:"-" help:"Read text from file ('-' for stdin)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of records"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Page URL"`
}
