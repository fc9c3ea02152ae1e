package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/berquerant/splitlast/pkg/pattern"
)

var (
	ErrConfig = errors.New("Config")
)

func NewConfig(w io.Writer, r io.Reader, delimiter string) *Config {
	return &Config{
		Delimiter: delimiter,
		Writer:    w,
		Reader:    r,
	}
}

type Config struct {
	Debug      bool
	Delimiter  string
	Whitespace bool

	Args []string

	Writer io.Writer `json:"-"`
	Reader io.Reader `json:"-"`
}

func (c *Config) Init(args []string) error {
	if c.Delimiter == "" && !c.Whitespace {
		return fmt.Errorf("%w: empty delimiter", ErrConfig)
	}
	c.Args = args
	return nil
}

// Pattern selects the pattern variant from the flags:
// whitespace mode splits on unicode spaces, a single-rune delimiter
// uses the rune matcher, anything longer matches as a literal.
func (c Config) Pattern() pattern.Pattern {
	if c.Whitespace {
		return pattern.Func(unicode.IsSpace)
	}
	if r, size := utf8.DecodeRuneInString(c.Delimiter); size == len(c.Delimiter) {
		return pattern.Rune(r)
	}
	return pattern.Literal(c.Delimiter)
}

func (c Config) SetupLogger(w io.Writer) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}
