package parser

import (
	"github.com/nimatrueway/foxyrules/internal/config"
	"github.com/nimatrueway/foxyrules/internal/foxyproxy"
	"io"
)

// Parser turns a newline delimited block list into FoxyProxy rules.
type Parser interface {
	Parse(src io.Reader) ([]foxyproxy.Rule, error)
}

func New(parserType config.ParserType, maxLineLength int) Parser {
	switch parserType {
	case config.DefaultParser:
		return &DefaultParser{MaxLineLength: maxLineLength}
	default:
		panic("invalid parser type")
	}
}
