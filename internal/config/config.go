package config

import (
	"bytes"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/alecthomas/units"
	"github.com/mcuadros/go-defaults"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"os"
	"strings"
	"time"
)

var Version string

var Config Struct

type Struct struct {
	Source struct {
		Path     string        `toml:"path"`
		Encoding Encoding      `default:"raw" toml:"encoding"`
		Timeout  time.Duration `default:"30s" toml:"timeout"`
	} `toml:"source"`
	Parser struct {
		Type          ParserType       `default:"default" toml:"type"`
		MaxLineLength units.Base2Bytes `default:"65536" toml:"max_line_length"`
	} `toml:"parser"`
	Destination struct {
		Path     string           `toml:"path"`
		Encoding Encoding         `default:"raw" toml:"encoding"`
		Buffer   units.Base2Bytes `default:"4096" toml:"buffer"`
	} `toml:"destination"`
	Log struct {
		File  string       `default:"" toml:"file"`
		Level logrus.Level `default:"3" toml:"level"`
	} `toml:"log"`
}

// ---------------------------------------------------------------------------

// Encoding is the textual representation a byte stream is stored in.
type Encoding string

const (
	Raw    Encoding = "raw"
	Base64 Encoding = "base64"
	Hex    Encoding = "hex"
)

var Encodings = []Encoding{Raw, Base64, Hex}

func (e *Encoding) UnmarshalText(text []byte) error {
	encoding := Encoding(strings.ToLower(string(text)))
	if !lo.Contains(Encodings, encoding) {
		return fmt.Errorf("invalid encoding: %s", text)
	}
	*e = encoding
	return nil
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

func (e Encoding) String() string {
	return string(e)
}

func (e *Encoding) Set(s string) error {
	return e.UnmarshalText([]byte(s))
}

func (e *Encoding) Type() string {
	return "encoding"
}

// ---------------------------------------------------------------------------

type ParserType string

const (
	DefaultParser ParserType = "default"
)

var ParserTypes = []ParserType{DefaultParser}

func (p *ParserType) UnmarshalText(text []byte) error {
	parserType := ParserType(strings.ToLower(string(text)))
	if !lo.Contains(ParserTypes, parserType) {
		return fmt.Errorf("invalid parser type: %s", text)
	}
	*p = parserType
	return nil
}

func (p ParserType) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p ParserType) String() string {
	return string(p)
}

func (p *ParserType) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

func (p *ParserType) Type() string {
	return "parser"
}

// ---------------------------------------------------------------------------

func New() *Struct {
	s := Struct{}
	defaults.SetDefaults(&s)
	return &s
}

func (s *Struct) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("error reading toml config file %s: %s", path, err.Error())
		return err
	}
	return s.LoadData(string(data))
}

func (s *Struct) LoadData(data string) error {
	_, err := toml.Decode(data, s)
	if err != nil {
		logrus.Errorf("error parsing toml config: %s", err.Error())
		return err
	}
	return nil
}

func (s *Struct) Validate() error {
	return validateConfig(s)
}

func (s *Struct) SaveData() string {
	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	encoder := toml.NewEncoder(buf)
	err := encoder.Encode(s)
	if err != nil {
		logrus.Errorf("error saving toml config: %s", err.Error())
		panic(err)
	}
	return buf.String()
}

func init() {
	defaults.SetDefaults(&Config)
}
