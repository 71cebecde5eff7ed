package config

import (
	"fmt"
	"github.com/google/uuid"
	"strings"
	"time"
)

func validateConfig(s *Struct) error {
	if s.Source.Path == "" {
		return fmt.Errorf("config validation ['source.path']: a source file, url or '-' is required")
	}
	if s.Destination.Path == "" {
		return fmt.Errorf("config validation ['destination.path']: a destination file or '-' is required")
	}
	if s.Parser.MaxLineLength <= 0 {
		return fmt.Errorf("config validation ['parser.max_line_length']: must be positive, got %d", s.Parser.MaxLineLength)
	}
	if s.Destination.Buffer < 0 {
		return fmt.Errorf("config validation ['destination.buffer']: must not be negative, got %d", s.Destination.Buffer)
	}

	return nil
}

func ProcessString(str string) string {
	if strings.Contains(str, "$(time)") {
		str = strings.ReplaceAll(str, "$(time)", time.Now().Format("2006-01-02-15-04-05"))
	}
	if strings.Contains(str, "$(random)") {
		str = strings.ReplaceAll(str, "$(random)", uuid.New().String())
	}
	return str
}
