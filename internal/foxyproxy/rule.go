package foxyproxy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/samber/lo"
	"io"
)

type PatternType string

const (
	Wildcard PatternType = "wildcard"
	Match    PatternType = "match"
	Regex    PatternType = "regex"
)

var PatternTypes = []PatternType{Wildcard, Match, Regex}

type Pattern struct {
	Type  PatternType
	Value string
}

func WildcardPattern(value string) Pattern {
	return Pattern{Type: Wildcard, Value: value}
}

// Rule is a single FoxyProxy url pattern, Include tells whether matching urls are proxied.
type Rule struct {
	Title   string
	Pattern Pattern
	Active  bool
	Include bool
}

func NewRule(title string, pattern Pattern, active bool, include bool) Rule {
	return Rule{Title: title, Pattern: pattern, Active: active, Include: include}
}

type ruleJSON struct {
	Title   string      `json:"title"`
	Type    PatternType `json:"type"`
	Pattern string      `json:"pattern"`
	Active  bool        `json:"active"`
	Include string      `json:"include"`
}

func (r Rule) MarshalJSON() ([]byte, error) {
	// json.Marshal would escape '&', '<' and '>' which are common in url patterns
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(ruleJSON{
		Title:   r.Title,
		Type:    r.Pattern.Type,
		Pattern: r.Pattern.Value,
		Active:  r.Active,
		Include: lo.Ternary(r.Include, "include", "exclude"),
	})
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), err
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	var raw ruleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !lo.Contains(PatternTypes, raw.Type) {
		return fmt.Errorf("unknown pattern type: %q", raw.Type)
	}

	var include bool
	switch raw.Include {
	case "include":
		include = true
	case "exclude":
		include = false
	default:
		return fmt.Errorf("unknown include value: %q, expected \"include\" or \"exclude\"", raw.Include)
	}

	*r = NewRule(raw.Title, Pattern{Type: raw.Type, Value: raw.Pattern}, raw.Active, include)
	return nil
}

// WriteJSON writes rules as an indented json array, the way FoxyProxy exports its patterns.
func WriteJSON(w io.Writer, rules []Rule) error {
	if rules == nil {
		rules = []Rule{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rules)
}
