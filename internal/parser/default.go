package parser

import (
	"bufio"
	"fmt"
	"github.com/nimatrueway/foxyrules/internal/foxyproxy"
	"github.com/sirupsen/logrus"
	"io"
	"strings"
)

// DefaultParser understands the domain subset of the AdBlock filter syntax used by gfwlist:
//
//	! comment
//	example.com       any subdomain of example.com
//	||example.com     same as above
//	|http://a.com/    the url itself
//	.example.com      subdomains only, example.com itself is excluded
//	@@||example.com   exception, matching urls are excluded
type DefaultParser struct {
	MaxLineLength int
}

func (p *DefaultParser) Parse(src io.Reader) ([]foxyproxy.Rule, error) {
	scanner := bufio.NewScanner(src)
	if p.MaxLineLength > 0 {
		scanner.Buffer(make([]byte, 0, min(p.MaxLineLength, 4096)), p.MaxLineLength)
	}

	var rules []foxyproxy.Rule
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		include := true
		if strings.HasPrefix(line, "@@") {
			line = line[2:]
			include = false
		}

		var pattern string
		switch {
		case strings.HasPrefix(line, "||"):
			pattern = "*://*." + line[2:]
		case strings.HasPrefix(line, "|"):
			pattern = line[1:]
		case strings.HasPrefix(line, "."):
			parentDomain := line[1:]
			rules = append(rules, foxyproxy.NewRule(
				fmt.Sprintf("Exclude Parent Domain[%s]", parentDomain),
				foxyproxy.WildcardPattern("*://"+parentDomain),
				true,
				!include,
			))
			pattern = "*://*" + line
		default:
			pattern = "*://*." + line
		}

		rules = append(rules, foxyproxy.NewRule(
			fmt.Sprintf("Include Pattern[%s]", pattern),
			foxyproxy.WildcardPattern(pattern),
			true,
			include,
		))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d of the source: %w", lineNo+1, err)
	}

	logrus.Debugf("parsed %d lines into %d rules", lineNo, len(rules))
	return rules, nil
}
