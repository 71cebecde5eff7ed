package internal

import (
	"github.com/nimatrueway/foxyrules/internal/config"
	"github.com/nimatrueway/foxyrules/internal/foxyproxy"
	"github.com/nimatrueway/foxyrules/internal/io/codec"
	"github.com/nimatrueway/foxyrules/internal/io/core"
	"github.com/nimatrueway/foxyrules/internal/parser"
	"github.com/nimatrueway/foxyrules/internal/stream"
	"github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
)

// Convert reads the block list described by cfg.Source, parses it and writes the FoxyProxy
// patterns to cfg.Destination.
func Convert(cfg *config.Struct) error {
	rawSrc, err := stream.OpenSource(cfg.Source.Path, cfg.Source.Timeout)
	if err != nil {
		return tracerr.Wrap(err)
	}
	src := codec.Decode(rawSrc, cfg.Source.Encoding)
	defer src.Close()

	logrus.Debugf("parsing %s source \"%s\" with the %s parser", cfg.Source.Encoding, core.DetermineReaderName(src), cfg.Parser.Type)
	rules, err := parser.New(cfg.Parser.Type, int(cfg.Parser.MaxLineLength)).Parse(src)
	if err != nil {
		return tracerr.Wrap(err)
	}

	rawDst, err := stream.CreateDestination(cfg.Destination.Path, int(cfg.Destination.Buffer))
	if err != nil {
		return tracerr.Wrap(err)
	}
	dst := codec.Encode(rawDst, cfg.Destination.Encoding)

	logrus.Debugf("writing %d rules to %s destination \"%s\"", len(rules), cfg.Destination.Encoding, core.DetermineWriterName(dst))
	if err := foxyproxy.WriteJSON(dst, rules); err != nil {
		_ = dst.Close()
		return tracerr.Wrap(err)
	}
	// flushes the encoder tail and the buffered destination
	if err := dst.Close(); err != nil {
		return tracerr.Wrap(err)
	}

	logrus.Infof("converted %d rules", len(rules))
	return nil
}
