// Command gsnetdump decodes a single raw netmsg payload and prints the
// resulting messages as JSON. It is deliberately thin: a harness for
// exercising Decode/DecodeImmutable end to end, not a demo file reader
// (spec §1 excludes the container format).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/hlnet/gsnetmsg"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/message"
)

var (
	flagInput     string
	flagConfig    string
	flagImmutable bool
	flagDedup     bool
	flagMetrics   string
)

var (
	decodedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gsnetdump_messages_decoded_total",
		Help: "Messages decoded, labeled by engine tag.",
	}, []string{"tag"})
	parseErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gsnetdump_parse_errors_total",
		Help: "Payload decode failures.",
	})
)

func main() {
	root := &cobra.Command{
		Use:   "gsnetdump",
		Short: "Decode a GoldSrc netmsg payload and print it as JSON",
		RunE:  run,
	}

	root.Flags().StringVar(&flagInput, "input", "-", "payload file, or - for stdin")
	root.Flags().StringVar(&flagConfig, "config", "", "optional YAML session-priming config")
	root.Flags().BoolVar(&flagImmutable, "immutable", false, "use DecodeImmutable (reject state-mutating messages)")
	root.Flags().BoolVar(&flagDedup, "dedup", false, "skip printing messages whose delta fingerprint repeats the previous one")
	root.Flags().StringVar(&flagMetrics, "metrics", "", "if set, serve Prometheus metrics on this address (e.g. :9090) instead of exiting")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if flagMetrics != "" {
		defer serveMetrics(flagMetrics, logger)
	}

	payload, err := readPayload(flagInput)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	s := gsnetmsg.NewSession()
	if flagConfig != "" {
		cfg, err := loadSessionConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg.apply(s)
	}

	decode := gsnetmsg.Decode
	if flagImmutable {
		decode = gsnetmsg.DecodeImmutable
	}

	msgs, err := decode(payload, s)
	if err != nil {
		parseErrorsTotal.Inc()
		logger.Error("decode failed", "error", err)
		return err
	}

	out := make([]json.RawMessage, 0, len(msgs))
	var prevFingerprint uint64
	var havePrev bool

	for _, m := range msgs {
		decodedTotal.WithLabelValues(fmt.Sprintf("%d", m.Tag())).Inc()

		if flagDedup {
			if fp, ok := deltaFingerprintOf(m); ok {
				if havePrev && fp == prevFingerprint {
					continue
				}
				prevFingerprint = fp
				havePrev = true
			}
		}

		b, err := json.Marshal(jsonEnvelope(m))
		if err != nil {
			return err
		}
		out = append(out, b)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// jsonEnvelope wraps a decoded message with its tag so JSON output names
// the variant, since the Message interface alone doesn't marshal a type
// discriminator.
func jsonEnvelope(m message.Message) map[string]any {
	return map[string]any{
		"tag":     m.Tag(),
		"message": m,
	}
}

// deltaFingerprintOf extracts the delta.Delta carried by messages this
// dumper knows how to fingerprint for --dedup. Messages with no delta
// body (or ones this switch doesn't cover) report ok=false and are never
// skipped.
func deltaFingerprintOf(m message.Message) (uint64, bool) {
	switch v := m.(type) {
	case message.Event:
		return delta.Fingerprint(v.Delta), true
	case message.SpawnStatic:
		return delta.Fingerprint(v.Delta), true
	case message.ClientData:
		return delta.Fingerprint(v.Delta), true
	default:
		return 0, false
	}
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}
