package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/optimisticbyte/sms-expense-engine/internal/api"
	"github.com/optimisticbyte/sms-expense-engine/internal/models"
	"github.com/optimisticbyte/sms-expense-engine/internal/parser"
	"github.com/optimisticbyte/sms-expense-engine/internal/writer"
)

const version = "1.0.0"

func main() {
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of converting files")
	addrFlag := flag.String("addr", ":8080", "Listen address for --serve")
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with new extension)")
	formatFlag := flag.String("format", "csv", "Output format: csv or json")
	headerFlag := flag.Bool("header", true, "Include column header row in CSV output")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `SMS Expense Engine

Extracts expense transactions from Indian bank SMS notifications.
Input files hold one message per line: CSV (sender,timestamp_millis,body)
or JSON lines ({"sender","body","timestampMillis"}).

Usage:
  sms-expense-engine [flags] <messages.csv> [messages2.jsonl ...]
  sms-expense-engine --serve [--addr=:8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Parse an exported inbox and write transactions.csv
  sms-expense-engine inbox.csv

  # JSON output to a chosen path
  sms-expense-engine --format=json --output=out.json inbox.jsonl

  # Run the HTTP API
  sms-expense-engine --serve --addr=:9000
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("sms-expense-engine v%s\n", version)
		os.Exit(0)
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	if *serveFlag {
		app := api.NewApp(log)
		log.Info().Str("addr", *addrFlag).Msg("starting HTTP API")
		if err := app.Listen(*addrFlag); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	if *formatFlag != "csv" && *formatFlag != "json" {
		log.Fatal().Str("format", *formatFlag).Msg("unknown output format, want csv or json")
	}

	eng := parser.New().WithLogger(log)

	for _, inputPath := range flag.Args() {
		if err := processFile(eng, log, inputPath, *outputFlag, *formatFlag, *headerFlag); err != nil {
			log.Fatal().Err(err).Str("input", inputPath).Msg("processing failed")
		}
	}
}

func processFile(eng *parser.Parser, log zerolog.Logger, inputPath, outputPath, format string, includeHeader bool) error {
	messages, err := readMessages(inputPath)
	if err != nil {
		return fmt.Errorf("reading messages: %w", err)
	}

	var txns []models.Transaction
	rejected := map[string]int{}
	for _, msg := range messages {
		res := eng.ParseMessage(msg)
		if res.Rejected() {
			rejected[string(res.Reason)]++
			continue
		}
		txns = append(txns, *res.Transaction)
	}

	log.Info().
		Str("input", inputPath).
		Int("messages", len(messages)).
		Int("parsed", len(txns)).
		Interface("rejected", rejected).
		Msg("parsed message file")

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + ".transactions." + format
	}

	switch format {
	case "json":
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %q: %w", outPath, err)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(txns); err != nil {
			return fmt.Errorf("JSON write failed: %w", err)
		}
	default:
		w := &writer.CSVWriter{IncludeHeader: includeHeader}
		if err := w.WriteToFile(outPath, txns); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	}

	log.Info().Str("output", outPath).Msg("wrote transactions")
	return nil
}

// readMessages loads a message file. JSON-lines when the extension says
// so, CSV otherwise; a CSV header row is skipped when its timestamp
// column is not numeric.
func readMessages(path string) ([]models.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" || ext == ".jsonl" {
		var messages []models.RawMessage
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var msg models.RawMessage
			if err := json.Unmarshal([]byte(line), &msg); err != nil {
				return nil, fmt.Errorf("bad JSON line: %w", err)
			}
			messages = append(messages, msg)
		}
		return messages, scanner.Err()
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var messages []models.RawMessage
	for i, rec := range records {
		ts, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("row %d: bad timestamp %q", i+1, rec[1])
		}
		messages = append(messages, models.RawMessage{
			Sender:          rec[0],
			TimestampMillis: ts,
			Body:            rec[2],
		})
	}
	return messages, nil
}
