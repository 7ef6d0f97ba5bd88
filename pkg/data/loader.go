package data

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var (
	// ErrAllEncodingsFailed is returned when no configured encoding could decode the input.
	ErrAllEncodingsFailed = errors.New("input could not be decoded with any configured encoding")
	ErrUnknownEncoding    = errors.New("unknown text encoding")
	ErrEmptyInput         = errors.New("input has no header row")
)

// DefaultEncodings is tried in order when LoadOptions.Encodings is empty.
var DefaultEncodings = []string{"utf-8", "latin1"}

// DefaultMissingTokens are cell values read as missing.
var DefaultMissingTokens = []string{
	"", "NA", "N/A", "n/a", "NaN", "nan", "-NaN", "-nan", "null", "NULL", "None", "#N/A", "<NA>",
}

// encodingAliases covers spellings the IANA registry does not list.
var encodingAliases = map[string]string{
	"utf8":    "utf-8",
	"latin-1": "latin1",
	"latin_1": "latin1",
}

// DecodeError records a failed decode attempt under one encoding.
type DecodeError struct {
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode as %s: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// LoadOptions controls how a delimited file is read.
type LoadOptions struct {
	// Encodings are tried in order; the first that decodes cleanly wins.
	Encodings []string
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
	// MissingTokens are cell values treated as missing. Nil means DefaultMissingTokens.
	MissingTokens []string
	// Logger is optional.
	Logger *slog.Logger
}

func (o LoadOptions) withDefaults() LoadOptions {
	if len(o.Encodings) == 0 {
		o.Encodings = DefaultEncodings
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.MissingTokens == nil {
		o.MissingTokens = DefaultMissingTokens
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Load reads a delimited file into a Table, classifying each column as numeric or categorical.
func Load(path string, opts LoadOptions) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts = opts.withDefaults()
	t, err := Decode(raw, opts)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("loaded input", "path", path, "encoding", t.Encoding, "rows", t.Rows(), "columns", t.Width())
	return t, nil
}

// Decode parses raw bytes, trying each configured encoding in turn.
// Only decode failures fall through to the next encoding; a malformed record is fatal.
func Decode(raw []byte, opts LoadOptions) (*Table, error) {
	opts = opts.withDefaults()

	var attempts []error
	for _, name := range opts.Encodings {
		text, canonical, err := decodeText(raw, name)
		if errors.Is(err, ErrUnknownEncoding) {
			return nil, err
		}
		if err != nil {
			opts.Logger.Warn("decode failed, trying next encoding", "encoding", name, "error", err)
			attempts = append(attempts, &DecodeError{Encoding: name, Err: err})
			continue
		}

		t, err := parse(text, opts)
		if err != nil {
			return nil, err
		}
		t.Encoding = canonical
		return t, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrAllEncodingsFailed, errors.Join(attempts...))
}

func decodeText(raw []byte, name string) (string, string, error) {
	lookup := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := encodingAliases[lookup]; ok {
		lookup = alias
	}
	enc, err := ianaindex.IANA.Encoding(lookup)
	if err != nil || enc == nil {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		canonical = name
	}

	var tr transform.Transformer = enc.NewDecoder()
	if canonical == "UTF-8" {
		// The UTF-8 decoder substitutes U+FFFD for bad bytes; validate instead.
		tr = encoding.UTF8Validator
	}
	out, _, err := transform.Bytes(tr, raw)
	if err != nil {
		return "", "", err
	}
	out = bytes.TrimPrefix(out, []byte("\ufeff"))
	return string(out), canonical, nil
}

func parse(text string, opts LoadOptions) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = opts.Delimiter
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	headers := uniqueHeaders(records[0])
	rows := records[1:]

	missing := make(map[string]struct{}, len(opts.MissingTokens))
	for _, tok := range opts.MissingTokens {
		missing[tok] = struct{}{}
	}

	t := &Table{index: make(map[string]int, len(headers))}
	for j, name := range headers {
		cells := make([]string, len(rows))
		for i, rec := range rows {
			cells[i] = rec[j]
		}
		if err := t.Append(inferColumn(name, cells, missing)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// uniqueHeaders suffixes repeated names with .1, .2, ...
func uniqueHeaders(raw []string) []string {
	used := make(map[string]bool, len(raw))
	out := make([]string, len(raw))
	for i, h := range raw {
		name := h
		for n := 1; used[name]; n++ {
			name = h + "." + strconv.Itoa(n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// inferColumn makes the column numeric when every non-missing cell parses as a float.
func inferColumn(name string, cells []string, missing map[string]struct{}) *Column {
	null := make([]bool, len(cells))
	nums := make([]float64, len(cells))
	numeric := true
	for i, v := range cells {
		if _, ok := missing[strings.TrimSpace(v)]; ok {
			null[i] = true
			continue
		}
		if !numeric {
			continue
		}
		f, ok := parseNumber(strings.TrimSpace(v))
		if !ok {
			numeric = false
			continue
		}
		// NaN and infinities carry no usable magnitude and count as missing.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			null[i] = true
			continue
		}
		nums[i] = f
	}
	if numeric {
		return NewNumeric(name, nums, null)
	}
	strs := make([]string, len(cells))
	for i, v := range cells {
		if !null[i] {
			strs[i] = v
		}
	}
	return NewCategorical(name, strs, null)
}

// parseNumber parses a plain decimal number. Go literal forms that ParseFloat also
// accepts, digit separators and hexadecimal mantissas, are rejected.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
