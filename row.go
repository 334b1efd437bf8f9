package pricebook

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Row is one extracted price list entry.
type Row struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Settings carries the tunable bounds of the row heuristic.
type Settings struct {
	MinCode     int
	MaxCode     int
	MaxFraction int
}

func DefaultSettings() Settings {
	return Settings{
		MinCode:     4,
		MaxCode:     8,
		MaxFraction: 2,
	}
}

// Assembler recovers rows from an ordered fragment sequence by shape alone.
// A fragment looking like a part code starts a row, the two fragments after
// it are taken as description and price, and the fourth cell (the lead time
// column of the source layout) is consumed and discarded. The source gives
// no table structure, so this stays a heuristic: codes are alphanumeric
// runs mixing letters and digits, prices are the first decimal token of
// their cell, and anything the shapes do not account for is skipped.
type Assembler struct {
	code  *regexp.Regexp
	price *regexp.Regexp
}

func NewAssembler(s Settings) (*Assembler, error) {
	if s.MinCode <= 0 || s.MaxCode < s.MinCode {
		return nil, fmt.Errorf("assembler: invalid code length bounds %d-%d", s.MinCode, s.MaxCode)
	}
	if s.MaxFraction < 0 {
		return nil, fmt.Errorf("assembler: invalid fraction bound %d", s.MaxFraction)
	}
	code, err := regexp.Compile(fmt.Sprintf(`^[A-Za-z0-9]{%d,%d}$`, s.MinCode, s.MaxCode))
	if err != nil {
		return nil, err
	}
	pattern := `\d{1,3}(?:,\d{3})*`
	if s.MaxFraction > 0 {
		pattern = fmt.Sprintf(`%s(?:\.\d{1,%d})?`, pattern, s.MaxFraction)
	}
	price, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	a := Assembler{
		code:  code,
		price: price,
	}
	return &a, nil
}

type extractState int

const (
	seekingCode extractState = iota
	haveCode
	haveDescription
	extractingPrice
)

// Assemble walks the fragment sequence and returns the accepted rows in the
// order their code fragment first appears. Codes are deduplicated, first
// seen wins. An empty result is a valid outcome, never an error.
func (a *Assembler) Assemble(fragments []string) []Row {
	var (
		rows []Row
		seen = make(map[string]struct{})
		st   = seekingCode
		row  Row
	)
	for i := 0; i < len(fragments); {
		switch st {
		case seekingCode:
			code := strings.TrimSpace(fragments[i])
			if code == "" || !a.isCode(code) {
				i++
				continue
			}
			if i+2 >= len(fragments) {
				// too few fragments left to ever complete a row
				return rows
			}
			row = Row{Code: strings.ToUpper(code)}
			st = haveCode
			i++
		case haveCode:
			row.Description = collapse(fragments[i])
			st = haveDescription
			i++
		case haveDescription:
			st = extractingPrice
		case extractingPrice:
			price, ok := a.firstPrice(fragments[i])
			if !ok {
				// not a price cell after all: drop the candidate and
				// rescan from the fragment right after it
				i--
				st = seekingCode
				continue
			}
			row.Price = price
			if _, ok := seen[row.Code]; !ok {
				seen[row.Code] = struct{}{}
				rows = append(rows, row)
			}
			st = seekingCode
			i += 2 // the price cell and the lead time cell behind it
		}
	}
	return rows
}

func (a *Assembler) isCode(code string) bool {
	if !a.code.MatchString(code) {
		return false
	}
	var letter, digit bool
	for i := 0; i < len(code); i++ {
		letter = letter || isLetter(code[i])
		digit = digit || isDigit(code[i])
	}
	return letter && digit
}

func (a *Assembler) firstPrice(fragment string) (float64, bool) {
	str := a.price.FindString(fragment)
	if str == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(str, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
