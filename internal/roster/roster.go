// Package roster reads participant records of the form
//
//	x y currentHP maxHP name
//
// either one per line from a stream or as a flat token list.
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bbible3/chain-heal/internal/model"
)

// RecordFields is the number of tokens in one participant record.
const RecordFields = 5

var (
	ErrMalformedRecord = errors.New("malformed participant record")
	ErrMissingCaster   = errors.New("caster not found")
	ErrNoRecords       = errors.New("no participant records")
)

// Roster is the parsed battlefield: every participant plus the caster.
type Roster struct {
	Participants []*model.Participant
	Caster       *model.Participant
}

// ParseRecord converts the five fields of one record into a Participant.
func ParseRecord(fields []string) (*model.Participant, error) {
	if len(fields) != RecordFields {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), RecordFields)
	}

	x, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: x %q", ErrMalformedRecord, fields[0])
	}
	y, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: y %q", ErrMalformedRecord, fields[1])
	}
	cur, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: current HP %q", ErrMalformedRecord, fields[2])
	}
	maxHP, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: max HP %q", ErrMalformedRecord, fields[3])
	}

	return model.NewParticipant(fields[4], int32(x), int32(y), cur, maxHP), nil
}

// ReadLines reads one record per line from r. Blank lines are skipped;
// errors carry the 1-based line number.
func ReadLines(r io.Reader) ([]*model.Participant, error) {
	var out []*model.Participant

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		p, err := ParseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading participants: %w", err)
	}

	return out, nil
}

// ParseTokens consumes tokens in groups of RecordFields.
// Errors carry the 1-based record index.
func ParseTokens(tokens []string) ([]*model.Participant, error) {
	if len(tokens)%RecordFields != 0 {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrMalformedRecord, len(tokens)%RecordFields)
	}

	out := make([]*model.Participant, 0, len(tokens)/RecordFields)
	for i := 0; i < len(tokens); i += RecordFields {
		p, err := ParseRecord(tokens[i : i+RecordFields])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i/RecordFields+1, err)
		}
		out = append(out, p)
	}

	return out, nil
}

// New locates the caster by name. The first matching record wins.
func New(participants []*model.Participant, casterName string) (*Roster, error) {
	if len(participants) == 0 {
		return nil, ErrNoRecords
	}
	for _, p := range participants {
		if p.Name == casterName {
			return &Roster{Participants: participants, Caster: p}, nil
		}
	}
	return nil, fmt.Errorf("%w: no record named %s", ErrMissingCaster, casterName)
}
