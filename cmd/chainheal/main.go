// Command chainheal finds the chain heal jump sequence that restores the most HP.
//
// Usage:
//
//	chainheal initialRange jumpRange numberOfJumps initialPower powerReduction [records...] < participants
//
// Participant records are "x y currentHP maxHP name". They are read one per
// line from stdin, or taken from the trailing arguments in groups of five
// when any are given. One record must carry the caster name.
//
// Output is "<name> <heal>" per jump followed by "Total_Healing <sum>".
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bbible3/chain-heal/internal/chain"
	"github.com/bbible3/chain-heal/internal/config"
	"github.com/bbible3/chain-heal/internal/model"
	"github.com/bbible3/chain-heal/internal/roster"
)

const ConfigPath = "config/chainheal.yaml"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("CHAINHEAL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadChainHeal(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// stdout carries the report only
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	spell, err := chain.ParseSpellConfig(args, cfg.MaxJumps)
	if err != nil {
		return fmt.Errorf("parsing spell: %w", err)
	}
	slog.Info("spell parsed",
		"initial_range", spell.InitialRange,
		"jump_range", spell.JumpRange,
		"jumps", spell.NumberOfJumps,
		"power", spell.InitialPower,
		"reduction", spell.PowerReduction)

	participants, err := readParticipants(args[chain.SpellArgs:], stdin)
	if err != nil {
		return fmt.Errorf("reading participants: %w", err)
	}

	r, err := roster.New(participants, cfg.CasterName)
	if err != nil {
		return fmt.Errorf("building roster: %w", err)
	}

	res := chain.Cast(spell, r.Caster, r.Participants)
	slog.Info("chain found", "participants", len(r.Participants), "path", res.Names(), "total", res.Total)

	if err := chain.WriteReport(stdout, res, cfg.TotalLabel); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// readParticipants prefers trailing argument tokens over stdin.
func readParticipants(tokens []string, stdin io.Reader) ([]*model.Participant, error) {
	if len(tokens) > 0 {
		return roster.ParseTokens(tokens)
	}
	return roster.ReadLines(stdin)
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
