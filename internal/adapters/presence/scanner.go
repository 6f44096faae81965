package presence

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"playtrack/internal/domain"
	"playtrack/internal/ports"
)

// Rule maps a process command line pattern to an activity label.
type Rule struct {
	Pattern  string
	Activity string
}

type compiledRule struct {
	pattern  *regexp.Regexp
	activity string
}

// ProcessScanner derives the observation set for a single player from the
// process table of the local machine. Players other than the configured one
// always get an empty set.
type ProcessScanner struct {
	playerID      string
	rules         []compiledRule
	listProcesses func(ctx context.Context) ([]byte, error)
}

// Compile-time interface verification
var _ ports.PresenceSource = (*ProcessScanner)(nil)

// NewProcessScanner creates a scanner that reports activities for playerID
// based on the given rules.
func NewProcessScanner(playerID string, rules []Rule) (*ProcessScanner, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		activity := domain.NormalizeActivity(rule.Activity)
		if activity == "" {
			return nil, fmt.Errorf("rule %q has no activity label", rule.Pattern)
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %q: %w", rule.Pattern, err)
		}

		compiled = append(compiled, compiledRule{pattern: re, activity: activity})
	}

	return &ProcessScanner{
		playerID:      playerID,
		rules:         compiled,
		listProcesses: listProcesses,
	}, nil
}

// Observed scans the process table and returns the activities whose rules
// matched at least one command line.
func (s *ProcessScanner) Observed(ctx context.Context, playerID string) (map[string]struct{}, error) {
	observed := make(map[string]struct{})
	if playerID != s.playerID || len(s.rules) == 0 {
		return observed, nil
	}

	output, err := s.listProcesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, rule := range s.rules {
			if rule.pattern.MatchString(line) {
				observed[rule.activity] = struct{}{}
			}
		}
	}

	return observed, nil
}

func listProcesses(ctx context.Context) ([]byte, error) {
	return exec.CommandContext(ctx, "ps", "-axo", "command=").Output()
}
