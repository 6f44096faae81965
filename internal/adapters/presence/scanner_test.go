package presence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessScanner_InvalidPattern(t *testing.T) {
	_, err := NewProcessScanner("host", []Rule{
		{Pattern: "(", Activity: "Broken"},
	})

	assert.ErrorContains(t, err, "failed to compile rule")
}

func TestNewProcessScanner_MissingActivity(t *testing.T) {
	_, err := NewProcessScanner("host", []Rule{
		{Pattern: "minecraft", Activity: "   "},
	})

	assert.ErrorContains(t, err, "has no activity label")
}

func TestProcessScanner_Observed(t *testing.T) {
	tests := []struct {
		name   string
		rules  []Rule
		output string
		want   map[string]struct{}
	}{
		{
			name: "matches command lines against rules",
			rules: []Rule{
				{Pattern: "minecraft", Activity: "Minecraft"},
				{Pattern: `(?i)zelda`, Activity: "Zelda"},
			},
			output: "/usr/bin/java -jar minecraft_server.jar\n" +
				"/opt/games/Zelda.exe --fullscreen\n" +
				"/usr/sbin/sshd -D\n",
			want: map[string]struct{}{"Minecraft": {}, "Zelda": {}},
		},
		{
			name: "no matches",
			rules: []Rule{
				{Pattern: "minecraft", Activity: "Minecraft"},
			},
			output: "/usr/sbin/sshd -D\n/usr/bin/top\n",
			want:   map[string]struct{}{},
		},
		{
			name: "multiple rules for one activity report it once",
			rules: []Rule{
				{Pattern: "minecraft_server", Activity: "Minecraft"},
				{Pattern: "minecraft_client", Activity: "Minecraft"},
			},
			output: "minecraft_server\nminecraft_client\n",
			want:   map[string]struct{}{"Minecraft": {}},
		},
		{
			name: "blank lines are skipped",
			rules: []Rule{
				{Pattern: "^$", Activity: "Nothing"},
			},
			output: "\n\n   \n",
			want:   map[string]struct{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner, err := NewProcessScanner("host", tt.rules)
			require.NoError(t, err)
			scanner.listProcesses = func(_ context.Context) ([]byte, error) {
				return []byte(tt.output), nil
			}

			observed, err := scanner.Observed(context.Background(), "host")

			require.NoError(t, err)
			assert.Equal(t, tt.want, observed)
		})
	}
}

func TestProcessScanner_ObservedOtherPlayer(t *testing.T) {
	scanner, err := NewProcessScanner("host", []Rule{
		{Pattern: "minecraft", Activity: "Minecraft"},
	})
	require.NoError(t, err)

	called := false
	scanner.listProcesses = func(_ context.Context) ([]byte, error) {
		called = true
		return []byte("minecraft_server\n"), nil
	}

	observed, err := scanner.Observed(context.Background(), "guest")

	require.NoError(t, err)
	assert.Empty(t, observed)
	assert.False(t, called)
}

func TestProcessScanner_ObservedListError(t *testing.T) {
	scanner, err := NewProcessScanner("host", []Rule{
		{Pattern: "minecraft", Activity: "Minecraft"},
	})
	require.NoError(t, err)

	scanner.listProcesses = func(_ context.Context) ([]byte, error) {
		return nil, assert.AnError
	}

	_, err = scanner.Observed(context.Background(), "host")

	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "failed to list processes")
}

func TestProcessScanner_ObservedNoRules(t *testing.T) {
	scanner, err := NewProcessScanner("host", nil)
	require.NoError(t, err)

	called := false
	scanner.listProcesses = func(_ context.Context) ([]byte, error) {
		called = true
		return nil, nil
	}

	observed, err := scanner.Observed(context.Background(), "host")

	require.NoError(t, err)
	assert.Empty(t, observed)
	assert.False(t, called)
}
