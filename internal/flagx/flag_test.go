package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "data", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "data"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-d", "-v"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: []string{"-z"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()

	os.Args = []string{"tracker", "-c", "conf.json", "-d", "data"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"tracker", "-config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"tracker"}
	require.Equal(t, "", JsonConfigFlags())
}
