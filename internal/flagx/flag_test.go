package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	client := []string{"a", "t", "s", "l"}

	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "separate values",
			args:  []string{"-a", "https://api.shop.example", "-t", "20", "-c", "cfg.json"},
			names: client,
			want:  []string{"-a", "https://api.shop.example", "-t", "20"},
		},
		{
			name:  "equals form",
			args:  []string{"-l=ar", "-s=/tmp/s.db", "-x=1"},
			names: client,
			want:  []string{"-l=ar", "-s=/tmp/s.db"},
		},
		{
			name:  "double dash matches too",
			args:  []string{"--config", "cfg.json", "--config=other.json"},
			names: []string{"c", "config"},
			want:  []string{"--config", "cfg.json", "--config=other.json"},
		},
		{
			name:  "names may be given with dashes",
			args:  []string{"-c", "cfg.json"},
			names: []string{"-c"},
			want:  []string{"-c", "cfg.json"},
		},
		{
			name:  "flag value never starts with a dash",
			args:  []string{"-a", "-t", "5"},
			names: client,
			want:  []string{"-a", "-t", "5"},
		},
		{
			name:  "flag at the end keeps no value",
			args:  []string{"-s"},
			names: client,
			want:  []string{"-s"},
		},
		{
			name:  "positionals and lone dash skipped",
			args:  []string{"shop", "-", "-l", "en", "extra"},
			names: client,
			want:  []string{"-l", "en"},
		},
		{
			name:  "stops at terminator",
			args:  []string{"-l", "en", "--", "-a", "http://ignored"},
			names: client,
			want:  []string{"-l", "en"},
		},
		{
			name:  "repeats kept in order",
			args:  []string{"-a", "http://one", "-a", "http://two"},
			names: client,
			want:  []string{"-a", "http://one", "-a", "http://two"},
		},
		{
			name:  "nothing allowed",
			args:  []string{"-x", "1", "--y=2"},
			names: client,
			want:  []string{},
		},
		{
			name:  "empty args",
			args:  nil,
			names: client,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FilterArgs(tt.args, tt.names)); diff != "" {
				t.Errorf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/gownshop/short.json"}, want: "/etc/gownshop/short.json"},
		{name: "long", args: []string{"-config", "/etc/gownshop/long.json"}, want: "/etc/gownshop/long.json"},
		{name: "double dash", args: []string{"--config", "/etc/gownshop/dd.json"}, want: "/etc/gownshop/dd.json"},
		{name: "equals form", args: []string{"-config=/tmp/eq.json", "-a", "http://api"}, want: "/tmp/eq.json"},
		{name: "absent", args: []string{"-a", "http://api", "-t", "5"}, want: ""},
		{name: "last wins", args: []string{"-c", "/a.json", "-config", "/b.json"}, want: "/b.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigPath(tt.args))
		})
	}
}

func TestJsonConfigFlags_ReadsProcessArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"gownshop", "-s", "session.db", "-c", "/path/cfg.json"}
	assert.Equal(t, "/path/cfg.json", JsonConfigFlags())

	os.Args = []string{"gownshop"}
	assert.Empty(t, JsonConfigFlags())
}
