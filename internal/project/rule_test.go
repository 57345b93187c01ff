package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleValidate(t *testing.T) {
	ok := Rule{Kind: "rust", Markers: []string{"Cargo.toml"}, Targets: []TargetSpec{{Path: "target"}}}
	assert.NoError(t, ok.Validate())

	bad := map[string]Rule{
		"no kind":         {Markers: []string{"x"}},
		"no markers":      {Kind: "k"},
		"nested marker":   {Kind: "k", Markers: []string{"a/b"}},
		"bad match mode":  {Kind: "k", Markers: []string{"x"}, Match: "most"},
		"absolute target": {Kind: "k", Markers: []string{"x"}, Targets: []TargetSpec{{Path: "/etc"}}},
		"escaping target": {Kind: "k", Markers: []string{"x"}, Targets: []TargetSpec{{Path: "../sibling"}}},
		"root target":     {Kind: "k", Markers: []string{"x"}, Targets: []TargetSpec{{Path: "."}}},
	}
	for name, r := range bad {
		assert.Error(t, r.Validate(), name)
	}
}

func TestMatchName(t *testing.T) {
	cases := []struct {
		pattern, name string
		want          bool
	}{
		{"Cargo.toml", "Cargo.toml", true},
		{"Cargo.toml", "cargo.toml", false},
		{"Cargo.toml", "CargoXtoml", false},
		{".*", ".git", true},
		{".*", "git", false},
		{"*.csproj", "App.csproj", true},
		{"*.csproj", "App.csprojx", false},
		{"*.egg-info", "pkg.egg-info", true},
		{"node_modules", "node_modules", true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MatchName(c.pattern, c.name), "%q vs %q", c.pattern, c.name)
	}
	assert.True(t, MatchAnyPattern([]string{"vendor", ".*"}, ".cache"))
	assert.False(t, MatchAnyPattern(nil, "anything"))
}
