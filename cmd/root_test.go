package cmd

import "testing"

func TestCommandTree(t *testing.T) {
	want := []string{
		"ask", "catalog", "config", "connect", "idea", "ideate",
		"product", "products", "set", "suggestions", "tabs", "version",
	}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"profile", "debug"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

func TestSubcommandFlags(t *testing.T) {
	tests := []struct {
		cmd  string
		flag string
	}{
		{"catalog", "limit"},
		{"ideate", "type"},
		{"ideate", "images"},
		{"ask", "prompt-modifier"},
	}
	for _, tt := range tests {
		c, _, err := rootCmd.Find([]string{tt.cmd})
		if err != nil {
			t.Fatalf("Find(%q) error = %v", tt.cmd, err)
		}
		if c.Flags().Lookup(tt.flag) == nil {
			t.Errorf("%s: flag %q not registered", tt.cmd, tt.flag)
		}
	}
}
