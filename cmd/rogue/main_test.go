package main

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		flag    string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"chatty", log.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flagLogLevel = tt.flag
			t.Cleanup(func() { flagLogLevel = "info" })

			got, err := logLevel()
			if (err != nil) != tt.wantErr {
				t.Fatalf("logLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("logLevel() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRootCommands(t *testing.T) {
	want := []string{"play", "serve", "history", "log", "forget", "actors", "config"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("rootCmd.Find(%q) = %v, %v", name, cmd, err)
		}
	}
}
