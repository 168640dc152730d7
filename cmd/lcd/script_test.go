package main

import (
	"strings"
	"testing"
	"time"

	"github.com/grindlemire/go-lcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	script := `
# open the menu
press 2
wait 800ms
release 2   # long press

touch 10 20
drag 0 -15
drop 1 -3
lift 11 2
`
	steps, err := parseScript(strings.NewReader(script), start)
	require.NoError(t, err)

	want := []step{
		{Line: 3, Text: "press 2", Event: lcd.ButtonEvent{ID: 2, Pressed: true, Time: start}},
		{Line: 5, Text: "release 2", Event: lcd.ButtonEvent{ID: 2, Time: start.Add(800 * time.Millisecond)}},
		{Line: 7, Text: "touch 10 20", Event: lcd.TouchEvent{X: 10, Y: 20, Pressed: true}},
		{Line: 8, Text: "drag 0 -15", Event: lcd.DragEvent{DY: -15, StillDown: true}},
		{Line: 9, Text: "drop 1 -3", Event: lcd.DragEvent{DX: 1, DY: -3}},
		{Line: 10, Text: "lift 11 2", Event: lcd.TouchEvent{X: 11, Y: 2}},
	}
	assert.Equal(t, want, steps)
}

func TestParseScript_Errors(t *testing.T) {
	type tc struct {
		script string
		want   string
	}

	tests := map[string]tc{
		"unknown verb": {
			script: "press 1\nhover 1 2",
			want:   `line 2: unknown event "hover"`,
		},
		"missing argument": {
			script: "touch 1",
			want:   "touch takes 2 argument(s), got 1",
		},
		"not a number": {
			script: "press two",
			want:   `press: "two" is not a number`,
		},
		"bad duration": {
			script: "wait soon",
			want:   "line 1",
		},
		"negative wait": {
			script: "wait -1s",
			want:   "cannot go back in time",
		},
		"wait arity": {
			script: "wait",
			want:   "wait takes one duration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseScript(strings.NewReader(tt.script), time.Time{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
