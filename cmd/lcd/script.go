package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/grindlemire/go-lcd"
	"github.com/pkg/errors"
)

// step is one event of a replay script.
type step struct {
	Line  int
	Text  string
	Event lcd.Event
}

// parseScript reads an event script. Each non-blank line is one of
//
//	press <id>           button pressed
//	release <id>         button released
//	wait <duration>      advance the clock, e.g. "wait 800ms"
//	touch <x> <y>        finger down at a point
//	lift <x> <y>         finger up
//	drag <dx> <dy>       finger moved while down
//	drop <dx> <dy>       last movement before the finger lifts
//
// Text after '#' is a comment. Button events are stamped with a clock that
// starts at start and only moves on wait.
func parseScript(r io.Reader, start time.Time) ([]step, error) {
	var steps []step
	now := start

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		verb, args := fields[0], fields[1:]
		if verb == "wait" {
			if len(args) != 1 {
				return nil, errors.Errorf("line %d: wait takes one duration", line)
			}
			d, err := time.ParseDuration(args[0])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			if d < 0 {
				return nil, errors.Errorf("line %d: wait cannot go back in time", line)
			}
			now = now.Add(d)
			continue
		}

		ev, err := parseEvent(verb, args, now)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		steps = append(steps, step{Line: line, Text: text, Event: ev})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	return steps, nil
}

func parseEvent(verb string, args []string, now time.Time) (lcd.Event, error) {
	var want int
	switch verb {
	case "press", "release":
		want = 1
	case "touch", "lift", "drag", "drop":
		want = 2
	default:
		return nil, errors.Errorf("unknown event %q", verb)
	}
	if len(args) != want {
		return nil, errors.Errorf("%s takes %d argument(s), got %d", verb, want, len(args))
	}

	nums := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Errorf("%s: %q is not a number", verb, a)
		}
		nums[i] = v
	}

	switch verb {
	case "press":
		return lcd.ButtonEvent{ID: nums[0], Pressed: true, Time: now}, nil
	case "release":
		return lcd.ButtonEvent{ID: nums[0], Pressed: false, Time: now}, nil
	case "touch":
		return lcd.TouchEvent{X: nums[0], Y: nums[1], Pressed: true}, nil
	case "lift":
		return lcd.TouchEvent{X: nums[0], Y: nums[1], Pressed: false}, nil
	case "drag":
		return lcd.DragEvent{DX: nums[0], DY: nums[1], StillDown: true}, nil
	default:
		return lcd.DragEvent{DX: nums[0], DY: nums[1], StillDown: false}, nil
	}
}
