package goban

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Col    int     `json:"col,omitempty"`
	Row    int     `json:"row,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events across frames for automated
// interaction testing. Attach to a Board via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// navKeyNames maps script key names to navigation keys.
var navKeyNames = map[string]NavKey{
	"up":     NavUp,
	"down":   NavDown,
	"left":   NavLeft,
	"right":  NavRight,
	"select": NavSelect,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached to a Board via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for _, st := range script.Steps {
		if st.Action == "key" {
			if _, ok := navKeyNames[st.Key]; !ok {
				return nil, fmt.Errorf("parse test script: unknown key %q", st.Key)
			}
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the board. The runner's step method
// runs at the start of each Update, before injected input drains.
func (b *Board) SetTestRunner(runner *TestRunner) {
	b.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Board.Update.
func (r *TestRunner) step(b *Board) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		b.InjectClick(st.X, st.Y)
	case "clickCell":
		b.InjectClickCell(Pos(st.Col, st.Row))
	case "hover":
		b.InjectMove(st.X, st.Y)
	case "key":
		b.InjectKey(navKeyNames[st.Key])
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
