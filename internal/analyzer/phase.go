// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package analyzer

// Phase is a stage of an analysis run. Phases advance strictly in order.
type Phase int32

const (
	Idle Phase = iota
	Walking
	Parsing
	Resolving
	Classifying
	Summarizing
	Done
)

var phaseNames = [...]string{
	Idle:        "idle",
	Walking:     "walking",
	Parsing:     "parsing",
	Resolving:   "resolving",
	Classifying: "classifying",
	Summarizing: "summarizing",
	Done:        "done",
}

func (p Phase) String() string {
	if p < Idle || p > Done {
		return "unknown"
	}
	return phaseNames[p]
}

// Observer is notified each time a run enters a new phase. It is called on
// the goroutine running Analyze.
type Observer func(Phase)
