package core

import (
	"fmt"
	"io"
	"strings"
)

// Status is the outcome of a single step
type Status int

const (
	StatusSuccess Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Symbol returns the console marker used for the status
func (s Status) Symbol() string {
	switch s {
	case StatusSuccess:
		return "✅"
	case StatusSkipped:
		return "⚠️"
	default:
		return "❌"
	}
}

// Result is what a step reports back to the orchestrator
type Result struct {
	Step   string
	Status Status
	Reason string // Why the step was skipped or failed
	Detail string // Optional extra information on success
}

// Success builds a successful result
func Success(step, detail string) Result {
	return Result{Step: step, Status: StatusSuccess, Detail: detail}
}

// Skipped builds a skipped result
func Skipped(step, reason string) Result {
	return Result{Step: step, Status: StatusSkipped, Reason: reason}
}

// Failed builds a failed result from an error
func Failed(step string, err error) Result {
	reason := "unknown error"
	if err != nil {
		reason = err.Error()
	}
	return Result{Step: step, Status: StatusFailed, Reason: reason}
}

// Report collects step results in run order
type Report struct {
	Results []Result
}

// Add appends a result
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// Count returns how many results have the given status
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Get returns the result recorded for step, if any
func (r *Report) Get(step string) (Result, bool) {
	for _, res := range r.Results {
		if res.Step == step {
			return res, true
		}
	}
	return Result{}, false
}

// Print writes a summary table of all results
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "📋 Summary:")
	for _, res := range r.Results {
		line := fmt.Sprintf("   %s %-10s %s", res.Status.Symbol(), res.Step, res.Status)
		switch {
		case res.Reason != "":
			line += ": " + res.Reason
		case res.Detail != "":
			line += " (" + res.Detail + ")"
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
