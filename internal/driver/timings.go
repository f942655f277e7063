package driver

import (
	"encoding/json"
	"fmt"

	"stdsynth/internal/diag"
	"stdsynth/internal/observ"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
	// Namespaces holds per-namespace synthesis time summed over workers,
	// slowest first. It overlaps the synthesize phase.
	Namespaces []observ.PhaseReport `json:"namespaces,omitempty"`
	Metrics    string               `json:"metrics,omitempty"`
}

// appendTimingDiagnostic attaches the JSON timing report to bag as an info
// diagnostic, growing the bag if it is full.
func appendTimingDiagnostic(bag *diag.Bag, payload timingPayload) {
	if bag == nil {
		return
	}
	if payload.Kind == "" {
		payload.Kind = "verify"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	entry := diag.New(diag.SevInfo, diag.ObsTimings, payload.Kind,
		fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)).
		WithNote(string(data))

	if bag.Add(entry) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(entry)
	bag.Merge(overflow)
}
