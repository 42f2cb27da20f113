// Package events defines the strongly-typed progress events the packer
// driver emits as it works, and the sinks that consume them. Each event
// kind carries a "type" discriminator in its JSON form so that a single
// SSE/NDJSON stream can carry all five kinds, mirroring the tagged PackEvent
// enum in the source implementation's optimizer module.
package events

import (
	"encoding/json"

	"github.com/91xusir/boxpacker3d/internal/diagnostics"
)

// Event is the common interface every emitted event kind satisfies.
type Event interface {
	// Kind returns the wire-facing discriminator for this event.
	Kind() string
}

// ContainerStarted is emitted once a new container has accepted its first
// item, before the ObjectPlaced event for that item.
type ContainerStarted struct {
	ID         uint64
	Dims       [3]float64
	MaxWeight  float64
	Label      *string
	TemplateID uint64
}

func (ContainerStarted) Kind() string { return "container_started" }

func (e ContainerStarted) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string     `json:"type"`
		ID         uint64     `json:"id"`
		Dims       [3]float64 `json:"dims"`
		MaxWeight  float64    `json:"max_weight"`
		Label      *string    `json:"label"`
		TemplateID uint64     `json:"template_id"`
	}{e.Kind(), e.ID, e.Dims, e.MaxWeight, e.Label, e.TemplateID})
}

// ObjectPlaced is emitted each time an item is successfully accepted into a
// container.
type ObjectPlaced struct {
	ContainerID uint64
	ID          uint64
	Pos         [3]float64
	Weight      float64
	Dims        [3]float64
	TotalWeight float64
}

func (ObjectPlaced) Kind() string { return "object_placed" }

func (e ObjectPlaced) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string     `json:"type"`
		ContainerID uint64     `json:"container_id"`
		ID          uint64     `json:"id"`
		Pos         [3]float64 `json:"pos"`
		Weight      float64    `json:"weight"`
		Dims        [3]float64 `json:"dims"`
		TotalWeight float64    `json:"total_weight"`
	}{e.Kind(), e.ContainerID, e.ID, e.Pos, e.Weight, e.Dims, e.TotalWeight})
}

// ContainerDiagnosticsEvent carries a recomputed diagnostics snapshot for a
// container, always immediately following an ObjectPlaced for that
// container.
type ContainerDiagnosticsEvent struct {
	ContainerID uint64
	Diagnostics diagnostics.ContainerDiagnostics
}

func (ContainerDiagnosticsEvent) Kind() string { return "container_diagnostics" }

func (e ContainerDiagnosticsEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string                           `json:"type"`
		ContainerID uint64                           `json:"container_id"`
		Diagnostics diagnostics.ContainerDiagnostics `json:"diagnostics"`
	}{e.Kind(), e.ContainerID, e.Diagnostics})
}

// ObjectRejected is emitted for each item that could not be placed
// anywhere.
type ObjectRejected struct {
	ID         uint64
	Weight     float64
	Dims       [3]float64
	ReasonCode string
	ReasonText string
}

func (ObjectRejected) Kind() string { return "object_rejected" }

func (e ObjectRejected) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string     `json:"type"`
		ID         uint64     `json:"id"`
		Weight     float64    `json:"weight"`
		Dims       [3]float64 `json:"dims"`
		ReasonCode string     `json:"reason_code"`
		ReasonText string     `json:"reason_text"`
	}{e.Kind(), e.ID, e.Weight, e.Dims, e.ReasonCode, e.ReasonText})
}

// Finished is emitted exactly once, after the last item has been processed.
type Finished struct {
	Containers         int
	Unplaced           int
	DiagnosticsSummary diagnostics.Summary
}

func (Finished) Kind() string { return "finished" }

func (e Finished) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type               string              `json:"type"`
		Containers         int                 `json:"containers"`
		Unplaced           int                 `json:"unplaced"`
		DiagnosticsSummary diagnostics.Summary `json:"diagnostics_summary"`
	}{e.Kind(), e.Containers, e.Unplaced, e.DiagnosticsSummary})
}
