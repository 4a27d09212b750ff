package model

// Stage is a step of the per-request generation flow:
// idle -> fetching -> extracting -> synthesizing -> done, or failed from any step.
type Stage string

const (
	StageIdle         Stage = "idle"
	StageFetching     Stage = "fetching"
	StageExtracting   Stage = "extracting"
	StageSynthesizing Stage = "synthesizing"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)
