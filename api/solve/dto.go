// Package solveapi exposes maze solving over HTTP.
package solveapi

import (
	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/beka-birhanu/alice-maze/solver"
	"github.com/google/uuid"
)

// SolveResponse represents the outcome of a solve request.
type SolveResponse struct {
	RunID     uuid.UUID `json:"run_id"`
	Solved    bool      `json:"solved"`
	Length    int       `json:"length"`
	Path      [][2]int  `json:"path"`
	Expanded  int       `json:"expanded"`
	StepSizes []int     `json:"step_sizes"`
}

// RandomMazeRequest represents the query of a random maze request.
type RandomMazeRequest struct {
	Rows       int     `form:"rows" binding:"required,min=1,max=64"`
	Cols       int     `form:"cols" binding:"required,min=1,max=64"`
	Seed       int64   `form:"seed"`
	RedProb    float32 `form:"red" binding:"min=0,max=1"`
	YellowProb float32 `form:"yellow" binding:"min=0,max=1"`
}

func newSolveResponse(runID uuid.UUID, res solver.Result) *SolveResponse {
	return &SolveResponse{
		RunID:     runID,
		Solved:    res.Solved,
		Length:    res.Length,
		Path:      pairs(res.Path),
		Expanded:  res.Expanded,
		StepSizes: res.StepSizes,
	}
}

func pairs(path []maze.Position) [][2]int {
	out := make([][2]int, len(path))
	for i, p := range path {
		out[i] = [2]int{p.Row, p.Col}
	}
	return out
}
