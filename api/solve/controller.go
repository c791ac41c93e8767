package solveapi

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/beka-birhanu/alice-maze/generate"
	"github.com/beka-birhanu/alice-maze/maze"
	"github.com/beka-birhanu/alice-maze/mazefile"
	"github.com/beka-birhanu/alice-maze/render"
	"github.com/beka-birhanu/alice-maze/service/i"
	"github.com/beka-birhanu/alice-maze/solver"
	"github.com/gin-gonic/gin"
)

// SolveController handles maze solving and generation requests.
type SolveController struct {
	solver    i.MazeSolver
	generator i.MazeGenerator
}

// NewSolveController initializes a SolveController.
func NewSolveController(s i.MazeSolver, g i.MazeGenerator) (*SolveController, error) {
	if s == nil || g == nil {
		return nil, errors.New("solve controller needs a solver and a generator")
	}
	return &SolveController{
		solver:    s,
		generator: g,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SolveController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (sc *SolveController) RegisterProtected(route *gin.RouterGroup) {
	solve := route.Group("/solve")
	{
		solve.POST("", sc.solve)
		solve.POST("/image", sc.solveImage)
	}
	route.GET("/mazes/random", sc.randomMaze)
}

// solve handles solve requests.
func (sc *SolveController) solve(ctx *gin.Context) {
	m, ok := bindMaze(ctx)
	if !ok {
		return
	}

	runID, res, err := sc.solver.Solve(m)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error(), "run_id": runID})
		return
	}

	ctx.JSON(http.StatusOK, newSolveResponse(runID, res))
}

// solveImage renders the maze with its solution path, if any.
func (sc *SolveController) solveImage(ctx *gin.Context) {
	m, ok := bindMaze(ctx)
	if !ok {
		return
	}

	runID, res, err := sc.solver.Solve(m)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error(), "run_id": runID})
		return
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, m, res.Path); err != nil {
		if errors.Is(err, render.ErrTooLarge) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "run_id": runID})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering maze"})
		return
	}
	ctx.Header("X-Run-ID", runID.String())
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// randomMaze generates a maze from query parameters.
func (sc *SolveController) randomMaze(ctx *gin.Context) {
	var request RandomMazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cm := generate.ColorModel{RedProb: request.RedProb, YellowProb: request.YellowProb}
	m, err := sc.generator.Generate(request.Rows, request.Cols, request.Seed, cm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, mazefile.NewDocument(m))
}

func bindMaze(ctx *gin.Context) (*maze.Maze, bool) {
	var request mazefile.Document
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	m, err := request.Maze()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return m, true
}

func statusFor(err error) int {
	if errors.Is(err, solver.ErrStepLimit) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
