package renderer

import (
	"fmt"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	TaskID     int            // For deterministic result ordering
	PixelStats [][]PixelStats // Shared stats array; tiles own disjoint ranges
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	Samples  int
	Scrubbed int
	Err      error
}

// renderTileFunc renders one task into its slice of the shared stats array
type renderTileFunc func(task TileTask) (samples, scrubbed int)

// WorkerPool manages parallel tile rendering. Workers share the immutable
// scene and write only to their task's disjoint pixel range; the result
// channel join is the sole cross-goroutine coordination point.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	render      renderTileFunc
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative means one worker per CPU.
func NewWorkerPool(numWorkers, maxTiles int, render renderTileFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop shuts down the pool after all submitted tasks are done
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit submits a tile task to the worker pool
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Result retrieves a completed tile result
func (wp *WorkerPool) Result() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- wp.renderTask(task)
	}
}

// renderTask renders one tile, converting a worker panic into a task error
// so a failed tile fails the render explicitly instead of crashing the
// process or silently corrupting output. Other tiles' pixels stay valid.
func (wp *WorkerPool) renderTask(task TileTask) (result TileResult) {
	result.TaskID = task.TaskID

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("tile %d failed: %v", task.TaskID, r)
		}
	}()

	result.Samples, result.Scrubbed = wp.render(task)
	return result
}
