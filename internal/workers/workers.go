package workers

import "context"

type Workers struct {
	workers []Worker
}

// New groups the given workers into one aggregate. Order is preserved: Enable
// and Close visit the workers in the order they were passed.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Enable(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Enable(ctx)
	}
}

func (w *Workers) Close() {
	for _, worker := range w.workers {
		worker.Close()
	}
}
