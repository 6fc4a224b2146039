package worker_test

import (
	"strconv"
	"testing"

	"github.com/dsa-tracker/backend/internal/worker"
)

func TestPoolRunsAllJobs(t *testing.T) {
	pool := worker.NewPool[int](4, 16)

	for i := 0; i < 10; i++ {
		i := i
		pool.Submit(strconv.Itoa(i), func() int { return i * i })
	}
	pool.Close()

	got := map[string]int{}
	for i := 0; i < 10; i++ {
		res := <-pool.Results()
		got[res.JobID] = res.Output
	}

	for i := 0; i < 10; i++ {
		id := strconv.Itoa(i)
		if got[id] != i*i {
			t.Errorf("job %s: got %d, want %d", id, got[id], i*i)
		}
	}
}
