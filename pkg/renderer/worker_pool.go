package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// renderRows distributes pixel rows across a pool of workers. Every row gets
// its own random generator seeded from the base seed plus the row index, so
// the rendered image is identical for a fixed seed no matter how the rows are
// scheduled across workers.
func (rt *Renderer) renderRows(sc Scene, camera *Camera) {
	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, rt.height)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				random := rand.New(rand.NewSource(rt.config.Seed + int64(y)))
				rt.renderRow(sc, camera, y, random)
			}
		}()
	}

	for y := 0; y < rt.height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}
