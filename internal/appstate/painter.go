package appstate

import (
	"context"
	"sync"
)

// painter draws frames on its own goroutine. Only the newest pending frame
// is kept; stop cancels the frame in flight and waits for the goroutine.
type painter struct {
	ch   chan paintState
	draw func(context.Context, paintState)
	wg   sync.WaitGroup

	mu     sync.Mutex
	cancel context.CancelFunc
}

func startPainter(draw func(context.Context, paintState)) *painter {
	p := &painter{ch: make(chan paintState, 1), draw: draw}
	p.wg.Add(1)
	go p.loop()
	return p
}

func (p *painter) loop() {
	defer p.wg.Done()
	for st := range p.ch {
		ctx, cancel := context.WithCancel(context.Background())
		p.mu.Lock()
		p.cancel = cancel
		p.mu.Unlock()
		p.draw(ctx, st)
		p.mu.Lock()
		p.cancel = nil
		p.mu.Unlock()
		cancel()
	}
}

// request queues st, replacing any frame not yet started. It must be called
// from a single goroutine.
func (p *painter) request(st paintState) {
	select {
	case p.ch <- st:
		return
	default:
	}
	select {
	case <-p.ch:
	default:
	}
	p.ch <- st
}

func (p *painter) stop() {
	select {
	case <-p.ch:
	default:
	}
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	close(p.ch)
	p.wg.Wait()
}
