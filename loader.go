package pickergrid

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Content is loaded, displayable content. Payload is host-defined (for the
// ebiten host an *ebiten.Image).
type Content struct {
	Payload       any
	Width, Height int
	Animated      bool
}

// PlaceholderKind selects how a placeholder silhouette is drawn.
type PlaceholderKind uint8

const (
	PlaceholderShape     PlaceholderKind = iota // generic rounded shape
	PlaceholderThumbnail                        // blurred low-resolution thumbnail
	PlaceholderCell                             // synthetic loading cell of a placeholder group
)

// Placeholder describes the silhouette shown until content is ready.
type Placeholder struct {
	Kind        PlaceholderKind
	Thumbnail   []byte
	AspectRatio float64
}

// PlaceholderFor derives the placeholder of a descriptor.
func PlaceholderFor(desc ContentDescriptor) *Placeholder {
	p := &Placeholder{Kind: PlaceholderShape, AspectRatio: desc.AspectRatio}
	if len(desc.Thumbnail) > 0 {
		p.Kind = PlaceholderThumbnail
		p.Thumbnail = desc.Thumbnail
	}
	return p
}

// LoadRequest is one content load issued for a node binding.
type LoadRequest struct {
	Key        ItemKey
	Generation uint64
	Descriptor ContentDescriptor
	PixelSize  int
}

// LoadResult is the completion of a LoadRequest. Err non-nil is a permanent
// failure; the core never retries.
type LoadResult struct {
	Key        ItemKey
	Generation uint64
	Content    Content
	Err        error
}

// LoadHandle is returned by ContentLoader.Load.
type LoadHandle struct {
	// Placeholder is shown until the load completes. Nil derives one from the
	// descriptor.
	Placeholder *Placeholder
	// Cancel aborts the load. It may be nil and is never required to be
	// called.
	Cancel func()
}

// ContentLoader fetches item content. ready may be invoked from any
// goroutine, at most once, and may be invoked after the requesting node has
// been released; the grid marshals it back onto the update loop and drops it
// if the binding is gone.
type ContentLoader interface {
	Load(req LoadRequest, ready func(LoadResult)) LoadHandle
}

// completionQueue carries load completions from worker goroutines to the
// update loop. It is the only state in the package touched by more than one
// goroutine.
type completionQueue struct {
	mu      sync.Mutex
	pending []LoadResult
}

func (q *completionQueue) post(r LoadResult) {
	q.mu.Lock()
	q.pending = append(q.pending, r)
	q.mu.Unlock()
}

// drain moves all pending completions into dst and returns it.
func (q *completionQueue) drain(dst []LoadResult) []LoadResult {
	q.mu.Lock()
	dst = append(dst, q.pending...)
	clear(q.pending)
	q.pending = q.pending[:0]
	q.mu.Unlock()
	return dst
}

// FetchFunc performs the actual fetch/decode for AsyncLoader. It should
// honor ctx cancellation.
type FetchFunc func(ctx context.Context, desc ContentDescriptor, pixelSize int) (Content, error)

// AsyncLoader is a ContentLoader running FetchFunc on background goroutines
// with at most Workers fetches in flight.
type AsyncLoader struct {
	fetch  FetchFunc
	sem    *semaphore.Weighted
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAsyncLoader creates a loader with the given concurrency. workers < 1
// is treated as 1.
func NewAsyncLoader(fetch FetchFunc, workers int) *AsyncLoader {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AsyncLoader{
		fetch:  fetch,
		sem:    semaphore.NewWeighted(int64(workers)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Load implements ContentLoader. Cancelled loads never call ready.
func (l *AsyncLoader) Load(req LoadRequest, ready func(LoadResult)) LoadHandle {
	ctx, cancel := context.WithCancel(l.ctx)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer l.sem.Release(1)

		content, err := l.fetch(ctx, req.Descriptor, req.PixelSize)
		if ctx.Err() != nil {
			return
		}
		ready(LoadResult{Key: req.Key, Generation: req.Generation, Content: content, Err: err})
	}()
	return LoadHandle{Placeholder: PlaceholderFor(req.Descriptor), Cancel: cancel}
}

// Close cancels every in-flight load and waits for the workers to exit.
func (l *AsyncLoader) Close() {
	l.cancel()
	l.wg.Wait()
}
