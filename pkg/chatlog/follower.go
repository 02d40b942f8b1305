package chatlog

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/nxadm/tail"

	"github.com/chatlog/chatlog-go/pkg/chatlog/message"
)

// followerErrBuffer is the buffer size for the error channel.
// A small buffer prevents error loss during brief moments when the consumer
// is busy processing messages, while keeping memory usage minimal.
const followerErrBuffer = 16

// Follower tails a chat-export file and emits parsed messages as the
// export grows.
type Follower struct {
	cfg  followConfig // internal configuration (immutable after creation)
	path string
	log  *slog.Logger

	mu        sync.Mutex
	closed    bool
	cancel    context.CancelFunc // cancel func to stop the goroutine
	doneCh    chan struct{}      // signals when goroutine has exited
	following bool               // true if Follow() has been called
}

// discardLogger returns a logger that discards all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewFollower creates a Follower for the export file at path.
// The file is not opened until Follow is called.
func NewFollower(path string, opts ...FollowOption) *Follower {
	cfg := applyFollowOptions(opts)

	logger := cfg.logger
	if logger == nil {
		logger = discardLogger
	}

	return &Follower{
		cfg:  *cfg,
		path: path,
		log:  logger,
	}
}

// Follow starts tailing the file and returns channels.
// Starts internal goroutines here.
// When ctx is cancelled, channels are closed automatically.
// Both channels close on ctx.Done() or fatal error.
// Follow can only be called once per Follower instance.
//
// Returns ErrFollowerClosed if the follower has been closed.
// Returns ErrAlreadyFollowing if Follow() has already been called.
func (f *Follower) Follow(ctx context.Context) (<-chan message.Message, <-chan error, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, nil, ErrFollowerClosed
	}
	if f.following {
		return nil, nil, ErrAlreadyFollowing
	}

	location := &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	if f.cfg.fromStart {
		location = &tail.SeekInfo{Offset: 0, Whence: io.SeekStart}
	}

	t, err := tail.TailFile(f.path, tail.Config{
		Follow:    true,
		ReOpen:    f.cfg.reopen,
		MustExist: true,
		Location:  location,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, nil, err
	}

	f.following = true

	// Create cancellable context
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.doneCh = make(chan struct{})

	msgCh := make(chan message.Message)
	errCh := make(chan error, followerErrBuffer)

	go f.run(ctx, t, msgCh, errCh)

	return msgCh, errCh, nil
}

// Close stops the follower and releases resources.
// Safe to call multiple times.
// Blocks until the goroutine has exited.
func (f *Follower) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true

	// Cancel the context to stop the goroutine
	if f.cancel != nil {
		f.cancel()
	}
	doneCh := f.doneCh
	f.mu.Unlock()

	// Wait for goroutine to exit if Follow was called
	if doneCh != nil {
		<-doneCh
	}
	return nil
}

// run is the follower goroutine. It drains the tail line channel, parses
// each line, and forwards filtered messages until the context is cancelled
// or the tail ends.
func (f *Follower) run(ctx context.Context, t *tail.Tail, msgCh chan<- message.Message, errCh chan<- error) {
	defer close(msgCh)
	defer close(errCh)
	defer close(f.doneCh)
	defer func() {
		_ = t.Stop()
		t.Cleanup()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				f.log.Debug("tail error", "path", f.path, "error", line.Err)
				f.sendError(ctx, errCh, line.Err)
				continue
			}
			f.handleLine(ctx, line.Text, msgCh, errCh)
		}
	}
}

// handleLine parses one line and forwards the resulting messages.
func (f *Follower) handleLine(ctx context.Context, line string, msgCh chan<- message.Message, errCh chan<- error) {
	result, err := f.cfg.parser.ParseLine(ctx, line)
	if err != nil {
		f.sendError(ctx, errCh, err)
		return
	}
	if !result.Matched {
		f.log.Debug("unrecognized line skipped", "path", f.path)
		return
	}

	for _, msg := range result.Messages {
		if !f.cfg.filter.allows(msg) {
			continue
		}
		if f.cfg.includeRawLine {
			msg.RawLine = line
		}
		select {
		case msgCh <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// sendError forwards an error without blocking; errors are dropped when the
// buffered channel is full.
func (f *Follower) sendError(_ context.Context, errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
		f.log.Debug("error channel full, dropping error", "error", err)
	}
}
