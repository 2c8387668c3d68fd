// Package dispatch decouples the asynchronous HTTP layer from blocking
// database work. Handlers submit typed messages; a fixed pool of workers
// consumes them from a shared FIFO queue, each worker borrowing one pool
// connection for exactly one message and delivering the result through a
// one-shot future.
//
// The worker count is the admission-control knob for database concurrency:
// at most that many operations execute against the store simultaneously,
// regardless of inbound request volume. Excess submissions wait in the queue.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/models"
)

// envelope pairs a submitted message with its result-delivery future.
type envelope struct {
	msg    Message
	future *Future
}

// Dispatcher executes exactly one blocking database operation per message on
// a fixed number of worker goroutines. Each message is handled by exactly one
// worker exactly once; one failed message never affects in-flight or
// subsequent ones.
type Dispatcher struct {
	pool  ConnSource
	posts store.PostRepository
	users store.UserRepository

	queue chan envelope

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewDispatcher constructs the dispatcher and starts its workers.
func NewDispatcher(pool ConnSource, posts store.PostRepository, users store.UserRepository, cfg config.Dispatch, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		pool:   pool,
		posts:  posts,
		users:  users,
		queue:  make(chan envelope, cfg.QueueSize),
		logger: log,
	}

	d.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go d.worker(i)
	}
	log.Info().Int("workers", cfg.Workers).Int("queue_size", cfg.QueueSize).Msg("dispatcher started")

	return d
}

// Submit enqueues msg and returns immediately with a future that resolves
// once a worker completes the corresponding operation. Messages submitted
// after Close resolve with [ErrDispatcherClosed].
func (d *Dispatcher) Submit(msg Message) *Future {
	future := newFuture()

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		future.resolve(nil, ErrDispatcherClosed)
		return future
	}

	d.queue <- envelope{msg: msg, future: future}
	return future
}

// Close stops accepting new messages, drains the queue, and waits for the
// workers to finish their in-flight operations.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info().Msg("dispatcher stopped")
}

// worker consumes the shared queue until it is closed and drained. Taking
// from one shared channel gives FIFO-fair distribution across workers with
// no per-caller stickiness.
func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	for env := range d.queue {
		value, err := d.process(env.msg)
		env.future.resolve(value, err)
	}
}

// process executes one message: checkout a connection, run the operation,
// release. An accepted message always runs to completion; cancellation of the
// submitting request only abandons the wait on the future.
//
// A panic inside an operation is recovered and reported as a query fault so
// that a single poisoned message cannot take a worker down.
func (d *Dispatcher) process(msg Message) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Any("panic", r).Msg("recovered panic in dispatch worker")
			value, err = nil, fmt.Errorf("%w: panic: %v", store.ErrQueryFailed, r)
		}
	}()

	ctx := context.Background()

	conn, err := d.pool.Checkout(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return d.execute(ctx, conn, msg)
}

// execute routes the message to its repository operation. One case per
// variant of the closed message set.
func (d *Dispatcher) execute(ctx context.Context, q store.Querier, msg Message) (any, error) {
	switch m := msg.(type) {
	case FetchPosts:
		return d.posts.FetchAll(ctx, q)
	case FetchPost:
		return d.posts.Fetch(ctx, q, m.PostID)
	case CreatePost:
		return d.posts.Create(ctx, q, m.Title, m.Body)
	case UpdatePost:
		return d.posts.Update(ctx, q, m.PostID, m.Title, m.Body, m.Published)
	case DeletePost:
		return d.posts.Delete(ctx, q, m.PostID)
	case CreateUser:
		return d.users.Create(ctx, q, m.Username, m.PasswordHash)
	case FetchUserByUsername:
		return d.users.FindByUsername(ctx, q, m.Username)
	default:
		return nil, ErrUnknownMessage
	}
}

// Typed wrappers: submit the corresponding message and await its result.
// Handlers use these so the any-typed future stays private to this package.

func (d *Dispatcher) FetchPosts(ctx context.Context) ([]models.Post, error) {
	value, err := d.Submit(FetchPosts{}).Await(ctx)
	if err != nil {
		return nil, err
	}
	posts, ok := value.([]models.Post)
	if !ok {
		return nil, ErrUnexpectedResult
	}
	return posts, nil
}

func (d *Dispatcher) FetchPost(ctx context.Context, postID int64) (models.Post, error) {
	return d.awaitPost(ctx, d.Submit(FetchPost{PostID: postID}))
}

func (d *Dispatcher) CreatePost(ctx context.Context, title, body string) (models.Post, error) {
	return d.awaitPost(ctx, d.Submit(CreatePost{Title: title, Body: body}))
}

func (d *Dispatcher) UpdatePost(ctx context.Context, postID int64, title, body string, published bool) (models.Post, error) {
	return d.awaitPost(ctx, d.Submit(UpdatePost{PostID: postID, Title: title, Body: body, Published: published}))
}

func (d *Dispatcher) DeletePost(ctx context.Context, postID int64) (models.Post, error) {
	return d.awaitPost(ctx, d.Submit(DeletePost{PostID: postID}))
}

func (d *Dispatcher) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	return d.awaitUser(ctx, d.Submit(CreateUser{Username: username, PasswordHash: passwordHash}))
}

func (d *Dispatcher) FetchUserByUsername(ctx context.Context, username string) (models.User, error) {
	return d.awaitUser(ctx, d.Submit(FetchUserByUsername{Username: username}))
}

func (d *Dispatcher) awaitPost(ctx context.Context, future *Future) (models.Post, error) {
	value, err := future.Await(ctx)
	if err != nil {
		return models.Post{}, err
	}
	post, ok := value.(models.Post)
	if !ok {
		return models.Post{}, ErrUnexpectedResult
	}
	return post, nil
}

func (d *Dispatcher) awaitUser(ctx context.Context, future *Future) (models.User, error) {
	value, err := future.Await(ctx)
	if err != nil {
		return models.User{}, err
	}
	user, ok := value.(models.User)
	if !ok {
		return models.User{}, ErrUnexpectedResult
	}
	return user, nil
}
