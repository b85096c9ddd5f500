// Package orchestrator owns the background recommendation jobs: one per
// session, from pending to a terminal state. All coordination between jobs
// and the serving layer goes through the session store.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"mannam/entities"
	"mannam/pkg/course"
	"mannam/pkg/curation"
	"mannam/pkg/session"
	"mannam/pkg/session/repository"
	"mannam/pkg/tour"
)

const (
	msgGenericFailure = "추천 요청 실패"
	msgTimeout        = "추천 요청 시간 초과"
)

// Searcher is the slice of the tour client the fallback path needs.
type Searcher interface {
	Combined(ctx context.Context, keyword, areaCode, sigunguCode string) (*tour.Combined, error)
}

type Options struct {
	// MaxJobs bounds concurrently running jobs. Defaults to 8.
	MaxJobs int
	// Reopen returns a fresh session store; used once per job to still land a
	// terminal state when the primary store connection fails mid-write.
	Reopen func() (repository.SessionRepository, error)
}

type Orchestrator struct {
	store  repository.SessionRepository
	llm    curation.Client
	search Searcher
	opts   Options
	log    zerolog.Logger

	sem    *semaphore.Weighted
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

func New(store repository.SessionRepository, llm curation.Client, search Searcher, opts Options, log zerolog.Logger) *Orchestrator {
	if opts.MaxJobs <= 0 {
		opts.MaxJobs = 8
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		store:  store,
		llm:    llm,
		search: search,
		opts:   opts,
		log:    log.With().Str("component", "orchestrator").Logger(),
		sem:    semaphore.NewWeighted(int64(opts.MaxJobs)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start schedules the background job for a freshly created session.
// Fire-and-forget: errors surface only through the session's terminal state.
func (o *Orchestrator) Start(sessionID, query, areaCode, sigunguCode string) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		o.log.Warn().Str("session_id", sessionID).Msg("start rejected, orchestrator shut down")
		return
	}
	o.wg.Add(1)
	o.mu.Unlock()

	go func() {
		defer o.wg.Done()
		if err := o.sem.Acquire(o.ctx, 1); err != nil {
			o.log.Warn().Err(err).Str("session_id", sessionID).Msg("job never started")
			return
		}
		defer o.sem.Release(1)
		o.run(sessionID, query, areaCode, sigunguCode)
	}()
}

// Shutdown stops intake and drains inflight jobs. When ctx expires first the
// job context is canceled so the remaining provider calls unwind quickly.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		o.cancel()
		return nil
	case <-ctx.Done():
		o.cancel()
		<-done
		return ctx.Err()
	}
}

func (o *Orchestrator) run(sessionID, query, areaCode, sigunguCode string) {
	log := o.log.With().Str("session_id", sessionID).Logger()

	// Claim the session. Losing this CAS means a second job got here first or
	// the session is gone; either way, back off without side effects.
	if err := o.store.Transition(sessionID, session.StatusProcessing, nil, ""); err != nil {
		log.Warn().Err(err).Msg("could not claim session")
		return
	}
	log.Info().Str("query", query).Msg("processing started")

	res, err := o.llm.Curate(o.ctx, query, areaCode, sigunguCode)
	if err != nil {
		log.Warn().Err(err).Msg("curation call failed")
		o.terminal(log, sessionID, session.StatusFailed, nil, curationErrMsg(err))
		return
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = msgGenericFailure
		}
		log.Info().Str("error", msg).Msg("curation reported failure")
		o.terminal(log, sessionID, session.StatusFailed, nil, msg)
		return
	}

	rec := &entities.Recommendation{
		Spots:         res.Spots,
		Course:        res.Course,
		Message:       res.Message,
		SelectedTools: res.SelectedTools,
	}
	if rec.Spots == nil {
		rec.Spots = []entities.Spot{}
	}

	// No pre-ordered course from the provider: build one from the raw search
	// backends. Best effort; a search failure still completes the session
	// with the spot list alone.
	if rec.Course == nil || len(rec.Course.Stops) == 0 {
		if combined, serr := o.search.Combined(o.ctx, query, areaCode, sigunguCode); serr != nil {
			log.Warn().Err(serr).Msg("fallback search failed, completing without course")
			rec.Course = nil
		} else {
			rec.Course = course.Merge(combined.Keyword, combined.Related, query)
		}
	}
	if rec.Message == "" {
		rec.Message = fmt.Sprintf("%d개의 장소를 찾았습니다.", len(rec.Spots))
	}

	o.terminal(log, sessionID, session.StatusCompleted, rec, "")
	log.Info().Int("spots", len(rec.Spots)).Msg("completed")
}

// terminal lands the session in a terminal state. A store-level failure gets
// one retry against a fresh connection so pollers are not stranded in
// processing; if that also fails the session stays stuck (known gap).
func (o *Orchestrator) terminal(log zerolog.Logger, sessionID, target string, rec *entities.Recommendation, errMsg string) {
	err := o.store.Transition(sessionID, target, rec, errMsg)
	if err == nil {
		return
	}
	if errors.Is(err, session.ErrInvalidTransition) || errors.Is(err, session.ErrNotFound) {
		log.Error().Err(err).Str("target", target).Msg("terminal transition rejected")
		return
	}

	log.Warn().Err(err).Str("target", target).Msg("terminal write failed, retrying on fresh store")
	if o.opts.Reopen == nil {
		log.Error().Str("target", target).Msg("no reopen hook, session stuck in processing")
		return
	}
	fresh, rerr := o.opts.Reopen()
	if rerr != nil {
		log.Error().Err(rerr).Msg("reopen failed, session stuck in processing")
		return
	}
	if rerr := fresh.Transition(sessionID, target, rec, errMsg); rerr != nil {
		if target == session.StatusCompleted {
			// Last resort: at least unblock the poller with a failure.
			if ferr := fresh.Transition(sessionID, session.StatusFailed, nil, "결과 저장 실패"); ferr == nil {
				return
			}
		}
		log.Error().Err(rerr).Str("target", target).Msg("session stuck in processing")
	}
}

func curationErrMsg(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}
	return fmt.Sprintf("서버 오류: %v", err)
}
