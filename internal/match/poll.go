package match

import (
	"context"
	"errors"
	"maps"
	"time"
)

// startPollingLocked starts the single poll loop for generation. Any earlier
// loop must have been stopped by the caller.
func (c *RemoteController) startPollingLocked(generation uint64) {
	ctx, cancel := context.WithCancel(context.Background())
	c.stopPoll = cancel
	c.polls.Add(1)
	go c.pollLoop(ctx, generation)
}

func (c *RemoteController) stopPollingLocked() {
	if c.stopPoll != nil {
		c.stopPoll()
		c.stopPoll = nil
	}
}

// pollLoop fetches state every pollInterval. The next wait only starts once
// the previous fetch has returned, so fetches never overlap.
func (c *RemoteController) pollLoop(ctx context.Context, generation uint64) {
	defer c.polls.Done()

	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		more, err := c.pollOnce(ctx, generation)
		if !more {
			return
		}
		if err != nil {
			failures++
			if failures >= c.maxPollFailures || errors.Is(err, ErrNotFound) || errors.Is(err, ErrMalformed) {
				c.haltPolling(ctx, generation, err)
				return
			}
		} else {
			failures = 0
		}
		timer.Reset(c.pollInterval)
	}
}

// pollOnce runs one poll cycle. more is false once the loop has nothing left
// to watch.
func (c *RemoteController) pollOnce(ctx context.Context, generation uint64) (more bool, err error) {
	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		return false, nil
	}
	phase := c.phase
	id, matchID := c.participantID, c.matchID
	seq := c.stateSeq
	c.mu.Unlock()

	switch phase {
	case PhaseWaiting:
		return c.pollWaiting(ctx, generation, id)
	case PhaseInProgress:
		return c.pollMatch(ctx, generation, matchID, seq)
	default:
		return false, nil
	}
}

func (c *RemoteController) pollWaiting(ctx context.Context, generation uint64, id string) (bool, error) {
	st, err := c.svc.WaitingStatus(ctx, id)

	c.mu.Lock()
	if generation != c.generation || ctx.Err() != nil {
		c.mu.Unlock()
		return false, nil
	}
	if err != nil {
		c.message = MsgWaitStatus
		c.mu.Unlock()
		c.logger.WarnContext(ctx, "Failed to poll waiting status", "participant.id", id, "error", err)
		return true, err
	}
	if !st.Matched {
		c.mu.Unlock()
		return true, nil
	}

	c.matchID = st.MatchID
	c.players = maps.Clone(st.Players)
	c.waiting = false
	c.message = ""
	c.phase = PhaseInProgress
	seq := c.stateSeq
	c.mu.Unlock()
	c.logger.InfoContext(ctx, "Opponent found", "participant.id", id, "match.id", st.MatchID)

	// Fetch the board right away rather than one interval later.
	return c.pollMatch(ctx, generation, st.MatchID, seq)
}

// pollMatch fetches the match state. seq is the move counter observed when
// the cycle started.
func (c *RemoteController) pollMatch(ctx context.Context, generation uint64, matchID string, seq uint64) (bool, error) {
	st, err := c.svc.Match(ctx, matchID)

	c.mu.Lock()
	if generation != c.generation || ctx.Err() != nil {
		c.mu.Unlock()
		return false, nil
	}
	if err != nil {
		c.message = MsgSync
		c.mu.Unlock()
		c.logger.WarnContext(ctx, "Failed to sync match", "match.id", matchID, "error", err)
		return true, err
	}
	if seq != c.stateSeq {
		// A move result landed while this fetch was in flight.
		c.mu.Unlock()
		return true, nil
	}
	if err := c.checkStateLocked(st); err != nil {
		c.message = MsgSync
		c.mu.Unlock()
		c.logger.WarnContext(ctx, "Failed to sync match", "match.id", matchID, "error", err)
		return true, err
	}
	c.message = ""
	finished := c.adoptLocked(st)
	c.mu.Unlock()

	if finished {
		c.logger.InfoContext(ctx, "Match finished", "match.id", matchID, "match.winner", string(st.Winner))
		c.refreshTally(ctx, generation)
		return false, nil
	}
	return true, nil
}

// haltPolling gives up on the service after unrecoverable or repeated
// failures. A match that may still exist stays on screen; the next accepted
// move resumes polling, and Restart leaves it.
func (c *RemoteController) haltPolling(ctx context.Context, generation uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.message = MsgPollingHalted
	if c.phase == PhaseWaiting || errors.Is(err, ErrNotFound) || errors.Is(err, ErrMalformed) {
		c.waiting = false
		c.phase = PhaseIdle
	}
	c.stopPollingLocked()
	c.logger.ErrorContext(ctx, "Stopped polling match service", "match.id", c.matchID, "error", err)
}
