package mem

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RevocationSweeper drops expired revocations on a cron schedule.
type RevocationSweeper struct {
	cron  *cron.Cron
	store RevokedTokenStore
	log   *zap.Logger
}

func NewRevocationSweeper(spec string, store RevokedTokenStore, log *zap.Logger) (*RevocationSweeper, error) {
	s := &RevocationSweeper{
		cron:  cron.New(),
		store: store,
		log:   log.Named("revocation_sweeper"),
	}
	if _, err := s.cron.AddFunc(spec, func() { s.Sweep() }); err != nil {
		return nil, fmt.Errorf("invalid revocation sweep schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *RevocationSweeper) Sweep() int {
	n := s.store.Sweep()
	if n > 0 {
		s.log.Debug("dropped expired revocations", zap.Int("count", n))
	}
	return n
}

func (s *RevocationSweeper) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *RevocationSweeper) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
