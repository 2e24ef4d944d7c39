package solver

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	lock "github.com/square/mongo-lock"

	"github.com/oceanlink/oceanlink-settler/app"
	"github.com/oceanlink/oceanlink-settler/eth/util"
	"github.com/oceanlink/oceanlink-settler/ledger"
	"github.com/oceanlink/oceanlink-settler/metrics"
	"github.com/oceanlink/oceanlink-settler/models"
)

const (
	SolverName = "SOLVER"

	LockResource = "locks/solver"
)

type SolverRunner struct {
	ledger           ledger.Ledger
	locker           app.Locker
	verifySignatures bool
	now              func() time.Time
}

func (x *SolverRunner) Run() {
	start := time.Now()
	defer func() {
		metrics.CycleDuration.WithLabelValues(SolverName).Observe(time.Since(start).Seconds())
	}()

	lockId, err := x.locker.XLock(LockResource)
	if err != nil {
		if errors.Is(err, lock.ErrAlreadyLocked) {
			metrics.LockContention.WithLabelValues(SolverName).Inc()
			log.Info("[SOLVER] Another solver holds the lock, skipping cycle")
			return
		}
		log.WithError(err).Error("[SOLVER] Error while locking solver")
		return
	}
	defer func() {
		if err := x.locker.Unlock(lockId); err != nil {
			log.WithError(err).Error("[SOLVER] Error while unlocking solver")
		}
	}()

	created, err := x.Solve()
	if err != nil {
		log.WithError(err).Error("[SOLVER] Cycle abandoned")
		return
	}
	log.Info("[SOLVER] Proposed ", created, " plans")
}

func (x *SolverRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

// candidates drops intents that may not be matched right now. They stay
// PENDING and are looked at again next cycle.
func (x *SolverRunner) candidates(intents []models.Intent) []models.Intent {
	now := x.now()
	var matchable []models.Intent
	for _, intent := range intents {
		logger := log.WithField("intent_id", intent.HexId())

		if err := intent.Validate(now); err != nil {
			reason := "invalid"
			switch {
			case errors.Is(err, models.ErrIntentExpired):
				reason = "expired"
			case errors.Is(err, models.ErrSameChain):
				reason = "same_chain"
			case errors.Is(err, models.ErrZeroAmount):
				reason = "zero_amount"
			case errors.Is(err, models.ErrInvalidAddress):
				reason = "address"
			}
			metrics.IntentsSkipped.WithLabelValues(reason).Inc()
			logger.WithError(err).Debug("[SOLVER] Skipping intent")
			continue
		}

		if x.verifySignatures {
			if err := util.VerifyIntentSignature(intent); err != nil {
				metrics.IntentsSkipped.WithLabelValues("signature").Inc()
				logger.WithError(err).Warn("[SOLVER] Skipping intent with bad signature")
				continue
			}
		}

		matchable = append(matchable, intent)
	}
	return matchable
}

// Solve runs one netting pass over the current PENDING intents and returns
// the number of plans it created.
func (x *SolverRunner) Solve() (int, error) {
	pending, err := x.ledger.FindPendingIntents()
	if err != nil {
		return 0, err
	}

	intents := x.candidates(pending)
	if len(intents) < 2 {
		log.Debug("[SOLVER] Not enough intents to net: ", len(intents))
		return 0, nil
	}

	created := 0
	for _, proposal := range Net(intents) {
		plan := models.ExecutionPlan{
			Id:                uuid.NewString(),
			Transfers:         proposal.Transfers,
			InvolvedIntentIds: proposal.InvolvedIntentIds,
			Status:            models.PlanStatusProposed,
			CreatedAt:         x.now(),
			UpdatedAt:         x.now(),
		}

		logger := log.WithField("plan_id", plan.Id).
			WithField("src_chain_id", proposal.SrcChainID).
			WithField("dst_chain_id", proposal.DstChainID)

		if err := x.ledger.CreatePlan(plan); err != nil {
			if errors.Is(err, ledger.ErrConflict) {
				logger.WithError(err).Warn("[SOLVER] Intents changed under the plan, dropping it")
				continue
			}
			return created, err
		}

		created++
		metrics.PlansProposed.Inc()
		metrics.IntentsMatched.Add(float64(len(plan.InvolvedIntentIds)))
		for _, transfer := range plan.Transfers {
			metrics.AddVolume(transfer.ChainID, transfer.Amount)
		}
		logger.WithField("transfers", len(plan.Transfers)).
			WithField("intents", len(plan.InvolvedIntentIds)).
			Info("[SOLVER] Proposed plan")
	}
	return created, nil
}

func NewSolver(l ledger.Ledger, locker app.Locker, config models.SolverConfig) *SolverRunner {
	return &SolverRunner{
		ledger:           l,
		locker:           locker,
		verifySignatures: config.VerifySignatures,
		now:              time.Now,
	}
}
