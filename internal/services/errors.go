package services

import (
	"go.uber.org/zap"
	"skillsphere/pkg/utils"
)

// storeError logs a persistence failure and hides it behind ErrDatabaseError.
func storeError(log *zap.Logger, op string, err error) error {
	log.Error("store failure", zap.String("op", op), zap.Error(err))
	return utils.ErrDatabaseError
}

// txError normalises what comes out of Store.Transaction: service errors
// raised inside the callback pass through, anything else is a store failure.
func txError(log *zap.Logger, op string, err error) error {
	if err == nil || utils.IsKnownError(err) {
		return err
	}
	return storeError(log, op, err)
}
