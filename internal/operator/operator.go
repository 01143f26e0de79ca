package operator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/track-server/internal/operator/actions"
	"github.com/carson-networks/track-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	id      int
	storage *storage.Storage
	queue   chan ActionItem
	log     *logrus.Logger
}

func NewOperator(id int, s *storage.Storage, queue chan ActionItem, log *logrus.Logger) *Operator {
	return &Operator{
		id:      id,
		storage: s,
		queue:   queue,
		log:     log,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) (err error) {
	// Callers that gave up still hold the slot; skip work nobody waits for.
	if ctxErr := item.ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = writer.Rollback()
			err = fmt.Errorf("action %s panicked: %v", item.action.Name(), r)
			o.log.WithFields(logrus.Fields{
				"operator": o.id,
				"action":   item.action.Name(),
			}).Error(err.Error())
		}
	}()

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rbErr := writer.Rollback(); rbErr != nil {
			o.log.WithFields(logrus.Fields{
				"operator": o.id,
				"action":   item.action.Name(),
				"error":    rbErr.Error(),
			}).Warn("Rollback failed")
		}
		return err
	}

	if err = writer.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", item.action.Name(), err)
	}
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
