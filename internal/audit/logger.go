package audit

import (
	"context"
	"encoding/json"

	"github.com/fieldserve/backoffice/internal/models"
	"github.com/fieldserve/backoffice/internal/store"
)

type Logger struct {
	store store.Store
}

func New(st store.Store) *Logger {
	return &Logger{store: st}
}

func (l *Logger) Log(
	ctx context.Context,
	userID *string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &entry)
}
