package pubsub

import (
	"context"
	"io"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishMedicationDue(ctx context.Context, event *MedicationDueEvent) error
	io.Closer
}
