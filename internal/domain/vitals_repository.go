package domain

import "context"

type VitalsRepository interface {
	Save(ctx context.Context, vitals *VitalSigns) error
	FindAll(ctx context.Context) ([]*VitalSigns, error)
	FindLatest(ctx context.Context) (*VitalSigns, error)
	Delete(ctx context.Context, id VitalsID) error
}
