package ble

import (
	"context"

	"github.com/pkg/errors"

	"github.com/HubbellCorp/SweetBlue-sub005/adv"
)

// A Scanner delivers advertisements received from remote devices.
type Scanner interface {
	// Scan calls h for each advertisement until ctx is done or the source
	// fails. It returns ctx.Err() when stopped by ctx.
	Scan(ctx context.Context, h AdvHandler) error
}

// An Advertiser sends raw advertising data.
type Advertiser interface {
	// Advertise sends data once.
	Advertise(ctx context.Context, data []byte) error
}

// Advertise builds r and sends it through a.
func Advertise(ctx context.Context, a Advertiser, r *adv.ScanRecord, opts ...adv.BuildOption) error {
	if r.IsNull() {
		return errors.New("can't advertise a null record")
	}
	b, err := adv.Build(r, opts...)
	if err != nil {
		return errors.Wrap(err, "can't build advertising data")
	}
	return errors.Wrap(a.Advertise(ctx, b), "can't advertise")
}

// Scan scans with s until ctx is done, passing to h only the advertisements
// accepted by every filter.
func Scan(ctx context.Context, s Scanner, h AdvHandler, ff ...AdvFilter) error {
	return s.Scan(ctx, Filtered(h, ff...))
}
