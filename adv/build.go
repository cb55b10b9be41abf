package adv

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/HubbellCorp/SweetBlue-sub005/byteutil"
	"github.com/HubbellCorp/SweetBlue-sub005/uuid"
)

// A BuildOption configures Build.
type BuildOption func(*builder) error

type builder struct {
	strict bool
	maxLen int
}

// OptStrictUUIDWidth makes Build fail with ErrNotShortenable instead of
// writing a UUID at a width it cannot be shortened to, and with
// ErrFieldTooLong instead of cutting an oversized field short.
func OptStrictUUIDWidth() BuildOption {
	return func(b *builder) error {
		b.strict = true
		return nil
	}
}

// OptMaxLength makes Build fail with ErrEIRPacketTooLong if the packet is
// longer than n bytes. MaxEIRPacketLength is the legacy advertising limit.
func OptMaxLength(n int) BuildOption {
	return func(b *builder) error {
		if n <= 0 {
			return errors.Errorf("invalid max length %d", n)
		}
		b.maxLen = n
		return nil
	}
}

// Build writes r as advertising data. Fields are written in a fixed order:
// flags, service UUIDs and service data, local name, TX power, then each
// manufacturer data entry.
func Build(r *ScanRecord, opts ...BuildOption) ([]byte, error) {
	b := &builder{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return build(r, b)
}

func build(r *ScanRecord, b *builder) ([]byte, error) {
	if r.IsNull() {
		return nil, nil
	}
	p := Packet{}

	if f, ok := r.Flags(); ok {
		p = p.AppendFlags(f)
	}

	var err error
	if p, err = b.appendServices(p, r); err != nil {
		return nil, err
	}

	if n := r.Name(); n != "" {
		if err := b.check(CompleteName, len(n)); err != nil {
			return nil, err
		}
		p = p.AppendName(n, r.IsShortName())
	}

	if pwr, ok := r.TxPower(); ok {
		p = p.AppendTxPower(pwr)
	}

	for _, m := range r.mfg {
		if err := b.check(ManufacturerData, 2+len(m.Data)); err != nil {
			return nil, err
		}
		p = p.AppendManufacturerData(m.ID, m.Data)
	}

	if b.maxLen > 0 && p.Len() > b.maxLen {
		return nil, errors.Wrapf(ErrEIRPacketTooLong, "%d bytes, max %d", p.Len(), b.maxLen)
	}
	return p, nil
}

// appendServices writes one field per distinct service UUID, in the order
// added, then one 16-bit service data field per service data entry, ordered
// by UUID. A service data key with no data and no matching service UUID is
// written as a 16-bit service UUID.
func (b *builder) appendServices(p Packet, r *ScanRecord) (Packet, error) {
	type key struct {
		u uuid.UUID
		w uuid.Width
	}
	seen := make(map[key]bool)
	listed := make(map[uuid.UUID]bool)
	for _, s := range r.uuids {
		k := key{s.UUID, s.Width}
		if seen[k] {
			continue
		}
		seen[k], listed[s.UUID] = true, true
		if err := b.checkWidth(s.UUID, s.Width); err != nil {
			return nil, err
		}
		p = p.AppendUUID(s.UUID, s.Width, r.complete)
	}

	keys := make([]uuid.UUID, 0, len(r.svcData))
	for u := range r.svcData {
		keys = append(keys, u)
	}
	sort.Slice(keys, func(i, j int) bool {
		return byteutil.Compare(keys[i][:], keys[j][:], len(keys[i])) < 0
	})
	for _, u := range keys {
		d := r.svcData[u]
		switch {
		case len(d) == 0 && u == uuid.Nil:
			continue
		case len(d) == 0:
			if listed[u] {
				continue
			}
			if err := b.checkWidth(u, uuid.Short); err != nil {
				return nil, err
			}
			p = p.AppendUUID(u, uuid.Short, r.complete)
			continue
		case u == uuid.Nil:
			if err := b.check(ServiceData16, len(d)); err != nil {
				return nil, err
			}
		default:
			if err := b.checkWidth(u, uuid.Short); err != nil {
				return nil, err
			}
			if err := b.check(ServiceData16, uuid.Short.Len()+len(d)); err != nil {
				return nil, err
			}
		}
		p = p.AppendServiceData(u, d)
	}
	return p, nil
}

// check reports, in strict mode, a field payload of n bytes that does not
// fit in a single field.
func (b *builder) check(typ byte, n int) error {
	if b.strict && n > MaxFieldLength {
		return errors.Wrapf(ErrFieldTooLong, "%s: %d bytes", TagName(typ), n)
	}
	return nil
}

func (b *builder) checkWidth(u uuid.UUID, w uuid.Width) error {
	if b.strict && !uuid.Shortenable(u, w) {
		return errors.Wrapf(ErrNotShortenable, "%s at %s", u, w)
	}
	return nil
}
