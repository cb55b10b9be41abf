package adv

import (
	"github.com/HubbellCorp/SweetBlue-sub005/uuid"
)

// Options controls how a peripheral advertises a ScanRecord. It is not part
// of the advertising data itself.
type Options uint8

// Advertising options. They can be OR'd together.
const (
	Connectable    Options = 1 << 0
	IncludeName    Options = 1 << 1
	IncludeTxPower Options = 1 << 2
)

// DefaultOptions are the options of a new ScanRecord.
const DefaultOptions = Connectable | IncludeName

// Has reports whether every bit of o2 is set in o.
func (o Options) Has(o2 Options) bool { return o&o2 == o2 }

// ServiceUUID is a service UUID and the width it is written at.
type ServiceUUID struct {
	UUID  uuid.UUID
	Width uuid.Width
}

// ManufacturerEntry is one manufacturer specific data field. Data may be empty.
type ManufacturerEntry struct {
	ID   uint16
	Data []byte
}

// A ScanRecord is the decoded form of advertising data, and the input used to
// build it. It is not safe for concurrent mutation; once handed to an
// advertiser or delivered to a handler it should be treated as read-only.
type ScanRecord struct {
	flags    byte
	hasFlags bool
	txPower  int8
	hasTx    bool

	uuids    []ServiceUUID
	complete bool
	svcData  map[uuid.UUID][]byte
	mfg      []ManufacturerEntry

	name      string
	shortName bool

	options Options
}

// Null stands for "no advertising data". Parse returns it for a nil buffer.
// Its mutators do nothing.
var Null = &ScanRecord{}

// NewScanRecord returns an empty record with DefaultOptions.
func NewScanRecord() *ScanRecord {
	return &ScanRecord{
		svcData: make(map[uuid.UUID][]byte),
		options: DefaultOptions,
	}
}

// NewServiceRecord returns a record advertising the given services.
// Options default to DefaultOptions when none are given.
func NewServiceRecord(uu []uuid.UUID, opts ...Options) *ScanRecord {
	r := NewScanRecord().AddServiceUUIDs(uu...)
	if len(opts) > 0 {
		r.SetOptions(opts...)
	}
	return r
}

// NewServiceDataRecord returns a record carrying data for service u.
func NewServiceDataRecord(u uuid.UUID, data []byte, opts ...Options) *ScanRecord {
	r := NewScanRecord().AddServiceData(u, data)
	if len(opts) > 0 {
		r.SetOptions(opts...)
	}
	return r
}

// IsNull reports whether r is the Null record. A nil r is also null.
func (r *ScanRecord) IsNull() bool {
	return r == nil || r == Null
}

// Flags returns the advertising flags, if present.
func (r *ScanRecord) Flags() (byte, bool) {
	if r.IsNull() {
		return 0, false
	}
	return r.flags, r.hasFlags
}

// SetFlags sets the advertising flags to mask.
func (r *ScanRecord) SetFlags(mask byte) *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.flags, r.hasFlags = mask, true
	return r
}

// AddFlags ORs flags into the advertising flags.
func (r *ScanRecord) AddFlags(flags ...byte) *ScanRecord {
	if r.IsNull() || len(flags) == 0 {
		return r
	}
	for _, f := range flags {
		r.flags |= f
	}
	r.hasFlags = true
	return r
}

// ClearFlags removes the advertising flags.
func (r *ScanRecord) ClearFlags() *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.flags, r.hasFlags = 0, false
	return r
}

// TxPower returns the TX power level in dBm, if present.
func (r *ScanRecord) TxPower() (int8, bool) {
	if r.IsNull() {
		return 0, false
	}
	return r.txPower, r.hasTx
}

// SetTxPower sets the TX power level in dBm.
func (r *ScanRecord) SetTxPower(pwr int8) *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.txPower, r.hasTx = pwr, true
	return r
}

// ClearTxPower removes the TX power level.
func (r *ScanRecord) ClearTxPower() *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.txPower, r.hasTx = 0, false
	return r
}

// Name returns the local name, or "" if there is none.
func (r *ScanRecord) Name() string {
	if r.IsNull() {
		return ""
	}
	return r.name
}

// IsShortName reports whether the local name is a shortened one.
func (r *ScanRecord) IsShortName() bool {
	return !r.IsNull() && r.shortName
}

// SetName sets the complete local name.
func (r *ScanRecord) SetName(n string) *ScanRecord {
	return r.setName(n, false)
}

// SetShortName sets a shortened local name.
func (r *ScanRecord) SetShortName(n string) *ScanRecord {
	return r.setName(n, true)
}

func (r *ScanRecord) setName(n string, short bool) *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.name, r.shortName = n, short
	return r
}

// AddServiceUUID adds u at the 16-bit width if it can be shortened to it,
// and at the full width otherwise.
func (r *ScanRecord) AddServiceUUID(u uuid.UUID) *ScanRecord {
	w := uuid.Full
	if uuid.Shortenable(u, uuid.Short) {
		w = uuid.Short
	}
	return r.AddServiceUUIDWidth(u, w)
}

// AddServiceUUIDWidth adds u, to be written at width w. Writing a UUID at a
// width it cannot be shortened to produces a different UUID on the air.
func (r *ScanRecord) AddServiceUUIDWidth(u uuid.UUID, w uuid.Width) *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.uuids = append(r.uuids, ServiceUUID{UUID: u, Width: w})
	return r
}

// AddServiceUUIDs adds each of uu with AddServiceUUID.
func (r *ScanRecord) AddServiceUUIDs(uu ...uuid.UUID) *ScanRecord {
	for _, u := range uu {
		r.AddServiceUUID(u)
	}
	return r
}

// ClearServiceUUIDs removes all service UUIDs. Service data is kept.
func (r *ScanRecord) ClearServiceUUIDs() *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.uuids = nil
	return r
}

// ServiceUUIDs returns the service UUIDs in the order they were added or parsed.
// UUIDs that only appear as service data keys are not included.
func (r *ScanRecord) ServiceUUIDs() []uuid.UUID {
	if r.IsNull() {
		return nil
	}
	s := make([]uuid.UUID, 0, len(r.uuids))
	for _, u := range r.uuids {
		s = append(s, u.UUID)
	}
	return s
}

// ServiceUUIDEntries returns the service UUIDs with their widths.
func (r *ScanRecord) ServiceUUIDEntries() []ServiceUUID {
	if r.IsNull() {
		return nil
	}
	return append([]ServiceUUID(nil), r.uuids...)
}

// IsCompleteList reports whether the service UUID list is complete.
func (r *ScanRecord) IsCompleteList() bool {
	return !r.IsNull() && r.complete
}

// SetCompleteList marks the service UUID list as complete or incomplete.
func (r *ScanRecord) SetCompleteList(complete bool) *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.complete = complete
	return r
}

// AddServiceData sets the data of service u, replacing any previous value.
// uuid.Nil stands for data with no UUID.
func (r *ScanRecord) AddServiceData(u uuid.UUID, data []byte) *ScanRecord {
	if r.IsNull() {
		return r
	}
	if r.svcData == nil {
		r.svcData = make(map[uuid.UUID][]byte)
	}
	r.svcData[u] = data
	return r
}

// AddServiceDataMap merges m into the service data.
func (r *ScanRecord) AddServiceDataMap(m map[uuid.UUID][]byte) *ScanRecord {
	for u, d := range m {
		r.AddServiceData(u, d)
	}
	return r
}

// ClearServiceData removes all service data. Service UUIDs are kept.
func (r *ScanRecord) ClearServiceData() *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.svcData = make(map[uuid.UUID][]byte)
	return r
}

// ServiceData returns a copy of the service data, keyed by service UUID.
func (r *ScanRecord) ServiceData() map[uuid.UUID][]byte {
	m := make(map[uuid.UUID][]byte)
	if r.IsNull() {
		return m
	}
	for u, d := range r.svcData {
		m[u] = d
	}
	return m
}

// ServiceDataFor returns the data of service u.
func (r *ScanRecord) ServiceDataFor(u uuid.UUID) ([]byte, bool) {
	if r.IsNull() {
		return nil, false
	}
	d, ok := r.svcData[u]
	return d, ok
}

// HasUUID reports whether u is a service UUID or a service data key.
func (r *ScanRecord) HasUUID(u uuid.UUID) bool {
	if r.IsNull() {
		return false
	}
	for _, s := range r.uuids {
		if s.UUID == u {
			return true
		}
	}
	_, ok := r.svcData[u]
	return ok
}

// AddManufacturerData appends a manufacturer data entry.
func (r *ScanRecord) AddManufacturerData(id uint16, data []byte) *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.mfg = append(r.mfg, ManufacturerEntry{ID: id, Data: data})
	return r
}

// SetManufacturerDataList replaces the manufacturer data entries with a copy of l.
func (r *ScanRecord) SetManufacturerDataList(l []ManufacturerEntry) *ScanRecord {
	if r.IsNull() {
		return r
	}
	r.mfg = append([]ManufacturerEntry(nil), l...)
	return r
}

// ManufacturerDataList returns all manufacturer data entries in order.
func (r *ScanRecord) ManufacturerDataList() []ManufacturerEntry {
	if r.IsNull() {
		return nil
	}
	return append([]ManufacturerEntry(nil), r.mfg...)
}

// ManufacturerID returns the id of the first manufacturer data entry, or -1
// if there is none.
func (r *ScanRecord) ManufacturerID() int {
	if r.IsNull() || len(r.mfg) == 0 {
		return -1
	}
	return int(r.mfg[0].ID)
}

// ManufacturerData returns the data of the first manufacturer data entry,
// or an empty slice if there is none.
func (r *ScanRecord) ManufacturerData() []byte {
	if r.IsNull() || len(r.mfg) == 0 || r.mfg[0].Data == nil {
		return []byte{}
	}
	return r.mfg[0].Data
}

// Options returns the advertising options.
func (r *ScanRecord) Options() Options {
	if r.IsNull() {
		return 0
	}
	return r.options
}

// SetOptions replaces the advertising options with the OR of opts.
func (r *ScanRecord) SetOptions(opts ...Options) *ScanRecord {
	if r.IsNull() {
		return r
	}
	var o Options
	for _, opt := range opts {
		o |= opt
	}
	r.options = o
	return r
}

// IsConnectable reports whether the Connectable option is set.
func (r *ScanRecord) IsConnectable() bool { return r.Options().Has(Connectable) }

// IncludesDeviceName reports whether the IncludeName option is set.
func (r *ScanRecord) IncludesDeviceName() bool { return r.Options().Has(IncludeName) }

// IncludesTxPowerLevel reports whether the IncludeTxPower option is set.
func (r *ScanRecord) IncludesTxPowerLevel() bool { return r.Options().Has(IncludeTxPower) }

// BuildPacket writes r as advertising data. UUIDs are written at the width
// they were added with, without checking that they can be shortened to it.
func (r *ScanRecord) BuildPacket() []byte {
	b, err := build(r, &builder{})
	if err != nil {
		logger.Warn("can't build packet", "err", err)
	}
	return b
}
